package signal

const (
	PosWindow         = 5     // raw positions kept for the weighted average
	GestureWindow     = 3     // raw tags kept for hysteresis
	DeadzoneDist      = 0.015 // camera-space distance below which position sticks
	RangeLo           = 0.15  // normalization sub-range of [0,1]; outside is clamped
	RangeHi           = 0.85
	StableMinSamples  = 3
	StableVarianceEps = 1e-3
)
