package signal

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Config controls conditioning. Zero values are replaced by the tuning
// defaults in NewConditioner.
type Config struct {
	PosWindow     int
	GestureWindow int
	Deadzone      float32
	RangeLo       float32
	RangeHi       float32
	MirrorX       bool // webcam feeds are usually mirrored for the player
	MirrorY       bool
	StableEps     float32
}

func DefaultConfig() Config {
	return Config{
		PosWindow:     PosWindow,
		GestureWindow: GestureWindow,
		Deadzone:      DeadzoneDist,
		RangeLo:       RangeLo,
		RangeHi:       RangeHi,
		MirrorX:       true,
		StableEps:     StableVarianceEps,
	}
}

// Conditioner turns noisy per-frame detector samples into gameplay-ready
// control values: weighted position smoothing, dead-zone filtering,
// sub-range normalization, and gesture hysteresis. Called once per detector
// result, independent of the simulation cadence.
type Conditioner struct {
	cfg Config

	positions []mgl32.Vec2 // oldest to newest
	gestures  []Gesture    // oldest to newest

	accepted    mgl32.Vec2 // last position past the dead-zone
	hasAccepted bool
	held        Gesture
}

func NewConditioner(cfg Config) *Conditioner {
	def := DefaultConfig()
	if cfg.PosWindow <= 0 {
		cfg.PosWindow = def.PosWindow
	}
	if cfg.GestureWindow <= 0 {
		cfg.GestureWindow = def.GestureWindow
	}
	if cfg.Deadzone <= 0 {
		cfg.Deadzone = def.Deadzone
	}
	if cfg.RangeHi <= cfg.RangeLo {
		cfg.RangeLo = def.RangeLo
		cfg.RangeHi = def.RangeHi
	}
	if cfg.StableEps <= 0 {
		cfg.StableEps = def.StableEps
	}
	return &Conditioner{cfg: cfg}
}

// Process conditions one detector result. An absent detection
// (Detected=false) ages the buffers out one element per call instead of
// hard-resetting, so a few dropped frames do not snap the control values.
func (c *Conditioner) Process(s Sample) Conditioned {
	if !s.Detected {
		return c.decay()
	}

	pos := mgl32.Vec2{clamp01(s.Pos.X()), clamp01(s.Pos.Y())}
	c.positions = push(c.positions, pos, c.cfg.PosWindow)
	c.gestures = push(c.gestures, s.Gesture, c.cfg.GestureWindow)

	smoothed := weightedMean(c.positions)
	if !c.hasAccepted || c.distFromAccepted(smoothed) >= c.cfg.Deadzone {
		c.accepted = smoothed
		c.hasAccepted = true
	}

	if tag, n := modal(c.gestures); n >= majority(c.cfg.GestureWindow) {
		c.held = tag
	}

	x, y := c.normalized()
	return Conditioned{
		AxisX:      x,
		AxisY:      y,
		Gesture:    c.held,
		Stable:     c.stable(),
		Confidence: s.Confidence,
	}
}

func (c *Conditioner) decay() Conditioned {
	if len(c.positions) > 0 {
		c.positions = c.positions[1:]
	}
	if len(c.gestures) > 0 {
		c.gestures = c.gestures[1:]
	}
	if len(c.gestures) == 0 {
		c.held = GestureNone
	}
	x, y := c.normalized()
	return Conditioned{AxisX: x, AxisY: y, Gesture: c.held}
}

func (c *Conditioner) distFromAccepted(p mgl32.Vec2) float32 {
	return math32.Hypot(p.X()-c.accepted.X(), p.Y()-c.accepted.Y())
}

// normalized maps the accepted camera-space position onto [-1,1] per axis,
// clamping to the configured sub-range first.
func (c *Conditioner) normalized() (x, y float32) {
	if !c.hasAccepted {
		return 0, 0
	}
	return c.normAxis(c.accepted.X(), c.cfg.MirrorX), c.normAxis(c.accepted.Y(), c.cfg.MirrorY)
}

func (c *Conditioner) normAxis(v float32, mirror bool) float32 {
	if mirror {
		v = 1 - v
	}
	if v < c.cfg.RangeLo {
		v = c.cfg.RangeLo
	}
	if v > c.cfg.RangeHi {
		v = c.cfg.RangeHi
	}
	return (v-c.cfg.RangeLo)/(c.cfg.RangeHi-c.cfg.RangeLo)*2 - 1
}

// stable reports whether the buffered positions have settled: at least
// StableMinSamples samples with population variance under the epsilon.
func (c *Conditioner) stable() bool {
	n := len(c.positions)
	if n < StableMinSamples {
		return false
	}
	var mx, my float32
	for _, p := range c.positions {
		mx += p.X()
		my += p.Y()
	}
	mx /= float32(n)
	my /= float32(n)
	var variance float32
	for _, p := range c.positions {
		dx := p.X() - mx
		dy := p.Y() - my
		variance += dx*dx + dy*dy
	}
	variance /= float32(n)
	return variance < c.cfg.StableEps
}

// weightedMean is a linearly weighted moving average: the i-th
// oldest-to-newest sample gets weight i+1, so newer samples dominate.
func weightedMean(ps []mgl32.Vec2) mgl32.Vec2 {
	var sum mgl32.Vec2
	var wsum float32
	for i, p := range ps {
		w := float32(i + 1)
		sum = sum.Add(p.Mul(w))
		wsum += w
	}
	return sum.Mul(1 / wsum)
}

// majority is ceil(window × 0.6), the count a modal tag must reach before
// the held gesture switches.
func majority(window int) int {
	return (window*6 + 9) / 10
}

func modal(gs []Gesture) (Gesture, int) {
	var counts [GestureFist + 1]int
	best, bestN := GestureNone, 0
	for _, g := range gs {
		counts[g]++
		if counts[g] > bestN {
			best, bestN = g, counts[g]
		}
	}
	return best, bestN
}

func push[T any](buf []T, v T, capacity int) []T {
	buf = append(buf, v)
	if len(buf) > capacity {
		buf = buf[1:]
	}
	return buf
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
