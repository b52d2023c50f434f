package game

const (
	BoundsX      = 8.0 // player |x| limit in game units
	BoundsZ      = 4.0 // player |z| limit
	PlayerSpeed  = 14.0
	PlayerRadius = 1.2

	ShieldDrainPerSec    = 0.35 // while the primary action is held
	ShieldRechargePerSec = 0.20

	FallSpeed   = 5.0 // base units/sec, scaled by the difficulty speed multiplier
	SpawnHeight = 15.0
	CatchHeight = 1.5  // entities at or below become catchable
	MissHeight  = -0.5 // entities at or below are missed
	FloorY      = -5.0 // absolute cull height

	OrbRadius    = 0.8
	HazardRadius = 0.9
	BasePoints   = 100

	OrbInterval    = 1.1 // seconds between orb spawns before difficulty scaling
	HazardInterval = 3.5

	MaxStepSeconds = 0.1 // dt clamp against tab-stall spikes
)

// Score thresholds for difficulty levels 2..n. Level is one plus the count
// of thresholds at or below the cumulative score.
var difficultyThresholds = []int{500, 1200, 2500, 4500, 7000, 10000, 14000, 19000}

var orbColors = []string{"#4fc3f7", "#ffd54f", "#ba68c8", "#81c784", "#ff8a65"}
