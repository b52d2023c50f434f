package game

// Internal truth: authoritative session state owned by the Engine.

type State uint8

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "menu"
	}
}

// PlayerState is the catch platform: its position eases toward the
// input-derived target at a fixed linear speed.
type PlayerState struct {
	X, Z             float64
	TargetX, TargetZ float64
	ShieldEnergy     float64 // [0,1]
	ShieldActive     bool
}

// DifficultyState is derived purely from cumulative score, so all fields
// are non-decreasing within a session.
type DifficultyState struct {
	Level     int
	SpeedMult float64
	SpawnMult float64
}

// SessionStats accumulates scoring for one play session.
type SessionStats struct {
	Score      int
	Combo      int // multiplier on orb points, >= 1
	MaxCombo   int
	OrbsCaught int
}
