package game

// EventKind discriminates the outbound notifications the engine queues for
// the presentation layer.
type EventKind uint8

const (
	EventStateChanged EventKind = iota
	EventEntitySpawned
	EventEntityRemoved
	EventScoreChanged
	EventComboChanged
	EventShieldChanged
	EventPlayerMoved
	EventOrbCaught
	EventHazardResolved
)

func (k EventKind) String() string {
	switch k {
	case EventStateChanged:
		return "state"
	case EventEntitySpawned:
		return "spawn"
	case EventEntityRemoved:
		return "remove"
	case EventScoreChanged:
		return "score"
	case EventComboChanged:
		return "combo"
	case EventShieldChanged:
		return "shield"
	case EventPlayerMoved:
		return "player"
	case EventOrbCaught:
		return "caught"
	case EventHazardResolved:
		return "hazard"
	default:
		return "unknown"
	}
}

// Event is one state delta. Entity is a snapshot taken at emission time, so
// no live pointers escape the engine. The host drains the queue after each
// step and forwards it fire-and-forget; the engine never awaits a response.
type Event struct {
	Kind EventKind

	State     State        // state, also carried by every event for cheap filtering
	PrevState State        // state
	Stats     SessionStats // state

	Entity   Entity // spawn, caught, hazard
	EntityID uint64 // remove

	Score   int  // score
	Combo   int  // combo
	Points  int  // caught: points awarded
	Blocked bool // hazard: absorbed by the shield

	ShieldEnergy float64 // shield
	ShieldActive bool    // shield

	X, Z float64 // player
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

// Drain returns the queued events since the last drain and clears the
// queue. Called once per step by the host loop.
func (e *Engine) Drain() []Event {
	evs := e.events
	e.events = nil
	return evs
}
