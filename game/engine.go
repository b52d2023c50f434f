package game

import (
	"math/rand"

	"github.com/elliotchance/orderedmap/v2"

	"skyfall/assert"
)

// Engine is the deterministic simulation state machine for one session. It
// owns the player, difficulty, stats and the live entity set exclusively;
// everything is reinitialized atomically on start/restart. Not safe for
// concurrent use: one logical thread of control drives it.
type Engine struct {
	state       State
	resumeState State // recorded when pausing

	player     PlayerState
	difficulty DifficultyState
	stats      SessionStats

	// Insertion order doubles as the documented tie-break when several
	// entities overlap the player in the same step.
	entities *orderedmap.OrderedMap[uint64, *Entity]
	nextID   uint64

	orbTimer    float64
	hazardTimer float64

	rng    *rand.Rand
	events []Event
}

// New builds an engine in the menu state. The seed fixes spawn placement
// for deterministic replays and tests.
func New(seed int64) *Engine {
	e := &Engine{
		state: StateMenu,
		rng:   rand.New(rand.NewSource(seed)),
	}
	e.reset()
	return e
}

func (e *Engine) State() State                { return e.state }
func (e *Engine) Stats() SessionStats         { return e.stats }
func (e *Engine) Player() PlayerState         { return e.player }
func (e *Engine) Difficulty() DifficultyState { return e.difficulty }

// Entities returns snapshots of the live set in insertion order.
func (e *Engine) Entities() []Entity {
	out := make([]Entity, 0, e.entities.Len())
	for el := e.entities.Front(); el != nil; el = el.Next() {
		out = append(out, *el.Value)
	}
	return out
}

// reset reinitializes all session-owned state. Entity and timer state is
// discarded in one shot before the next step runs.
func (e *Engine) reset() {
	e.player = PlayerState{ShieldEnergy: 1}
	e.stats = SessionStats{Combo: 1, MaxCombo: 1}
	e.difficulty = DifficultyState{Level: 1, SpeedMult: 1, SpawnMult: 1}
	e.entities = orderedmap.NewOrderedMap[uint64, *Entity]()
	e.orbTimer = 0
	e.hazardTimer = 0
}

func (e *Engine) transition(to State) {
	prev := e.state
	e.state = to
	e.emit(Event{Kind: EventStateChanged, State: to, PrevState: prev, Stats: e.stats})
}

func (e *Engine) addEntity(ent *Entity) {
	_, dup := e.entities.Get(ent.ID)
	assert.IsTrue(!dup, "duplicate entity id %d", ent.ID)
	e.entities.Set(ent.ID, ent)
	e.emit(Event{Kind: EventEntitySpawned, Entity: *ent})
}
