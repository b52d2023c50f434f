package game

import "github.com/go-gl/mathgl/mgl64"

type Kind uint8

const (
	KindOrb Kind = iota
	KindHazard
)

func (k Kind) String() string {
	if k == KindHazard {
		return "hazard"
	}
	return "orb"
}

// Entity is a spawned falling object. Created by the spawner, mutated only
// by the per-step update, removed once Processed or fallen below the floor.
// The lifecycle flags are mutually exclusive terminal/transient markers:
// Processed is terminal, Missed implies Processed, InCatchZone is the
// transient catchable window.
type Entity struct {
	ID     uint64
	Kind   Kind
	Pos    mgl64.Vec3
	Radius float64

	// Orb only.
	Color  string
	Points int

	Processed   bool
	Missed      bool
	InCatchZone bool
}
