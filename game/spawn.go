package game

import "github.com/go-gl/mathgl/mgl64"

// advanceSpawns accumulates the per-type timers and spawns whenever one
// reaches its interval shortened by the spawn-rate multiplier.
func (e *Engine) advanceSpawns(dt float64) {
	e.orbTimer += dt
	if e.orbTimer >= OrbInterval/e.difficulty.SpawnMult {
		e.orbTimer = 0
		e.spawn(KindOrb)
	}
	e.hazardTimer += dt
	if e.hazardTimer >= HazardInterval/e.difficulty.SpawnMult {
		e.hazardTimer = 0
		e.spawn(KindHazard)
	}
}

func (e *Engine) spawn(kind Kind) *Entity {
	x := (e.rng.Float64()*2 - 1) * BoundsX
	z := (e.rng.Float64()*2 - 1) * BoundsZ
	return e.spawnAt(kind, mgl64.Vec3{x, SpawnHeight, z})
}

func (e *Engine) spawnAt(kind Kind, pos mgl64.Vec3) *Entity {
	e.nextID++
	ent := &Entity{
		ID:     e.nextID,
		Kind:   kind,
		Pos:    pos,
		Radius: OrbRadius,
	}
	if kind == KindHazard {
		ent.Radius = HazardRadius
	} else {
		ent.Color = orbColors[e.rng.Intn(len(orbColors))]
		ent.Points = BasePoints
	}
	e.addEntity(ent)
	return ent
}
