package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"skyfall/assert"
	"skyfall/fusion"
)

// Step advances the simulation by dt seconds under one unified input. Off
// Playing only menu handling runs; no entity or physics updates occur.
func (e *Engine) Step(dt float64, in fusion.Input) {
	if dt < 0 {
		dt = 0
	}
	if dt > MaxStepSeconds {
		dt = MaxStepSeconds
	}

	switch e.state {
	case StateMenu:
		if in.Start || in.Primary {
			e.reset()
			e.transition(StatePlaying)
		}
	case StatePaused:
		if in.Pause {
			e.transition(e.resumeState)
		} else if in.Restart {
			e.reset()
			e.transition(StatePlaying)
		}
	case StateGameOver:
		if in.Restart {
			e.reset()
			e.transition(StatePlaying)
		}
	case StatePlaying:
		if in.Pause {
			e.resumeState = e.state
			e.transition(StatePaused)
			return
		}
		if in.Restart {
			e.reset()
			e.transition(StatePlaying)
			return
		}
		e.stepPlaying(dt, in)
	}
}

func (e *Engine) stepPlaying(dt float64, in fusion.Input) {
	e.movePlayer(dt, in)
	e.updateShield(dt, in)
	e.advanceEntities(dt)
	e.cullEntities()
	e.advanceSpawns(dt)
	e.resolveCollisions()
	e.recomputeDifficulty()
}

// movePlayer eases the platform toward the input-derived target at a fixed
// linear speed, clamped to the rectangular bounds.
func (e *Engine) movePlayer(dt float64, in fusion.Input) {
	p := &e.player
	p.TargetX = clamp(in.AxisX, -1, 1) * BoundsX
	p.TargetZ = clamp(in.AxisY, -1, 1) * BoundsZ

	prevX, prevZ := p.X, p.Z
	p.X = moveToward(p.X, p.TargetX, PlayerSpeed*dt)
	p.Z = moveToward(p.Z, p.TargetZ, PlayerSpeed*dt)
	p.X = clamp(p.X, -BoundsX, BoundsX)
	p.Z = clamp(p.Z, -BoundsZ, BoundsZ)

	if p.X != prevX || p.Z != prevZ {
		e.emit(Event{Kind: EventPlayerMoved, X: p.X, Z: p.Z})
	}
}

func (e *Engine) updateShield(dt float64, in fusion.Input) {
	p := &e.player
	prevEnergy, prevActive := p.ShieldEnergy, p.ShieldActive

	if in.Primary && p.ShieldEnergy > 0 {
		p.ShieldActive = true
		p.ShieldEnergy -= ShieldDrainPerSec * dt
		if p.ShieldEnergy <= 0 {
			p.ShieldEnergy = 0
			p.ShieldActive = false
		}
	} else {
		p.ShieldActive = false
		p.ShieldEnergy += ShieldRechargePerSec * dt
		if p.ShieldEnergy > 1 {
			p.ShieldEnergy = 1
		}
	}
	assert.IsTrue(p.ShieldEnergy >= 0 && p.ShieldEnergy <= 1,
		"shield energy out of range: %f", p.ShieldEnergy)

	if p.ShieldEnergy != prevEnergy || p.ShieldActive != prevActive {
		e.emit(Event{Kind: EventShieldChanged, ShieldEnergy: p.ShieldEnergy, ShieldActive: p.ShieldActive})
	}
}

// advanceEntities drops every live entity and updates its catch-zone and
// miss markers against the height thresholds.
func (e *Engine) advanceEntities(dt float64) {
	fall := FallSpeed * e.difficulty.SpeedMult * dt
	for el := e.entities.Front(); el != nil; el = el.Next() {
		ent := el.Value
		if ent.Processed {
			continue
		}
		ent.Pos[1] -= fall
		y := ent.Pos.Y()
		switch {
		case y <= MissHeight:
			ent.InCatchZone = false
			ent.Missed = true
			ent.Processed = true
		case y <= CatchHeight:
			ent.InCatchZone = true
		}
	}
}

// cullEntities removes processed and floor-fallen entities. Every removed
// missed orb resets the combo to 1.
func (e *Engine) cullEntities() {
	var gone []uint64
	comboBroken := false
	for el := e.entities.Front(); el != nil; el = el.Next() {
		ent := el.Value
		if !ent.Processed && ent.Pos.Y() > FloorY {
			continue
		}
		gone = append(gone, ent.ID)
		if ent.Missed && ent.Kind == KindOrb {
			comboBroken = true
		}
		e.emit(Event{Kind: EventEntityRemoved, EntityID: ent.ID})
	}
	for _, id := range gone {
		e.entities.Delete(id)
	}
	if comboBroken && e.stats.Combo != 1 {
		e.stats.Combo = 1
		e.emit(Event{Kind: EventComboChanged, Combo: 1})
	}
}

// resolveCollisions tests every catchable entity against the player and
// resolves overlaps in insertion order. The shield value captured here
// covers the whole phase, so a shield transitioning off mid-step still
// blocks every hazard of the step it started active in.
func (e *Engine) resolveCollisions() {
	shielded := e.player.ShieldActive
	for el := e.entities.Front(); el != nil; el = el.Next() {
		ent := el.Value
		if !ent.InCatchZone || ent.Processed {
			continue
		}
		d := mgl64.Vec2{ent.Pos.X() - e.player.X, ent.Pos.Z() - e.player.Z}.Len()
		if d > ent.Radius+PlayerRadius {
			continue
		}
		ent.Processed = true
		if ent.Kind == KindOrb {
			e.catchOrb(ent)
			continue
		}
		e.emit(Event{Kind: EventHazardResolved, Entity: *ent, Blocked: shielded})
		if !shielded {
			e.transition(StateGameOver)
			return
		}
	}
}

func (e *Engine) catchOrb(ent *Entity) {
	points := ent.Points * e.stats.Combo
	e.stats.Score += points
	e.stats.OrbsCaught++
	e.stats.Combo++
	if e.stats.Combo > e.stats.MaxCombo {
		e.stats.MaxCombo = e.stats.Combo
	}
	e.emit(Event{Kind: EventOrbCaught, Entity: *ent, Points: points})
	e.emit(Event{Kind: EventScoreChanged, Score: e.stats.Score})
	e.emit(Event{Kind: EventComboChanged, Combo: e.stats.Combo})
}

func moveToward(v, target, maxDelta float64) float64 {
	d := target - v
	if math.Abs(d) <= maxDelta {
		return target
	}
	if d < 0 {
		return v - maxDelta
	}
	return v + maxDelta
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
