package session

import (
	"skyfall/game"
	"skyfall/protocol"
)

// snapshotEvent flattens one engine delta for the wire.
func snapshotEvent(ev game.Event) protocol.EventSnapshot {
	out := protocol.EventSnapshot{Kind: ev.Kind.String()}
	switch ev.Kind {
	case game.EventStateChanged:
		out.State = ev.State.String()
		out.PrevState = ev.PrevState.String()
		out.Stats = &protocol.StatsSnapshot{
			Score:      ev.Stats.Score,
			Combo:      ev.Stats.Combo,
			MaxCombo:   ev.Stats.MaxCombo,
			OrbsCaught: ev.Stats.OrbsCaught,
		}
	case game.EventEntitySpawned:
		out.Entity = snapshotEntity(ev.Entity)
	case game.EventEntityRemoved:
		out.EntityID = ev.EntityID
	case game.EventScoreChanged:
		out.Score = ev.Score
	case game.EventComboChanged:
		out.Combo = ev.Combo
	case game.EventShieldChanged:
		out.ShieldEnergy = ev.ShieldEnergy
		out.ShieldActive = ev.ShieldActive
	case game.EventPlayerMoved:
		out.X = ev.X
		out.Z = ev.Z
	case game.EventOrbCaught:
		out.Entity = snapshotEntity(ev.Entity)
		out.Points = ev.Points
	case game.EventHazardResolved:
		out.Entity = snapshotEntity(ev.Entity)
		out.Blocked = ev.Blocked
	}
	return out
}

func snapshotEntity(ent game.Entity) *protocol.EntitySnapshot {
	return &protocol.EntitySnapshot{
		ID:     ent.ID,
		Kind:   ent.Kind.String(),
		X:      ent.Pos.X(),
		Y:      ent.Pos.Y(),
		Z:      ent.Pos.Z(),
		Radius: ent.Radius,
		Color:  ent.Color,
		Points: ent.Points,
	}
}
