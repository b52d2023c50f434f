package protocol

type Welcome struct {
	SessionID string `json:"sessionId"`
	TickHz    int    `json:"tickHz"`
}

// Events carries the engine deltas of one broadcast window.
type Events struct {
	Tick   int             `json:"tick"`
	Events []EventSnapshot `json:"events"`
}

// EventSnapshot is one engine delta, flattened for the wire. Kind decides
// which optional fields are meaningful.
type EventSnapshot struct {
	Kind string `json:"kind"`

	State     string `json:"state,omitempty"`
	PrevState string `json:"prevState,omitempty"`

	Entity   *EntitySnapshot `json:"entity,omitempty"`
	EntityID uint64          `json:"entityId,omitempty"`

	Score   int  `json:"score,omitempty"`
	Combo   int  `json:"combo,omitempty"`
	Points  int  `json:"points,omitempty"`
	Blocked bool `json:"blocked,omitempty"`

	ShieldEnergy float64 `json:"shieldEnergy,omitempty"`
	ShieldActive bool    `json:"shieldActive,omitempty"`

	X float64 `json:"x,omitempty"`
	Z float64 `json:"z,omitempty"`

	Stats *StatsSnapshot `json:"stats,omitempty"`
}

type EntitySnapshot struct {
	ID     uint64  `json:"id"`
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Z      float64 `json:"z"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color,omitempty"`
	Points int     `json:"points,omitempty"`
}

type StatsSnapshot struct {
	Score      int `json:"score"`
	Combo      int `json:"combo"`
	MaxCombo   int `json:"maxCombo"`
	OrbsCaught int `json:"orbsCaught"`
}

// SourceChanged announces which input source is authoritative.
type SourceChanged struct {
	Source string `json:"source"`
	Label  string `json:"label"`
}
