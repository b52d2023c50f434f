package protocol

import (
	"encoding/json"
)

// Client -> server message types.
const (
	MsgHello  = "hello"
	MsgSample = "sample"
	MsgKey    = "key"
	MsgMouse  = "mouse"
	MsgButton = "button"
	MsgSource = "source"
)

// Server -> client message types.
const (
	MsgWelcome       = "welcome"
	MsgEvents        = "events"
	MsgSourceChanged = "sourceChanged"
)

const (
	SimTickHz   = 60
	BroadcastHz = 30
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
