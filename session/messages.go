package session

// Conn is the outbound half of a client connection. Implemented by the
// network package; faked in tests.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Attach: issued once after hello parsed.
type Attach struct {
	Conn  Conn
	Name  string
	Reply chan<- AttachResult
}

type AttachResult struct {
	ClientID string
}

// SampleMsg: one raw detector callback, conditioned on arrival.
type SampleMsg struct {
	Detected   bool
	X, Y       float32
	Gesture    string
	Confidence float32
	Strength   float32
}

// KeyMsg: key-down/up edge.
type KeyMsg struct {
	Code string
	Down bool
}

// MouseMsg: mouse move with viewport extents.
type MouseMsg struct {
	X, Y, W, H float64
}

// ButtonMsg: mouse button edge.
type ButtonMsg struct {
	Button int
	Down   bool
}

// SourceMsg: gesture source availability toggle.
type SourceMsg struct {
	Gesture bool
}

// Detach: issued on disconnect.
type Detach struct{}
