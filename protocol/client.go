package protocol

// Messages coming in from the client. The browser owns the webcam and the
// hand-landmark detector; it forwards raw detections and device edges and
// the server owns everything downstream.

type Hello struct {
	V    int    `json:"v"`             // version
	Name string `json:"name,omitempty"` // optional name
}

// Sample is one raw detector callback. X and Y are camera-space in [0,1].
// An absent detection is sent with Detected=false.
type Sample struct {
	Detected   bool    `json:"detected"`
	X          float32 `json:"x"`
	Y          float32 `json:"y"`
	Gesture    string  `json:"gesture,omitempty"` // none|open|point|pinch|fist
	Confidence float32 `json:"conf,omitempty"`
	Strength   float32 `json:"strength,omitempty"`
}

// Key is a key-down/up edge carrying the KeyboardEvent.code string.
type Key struct {
	Code string `json:"code"`
	Down bool   `json:"down"`
}

// Mouse is a mouse-move with the viewport extents used for mapping.
type Mouse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Button is a mouse button edge. Button 0 is the primary button.
type Button struct {
	Button int  `json:"button"`
	Down   bool `json:"down"`
}

// Source toggles gesture availability (e.g. camera permission granted or
// tracking lost for good).
type Source struct {
	Gesture bool `json:"gesture"`
}
