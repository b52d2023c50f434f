package signal

import "github.com/go-gl/mathgl/mgl32"

// Gesture is the discriminated tag produced by the hand detector.
type Gesture uint8

const (
	GestureNone Gesture = iota
	GestureOpen
	GesturePoint
	GesturePinch
	GestureFist
)

func (g Gesture) String() string {
	switch g {
	case GestureOpen:
		return "open"
	case GesturePoint:
		return "point"
	case GesturePinch:
		return "pinch"
	case GestureFist:
		return "fist"
	default:
		return "none"
	}
}

// ParseGesture maps a wire tag to a Gesture. Unknown tags map to none.
func ParseGesture(s string) Gesture {
	switch s {
	case "open":
		return GestureOpen
	case "point":
		return GesturePoint
	case "pinch":
		return GesturePinch
	case "fist":
		return GestureFist
	default:
		return GestureNone
	}
}

// Sample is one raw detector callback. Pos axes are camera-space in [0,1].
// Not retained beyond conditioning.
type Sample struct {
	Detected   bool
	Pos        mgl32.Vec2
	Gesture    Gesture
	Confidence float32
	Strength   float32
}

// Conditioned is the conditioner output: normalized axes in [-1,1], a
// stabilized gesture, and a stability flag. Replaced on every Process call;
// consumers must not mutate it in place.
type Conditioned struct {
	AxisX      float32
	AxisY      float32
	Gesture    Gesture
	Stable     bool
	Confidence float32
}
