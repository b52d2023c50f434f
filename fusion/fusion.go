package fusion

import (
	"skyfall/signal"
)

// Source identifies which input source produced a polled Input.
type Source uint8

const (
	SourceKeyboard Source = iota
	SourceMouse
	SourceGesture
)

func (s Source) String() string {
	switch s {
	case SourceMouse:
		return "mouse"
	case SourceGesture:
		return "gesture"
	default:
		return "keyboard"
	}
}

// Label is the display name surfaced with source-changed notifications.
func (s Source) Label() string {
	switch s {
	case SourceMouse:
		return "Mouse"
	case SourceGesture:
		return "Hand Tracking"
	default:
		return "Keyboard"
	}
}

// Input is the unified control record the simulation consumes each step.
// Pause, Restart and Start are one-shot: true for at most the single step
// following the triggering edge.
type Input struct {
	AxisX   float64
	AxisY   float64
	Primary bool
	Pause   bool
	Restart bool
	Start   bool
	Source  Source
}

// SourceChangedFunc is notified when gesture availability toggles.
type SourceChangedFunc func(s Source, label string)

// Layer merges the conditioned gesture stream with keyboard/mouse fallback
// into one Input per poll. When the gesture source is enabled it is
// authoritative for axes and the primary action; otherwise keyboard wins
// over mouse whenever a directional key is held.
type Layer struct {
	bindings map[string]action

	gestureEnabled bool
	cond           signal.Conditioned

	held      map[action]bool
	mouseX    float64
	mouseY    float64
	mouseSeen bool
	mouseHeld bool

	pending [commandCount]bool // fires on next poll
	latched [commandCount]bool // already fired while held

	onSourceChanged SourceChangedFunc
}

func NewLayer() *Layer {
	return &Layer{
		bindings: DefaultBindings(),
		held:     make(map[action]bool),
	}
}

// SetSourceChanged registers the source-changed notification callback.
func (l *Layer) SetSourceChanged(fn SourceChangedFunc) {
	l.onSourceChanged = fn
}

// SetSourceEnabled toggles the gesture source. Disabling it suppresses
// gesture-derived values immediately, even if conditioned signals are still
// in flight from the detector.
func (l *Layer) SetSourceEnabled(enabled bool) {
	if l.gestureEnabled == enabled {
		return
	}
	l.gestureEnabled = enabled
	if !enabled {
		l.cond = signal.Conditioned{}
	}
	if l.onSourceChanged != nil {
		s := l.activeSource()
		l.onSourceChanged(s, s.Label())
	}
}

// IngestConditioned stores the latest conditioned gesture signal.
func (l *Layer) IngestConditioned(c signal.Conditioned) {
	l.cond = c
}

// IngestKey records a key transition. Rising edges on command keys arm a
// one-shot; holding the key does not repeat it.
func (l *Layer) IngestKey(code string, down bool) {
	act, ok := l.bindings[code]
	if !ok {
		return
	}
	switch act {
	case actPause:
		l.commandEdge(cmdPause, down)
	case actRestart:
		l.commandEdge(cmdRestart, down)
	case actStart:
		l.commandEdge(cmdStart, down)
	default:
		l.held[act] = down
	}
}

// IngestMouseMove maps a viewport position onto [-1,1] axes.
func (l *Layer) IngestMouseMove(x, y, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	l.mouseX = clampAxis(x/w*2 - 1)
	l.mouseY = clampAxis(y/h*2 - 1)
	l.mouseSeen = true
}

// IngestMouseButton records the primary mouse button state.
func (l *Layer) IngestMouseButton(button int, down bool) {
	if button != 0 {
		return
	}
	l.mouseHeld = down
}

func (l *Layer) commandEdge(cmd command, down bool) {
	if down {
		if !l.latched[cmd] {
			l.pending[cmd] = true
			l.latched[cmd] = true
		}
		return
	}
	l.latched[cmd] = false
}

// Poll builds the unified input and clears the one-shot commands: calling
// it twice in one step yields one true reading then falses.
func (l *Layer) Poll() Input {
	var in Input
	if l.gestureEnabled {
		in.Source = SourceGesture
		in.AxisX = float64(l.cond.AxisX)
		in.AxisY = float64(l.cond.AxisY)
		in.Primary = l.cond.Gesture == signal.GesturePinch || l.cond.Gesture == signal.GestureFist
	} else {
		kx, ky := l.keyboardAxes()
		switch {
		case kx != 0 || ky != 0:
			in.Source = SourceKeyboard
			in.AxisX, in.AxisY = kx, ky
		case l.mouseSeen:
			in.Source = SourceMouse
			in.AxisX, in.AxisY = l.mouseX, l.mouseY
		default:
			in.Source = SourceKeyboard
		}
		in.Primary = l.held[actPrimary] || l.mouseHeld
	}

	in.Pause = l.take(cmdPause)
	in.Restart = l.take(cmdRestart)
	// A single press must not both confirm a menu and trigger the in-game
	// action, so start is dropped while primary is held.
	if l.take(cmdStart) && !in.Primary {
		in.Start = true
	}
	return in
}

func (l *Layer) activeSource() Source {
	if l.gestureEnabled {
		return SourceGesture
	}
	return SourceKeyboard
}

func (l *Layer) keyboardAxes() (x, y float64) {
	if l.held[actLeft] {
		x--
	}
	if l.held[actRight] {
		x++
	}
	if l.held[actUp] {
		y--
	}
	if l.held[actDown] {
		y++
	}
	return x, y
}

func (l *Layer) take(cmd command) bool {
	fired := l.pending[cmd]
	l.pending[cmd] = false
	return fired
}

func clampAxis(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
