package fusion

// action is the semantic role a physical key or button maps to.
type action uint8

const (
	actNone action = iota
	actLeft
	actRight
	actUp
	actDown
	actPrimary
	actPause
	actRestart
	actStart
)

// command indexes the one-shot commands.
type command uint8

const (
	cmdPause command = iota
	cmdRestart
	cmdStart
	commandCount
)

// DefaultBindings maps browser KeyboardEvent.code strings, forwarded
// verbatim by the client, to semantic actions.
func DefaultBindings() map[string]action {
	return map[string]action{
		"ArrowLeft":  actLeft,
		"KeyA":       actLeft,
		"ArrowRight": actRight,
		"KeyD":       actRight,
		"ArrowUp":    actUp,
		"KeyW":       actUp,
		"ArrowDown":  actDown,
		"KeyS":       actDown,
		"Space":      actPrimary,
		"KeyP":       actPause,
		"Escape":     actPause,
		"KeyR":       actRestart,
		"Enter":      actStart,
	}
}
