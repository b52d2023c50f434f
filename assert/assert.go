package assert

import "fmt"

// IsTrue panics when ok is false. Used for invariants whose violation
// indicates a modeling bug rather than a runtime condition.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(fmt.Sprintf(message, args...))
	}
}
