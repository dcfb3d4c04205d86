package utils

// Assert panics when the condition does not hold. Used for internal
// invariants that indicate a programming error, never for input validation.
func Assert(condition bool, message ...string) {
	if !condition {
		if len(message) == 1 {
			panic(message[0])
		}
		panic("failed assertion")
	}
}
