package assert

import "github.com/oomph-ac/pinball/oerror"

// IsTrue panics with a PinballError if ok is false. It guards programming contracts, such as
// releasing a buffer twice, that are never recoverable at runtime.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
