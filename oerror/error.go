package oerror

import "fmt"

// PinballError is the error type raised by the simulation when an internal contract is broken.
type PinballError struct {
	Err string
}

// New formats a new PinballError.
func New(format string, args ...any) *PinballError {
	if len(args) == 0 {
		return &PinballError{Err: format}
	}
	return &PinballError{Err: fmt.Sprintf(format, args...)}
}

func (e *PinballError) Error() string {
	return e.Err
}
