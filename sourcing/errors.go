package sourcing

import "errors"

// ErrNoMoreChars is returned by a CharSource's PeekNext/EatNext, and by
// Reader's PeekNext/EatNext, once the source is exhausted.
var ErrNoMoreChars = errors.New("sourcing: no more characters")

// bufferError is returned for the capture-buffer misuse cases described in
// spec.md §4.1: enabling an already-enabled buffer, disabling an already-
// disabled one, or popping/clearing with none enabled.
type bufferError struct {
	msg string
}

func (e *bufferError) Error() string {
	return "sourcing: " + e.msg
}

func newBufferError(msg string) error {
	return &bufferError{msg: msg}
}
