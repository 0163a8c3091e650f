package sourcing

import "strings"

// Reader wraps a CharSource and is the authoritative position tracker for a
// compilation. It folds newlines to a single '\n' so that everything
// downstream sees one normalized line-ending convention, and offers an
// optional capture buffer that trigger callbacks use to accumulate a
// lexeme's text.
//
// A Reader is intended to be used by exactly one call chain for the
// lifetime of a compilation; see spec.md §5.
type Reader struct {
	src     CharSource
	pos     Position
	capture *strings.Builder
}

// NewReader wraps src, starting position tracking at src's first character.
func NewReader(src CharSource) *Reader {
	return &Reader{src: src, pos: StartPosition(src.Info())}
}

// Position returns the position of the next character to be consumed.
func (r *Reader) Position() Position {
	return r.pos
}

// HasMore returns whether any characters remain.
func (r *Reader) HasMore() bool {
	return r.src.HasMore()
}

// PeekNext returns the next folded character without consuming it. A '\r' in
// the underlying source always peeks as '\n', regardless of what follows it;
// peeking never mutates reader or position state.
func (r *Reader) PeekNext() (rune, error) {
	c, err := r.src.PeekNext()
	if err != nil {
		return 0, err
	}
	if c == '\r' {
		return '\n', nil
	}
	return c, nil
}

// EatNext consumes and returns the next folded character, updating position
// and, if enabled, appending to the capture buffer.
//
// A consumed '\r' followed by '\n' or another '\r' is folded to a single
// '\n', consuming both underlying characters. A consumed '\r' followed by
// anything else (or end of input) is folded to '\n' with a single underlying
// consume. Any other consumed character passes through unchanged.
func (r *Reader) EatNext() (rune, error) {
	c, err := r.src.EatNext()
	if err != nil {
		return 0, err
	}

	yielded := c
	if c == '\r' {
		yielded = '\n'
		if next, peekErr := r.src.PeekNext(); peekErr == nil && (next == '\n' || next == '\r') {
			if _, eatErr := r.src.EatNext(); eatErr != nil {
				return 0, eatErr
			}
		}
	}

	r.advance(yielded)

	if r.capture != nil {
		r.capture.WriteRune(yielded)
	}

	return yielded, nil
}

func (r *Reader) advance(yielded rune) {
	r.pos.Offset = r.src.Offset()
	if yielded == '\n' {
		r.pos.Line++
		r.pos.Column = 1
	} else {
		r.pos.Column++
	}
}

// CaptureEnabled returns whether the capture buffer is currently enabled.
func (r *Reader) CaptureEnabled() bool {
	return r.capture != nil
}

// EnableCapture turns on the capture buffer, starting it empty. Returns an
// error if capture is already enabled.
func (r *Reader) EnableCapture() error {
	if r.capture != nil {
		return newBufferError("capture buffer is already enabled")
	}
	r.capture = &strings.Builder{}
	return nil
}

// DisableCapture turns off the capture buffer, discarding its contents.
// Returns an error if capture is already disabled.
func (r *Reader) DisableCapture() error {
	if r.capture == nil {
		return newBufferError("capture buffer is already disabled")
	}
	r.capture = nil
	return nil
}

// Buffer returns the capture buffer's current contents without clearing it.
// Returns an error if capture is not enabled.
func (r *Reader) Buffer() (string, error) {
	if r.capture == nil {
		return "", newBufferError("capture buffer is not enabled")
	}
	return r.capture.String(), nil
}

// ClearCapture empties the capture buffer, leaving it enabled. Returns an
// error if capture is not enabled.
func (r *Reader) ClearCapture() error {
	if r.capture == nil {
		return newBufferError("capture buffer is not enabled")
	}
	r.capture.Reset()
	return nil
}

// PopCapture returns the capture buffer's contents and resets it to empty,
// still enabled. Returns an error if capture is not enabled.
func (r *Reader) PopCapture() (string, error) {
	if r.capture == nil {
		return "", newBufferError("capture buffer is not enabled")
	}
	s := r.capture.String()
	r.capture.Reset()
	return s, nil
}
