package sourcing

import (
	"github.com/google/uuid"
)

// CharSource is an abstract stream of decoded characters. Implementations
// need only support a single forward pass: the current offset, whether more
// characters remain, a non-destructive peek of the next character, and a
// destructive consume of it. Both fallible operations (PeekNext and EatNext)
// fail with ErrNoMoreChars once the source is exhausted. Implementations for files,
// network connections, or tests are the caller's responsibility; StringSource
// below is the only one this package provides.
type CharSource interface {
	// Info returns the opaque path identifying this source.
	Info() string

	// Offset returns the 0-based index of the next character to be read.
	Offset() int

	// HasMore returns whether at least one more character can be read. It
	// may mutate internal prefetch state but must not advance Offset.
	HasMore() bool

	// PeekNext returns the next character without consuming it, or
	// ErrNoMoreChars if the source is exhausted.
	PeekNext() (rune, error)

	// EatNext consumes and returns the next character, or ErrNoMoreChars if
	// the source is exhausted.
	EatNext() (rune, error)
}

// StringSource is a CharSource backed by an in-memory string, walking its
// code points one at a time.
type StringSource struct {
	path    string
	runes   []rune
	current int
}

// NewStringSource returns a StringSource over text, identified by path for
// the purposes of diagnostics and Position.Path.
func NewStringSource(path string, text string) *StringSource {
	return &StringSource{path: path, runes: []rune(text)}
}

// NewAnonymousStringSource returns a StringSource over text whose path is a
// synthetic, collision-resistant name, for callers (tests, REPLs, generated
// snippets) that have no real path to attach.
func NewAnonymousStringSource(text string) *StringSource {
	return NewStringSource("anonymous://"+uuid.NewString(), text)
}

// Info returns the source's path.
func (s *StringSource) Info() string {
	return s.path
}

// Offset returns the index of the next rune to be read.
func (s *StringSource) Offset() int {
	return s.current
}

// HasMore returns whether any runes remain unread.
func (s *StringSource) HasMore() bool {
	return s.current < len(s.runes)
}

// PeekNext returns the next rune without consuming it.
func (s *StringSource) PeekNext() (rune, error) {
	if !s.HasMore() {
		return 0, ErrNoMoreChars
	}
	return s.runes[s.current], nil
}

// EatNext consumes and returns the next rune.
func (s *StringSource) EatNext() (rune, error) {
	r, err := s.PeekNext()
	if err != nil {
		return 0, err
	}
	s.current++
	return r, nil
}
