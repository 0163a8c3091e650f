package lexing

import (
	"errors"
	"fmt"

	"github.com/dekarrin/langtools/sourcing"
)

// ErrEmptyPrefix is returned by AddTrigger when given an empty prefix; every
// trigger must activate on at least one character.
var ErrEmptyPrefix = errors.New("lexing: trigger prefix must not be empty")

// ErrEndOfSource is returned by Driver.Next to signal clean, normal
// exhaustion of the token stream. It is never returned by LexNext, which
// reports the more specific unexpectedEndOfSourceError instead.
var ErrEndOfSource = errors.New("lexing: end of source")

// duplicateTriggerError is raised at lexer-build time only, when two
// triggers share a prefix (one being exactly the other, or two distinct
// callbacks landing on the same DFA state).
type duplicateTriggerError struct {
	prefix string
}

func (e *duplicateTriggerError) Error() string {
	return fmt.Sprintf("lexing: duplicate trigger for prefix %q", e.prefix)
}

// unexpectedCharacterError is raised by LexNext when the character at the
// front of the reader cannot start any trigger. It is recoverable at the
// Driver.Next level.
type unexpectedCharacterError struct {
	char rune
	pos  sourcing.Position
}

func (e *unexpectedCharacterError) Error() string {
	return fmt.Sprintf("lexing: unexpected character %q at %s", e.char, e.pos)
}

// unexpectedEndOfSourceError is raised by LexNext when the reader is
// exhausted before any trigger's prefix matched. It is terminal and,
// from Driver.Next's perspective, silent: it signals normal end of input.
type unexpectedEndOfSourceError struct{}

func (e *unexpectedEndOfSourceError) Error() string {
	return "lexing: unexpected end of source"
}

var errUnexpectedEndOfSource error = &unexpectedEndOfSourceError{}

// FatalError wraps an underlying sourcing or automaton error encountered
// mid-lex. Per spec.md §9's recommendation, Driver.Next propagates these
// with this typed fatal variant rather than silently terminating, after
// first emitting an InternalError diagnostic.
type FatalError struct {
	cause error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("lexing: fatal: %s", e.cause)
}

func (e *FatalError) Unwrap() error {
	return e.cause
}
