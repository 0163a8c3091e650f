package parsing

import (
	"fmt"
	"sort"

	"github.com/dekarrin/langtools/internal/util"
	"github.com/dekarrin/langtools/token"
)

// expectedList renders a set of expected token kinds as a human-readable,
// Oxford-comma-joined list, e.g. "A, B, and C".
func expectedList[K comparable](s util.Set[K]) string {
	elems := s.Elements()
	strs := make([]string, len(elems))
	for i, e := range elems {
		strs[i] = fmt.Sprintf("%v", e)
	}
	sort.Strings(strs)
	return util.MakeTextList(strs)
}

// invalidSeekError is returned by TokenReader.Seek for an out-of-range or
// forward offset.
type invalidSeekError struct {
	offset int
	cursor int
}

func (e *invalidSeekError) Error() string {
	return fmt.Sprintf("parsing: cannot seek to offset %d from cursor %d: seeking is backward-only", e.offset, e.cursor)
}

// UnexpectedEndOfSourceError is returned by a Parser when the token stream
// is exhausted before it could match.
type UnexpectedEndOfSourceError[K comparable] struct {
	Expected util.Set[K]
}

func (e *UnexpectedEndOfSourceError[K]) Error() string {
	return fmt.Sprintf("parsing: unexpected end of source, expected %s", expectedList(e.Expected))
}

// UnexpectedTokenError is returned by a Parser when the next token's kind
// is not among those it expects.
type UnexpectedTokenError[K comparable] struct {
	Expected util.Set[K]
	Actual   token.Token[K]
}

func (e *UnexpectedTokenError[K]) Error() string {
	return fmt.Sprintf("parsing: unexpected token %s, expected %s", e.Actual, expectedList(e.Expected))
}

// RequiredParserFieldMissingError is returned by a Parser builder function
// (e.g. NewSequenceParser) when a required field was left empty.
type RequiredParserFieldMissingError struct {
	Name string
}

func (e *RequiredParserFieldMissingError) Error() string {
	return fmt.Sprintf("parsing: required field %q was not provided", e.Name)
}

// NoExpectedTokensProvidedError is returned by ExpectedTokens when a Parser
// has no alternatives or terminals to derive an expected-token set from
// (e.g. an empty ChoiceParser).
type NoExpectedTokensProvidedError struct{}

func (e *NoExpectedTokensProvidedError) Error() string {
	return "parsing: parser has no expected tokens to report"
}

// RecursionLimitExceededError is returned when LazyParser recursion exceeds
// a TokenReader's configured maximum depth, guarding against infinite
// recursion in cyclic grammars.
type RecursionLimitExceededError struct {
	Limit int
}

func (e *RecursionLimitExceededError) Error() string {
	return fmt.Sprintf("parsing: recursion limit of %d exceeded", e.Limit)
}
