// Package langtools is a toolkit for building hand-written language
// front ends: source reading with normalized newlines (sourcing), a
// generic DFA and executor (automaton), a trigger-based greedy lexer
// (lexing), recursive-descent parser combinators (parsing), and a
// severity-tagged diagnostic buffer (diag) threaded through both stages.
package langtools

import "github.com/dekarrin/langtools/internal/version"

// Version returns the toolkit's current version string.
func Version() string {
	return version.Current
}
