package lexing

import "github.com/dekarrin/langtools/sourcing"

// Callback is invoked once a trigger's prefix has matched (and, per the
// greedy longest-match rule, no longer prefix sharing the same trigger's
// start state could also match). It may extend the match by consuming
// further characters from r, which appends them to its capture buffer,
// before deciding.
//
// Returning ok == true tells the driver to emit a token of the given kind
// from everything accumulated in the capture buffer so far (the matched
// prefix plus whatever the callback itself consumed). Returning ok == false
// discards the accumulated text entirely and tells the driver to lex another
// token instead, e.g. for trivia such as whitespace or comments.
type Callback[K any] func(r *sourcing.Reader) (kind K, ok bool)

// Trigger associates a literal prefix with a Callback. A Lexer is built from
// a set of Triggers; see Lexer.AddTrigger.
type Trigger[K any] struct {
	Prefix   string
	Callback Callback[K]
}
