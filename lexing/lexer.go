package lexing

import (
	"github.com/dekarrin/langtools/automaton"
	"github.com/dekarrin/langtools/diag"
	"github.com/dekarrin/langtools/sourcing"
)

// ErrorHandler is invoked by a Driver when LexNext reports an unexpected
// character, so the caller can decide how to recover. The default handler
// consumes exactly one character from r.
type ErrorHandler func(r *sourcing.Reader)

// defaultErrorHandler implements the recovery strategy spec.md §7 calls out
// as the default: consume one character and try again.
func defaultErrorHandler(r *sourcing.Reader) {
	r.EatNext()
}

// Lexer holds a set of Triggers compiled into a single DFA, plus the
// handler used to recover from unexpected characters. It has no notion of
// any particular source; Lex attaches it to a Reader to produce a Driver.
type Lexer[K any] struct {
	dfa          *automaton.DFA[rune, Callback[K]]
	errorHandler ErrorHandler
}

// NewLexer returns an empty Lexer with no triggers and the default
// single-character error handler.
func NewLexer[K any]() *Lexer[K] {
	dfa := automaton.New[rune, Callback[K]]()
	start := dfa.AddState()
	// A freshly allocated state always exists, so this cannot fail.
	dfa.SetStart(start)
	return &Lexer[K]{dfa: dfa, errorHandler: defaultErrorHandler}
}

// AddTrigger walks the lexer's DFA from its start state along t.Prefix,
// adding new states and transitions for any characters not already covered
// by a previously added trigger, and attaches t.Callback as the action of
// the resulting state.
//
// Prefix must be non-empty. If another trigger was already registered for
// the exact same prefix, AddTrigger returns an error and the DFA is left as
// it was before the call.
func (lx *Lexer[K]) AddTrigger(t Trigger[K]) error {
	if t.Prefix == "" {
		return ErrEmptyPrefix
	}

	start, _ := lx.dfa.Start()
	state := start

	for _, r := range t.Prefix {
		if to, ok := lx.dfa.Transition(state, r); ok {
			state = to
			continue
		}
		next := lx.dfa.AddState()
		if err := lx.dfa.AddTransition(state, r, next); err != nil {
			return err
		}
		state = next
	}

	if _, has := lx.dfa.Action(state); has {
		return &duplicateTriggerError{prefix: t.Prefix}
	}

	return lx.dfa.SetAction(state, t.Callback)
}

// SetErrorHandler replaces the lexer's recovery strategy for unexpected
// characters. Passing nil restores the default (consume one character).
func (lx *Lexer[K]) SetErrorHandler(h ErrorHandler) {
	if h == nil {
		h = defaultErrorHandler
	}
	lx.errorHandler = h
}

// Lex attaches the lexer to reader, returning a Driver that produces
// tokens one at a time. messages receives diagnostics for recovered
// unexpected-character errors and for fatal, unrecoverable ones.
func (lx *Lexer[K]) Lex(reader *sourcing.Reader, messages *diag.Buffer) *Driver[K] {
	return &Driver[K]{lexer: lx, reader: reader, messages: messages}
}
