package automaton

import "fmt"

// Executor is a stateful cursor over a borrowed DFA. It holds no heap state
// beyond the DFA reference, the frozen start ID, and the current cursor ID,
// so constructing one is cheap enough to do once per lex attempt (see
// package lexing).
type Executor[E comparable, A any] struct {
	dfa     *DFA[E, A]
	start   int
	cursor  int
	atStart bool
}

// NewExecutor returns an Executor over dfa, positioned at its start state.
// dfa must have a start state set.
func NewExecutor[E comparable, A any](dfa *DFA[E, A]) (*Executor[E, A], error) {
	start, ok := dfa.Start()
	if !ok {
		return nil, errNoStartState
	}
	return &Executor[E, A]{dfa: dfa, start: start, cursor: start, atStart: true}, nil
}

// Reset moves the cursor back to the DFA's start state.
func (e *Executor[E, A]) Reset() {
	e.cursor = e.start
	e.atStart = true
}

// Step attempts to move the cursor along the transition for element on. If
// no such transition exists, the cursor is left unchanged and an error is
// returned so the caller can act on the pre-step state (in particular, its
// action).
func (e *Executor[E, A]) Step(on E) error {
	to, ok := e.dfa.Transition(e.cursor, on)
	if !ok {
		return &noTransitionError{state: e.cursor, on: fmt.Sprintf("%v", on)}
	}
	e.cursor = to
	e.atStart = false
	return nil
}

// CurrentAction returns the action of the cursor state, if it has one.
func (e *Executor[E, A]) CurrentAction() (A, bool) {
	return e.dfa.Action(e.cursor)
}

// IsAtStart returns true iff no successful Step has occurred since
// construction or the last Reset.
func (e *Executor[E, A]) IsAtStart() bool {
	return e.atStart
}
