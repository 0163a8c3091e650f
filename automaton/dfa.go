// Package automaton implements a generic deterministic finite-state
// automaton with state-attached actions, plus a companion executor that
// walks it one element at a time. It is used both as a public utility and
// as the matching engine behind the lexer's triggers (see package lexing).
package automaton

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// DFA is an arena of states indexed by small non-negative integers. Each
// state optionally carries an action of type A and a mapping from elements
// of type E to destination state IDs. States and transitions are only ever
// added, never removed: the arena grows monotonically. Exactly one state may
// be designated the (re-settable) start state.
type DFA[E comparable, A any] struct {
	states []dfaState[E, A]
	start  int
	hasStart bool
}

type dfaState[E comparable, A any] struct {
	transitions map[E]int
	action      A
	hasAction   bool
}

// New returns an empty DFA with no states and no start state set.
func New[E comparable, A any]() *DFA[E, A] {
	return &DFA[E, A]{start: -1}
}

// NumStates returns the number of states allocated so far.
func (d *DFA[E, A]) NumStates() int {
	return len(d.states)
}

// AddState allocates a new state and returns its ID. IDs are assigned
// sequentially starting at 0.
func (d *DFA[E, A]) AddState() int {
	d.states = append(d.states, dfaState[E, A]{transitions: make(map[E]int)})
	return len(d.states) - 1
}

func (d *DFA[E, A]) checkState(s int) error {
	if s < 0 || s >= len(d.states) {
		return newInvalidStateError(s, len(d.states))
	}
	return nil
}

// SetStart designates s as the DFA's start state. s must already exist. The
// start state may be re-set freely.
func (d *DFA[E, A]) SetStart(s int) error {
	if err := d.checkState(s); err != nil {
		return err
	}
	d.start = s
	d.hasStart = true
	return nil
}

// Start returns the designated start state and whether one has been set.
func (d *DFA[E, A]) Start() (int, bool) {
	return d.start, d.hasStart
}

// AddTransition adds a transition from "from" to "to" on element "on". Both
// states must already exist; if "to" is out of range, the insertion fails
// before anything is written to "from"'s transition table. If "from" already
// has a transition on "on" (even to the same destination), the insertion
// fails and the table is left unchanged.
func (d *DFA[E, A]) AddTransition(from int, on E, to int) error {
	if err := d.checkState(from); err != nil {
		return err
	}
	if err := d.checkState(to); err != nil {
		return fmt.Errorf("automaton: transition destination: %w", err)
	}

	st := &d.states[from]
	if _, exists := st.transitions[on]; exists {
		return &duplicateTransitionError{from: from, on: fmt.Sprintf("%v", on)}
	}
	st.transitions[on] = to
	return nil
}

// Transition returns the destination of state "from" on element "on", and
// whether one exists.
func (d *DFA[E, A]) Transition(from int, on E) (int, bool) {
	if err := d.checkState(from); err != nil {
		return 0, false
	}
	to, ok := d.states[from].transitions[on]
	return to, ok
}

// SetAction sets (or replaces) the action of state s.
func (d *DFA[E, A]) SetAction(s int, action A) error {
	if err := d.checkState(s); err != nil {
		return err
	}
	d.states[s].action = action
	d.states[s].hasAction = true
	return nil
}

// ClearAction resets state s to have no action.
func (d *DFA[E, A]) ClearAction(s int) error {
	if err := d.checkState(s); err != nil {
		return err
	}
	var zero A
	d.states[s].action = zero
	d.states[s].hasAction = false
	return nil
}

// Action returns the action attached to state s, and whether it has one.
func (d *DFA[E, A]) Action(s int) (A, bool) {
	if err := d.checkState(s); err != nil {
		var zero A
		return zero, false
	}
	st := d.states[s]
	return st.action, st.hasAction
}

// String renders the DFA as a transition table, one row per state.
func (d *DFA[E, A]) String() string {
	data := [][]string{{"state", "accepting", "transitions"}}

	for i, st := range d.states {
		name := fmt.Sprintf("%d", i)
		if i == d.start && d.hasStart {
			name += " (start)"
		}

		accepting := ""
		if st.hasAction {
			accepting = "yes"
		}

		trans := ""
		for on, to := range st.transitions {
			if trans != "" {
				trans += ", "
			}
			trans += fmt.Sprintf("%v -> %d", on, to)
		}

		data = append(data, []string{name, accepting, trans})
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 100, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
