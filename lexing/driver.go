package lexing

import (
	"errors"
	"fmt"

	"github.com/dekarrin/langtools/automaton"
	"github.com/dekarrin/langtools/diag"
	"github.com/dekarrin/langtools/sourcing"
	"github.com/dekarrin/langtools/token"
)

// Driver runs a Lexer against a single Reader, producing one Token at a
// time. It is created by Lexer.Lex and is not safe for concurrent use.
type Driver[K any] struct {
	lexer    *Lexer[K]
	reader   *sourcing.Reader
	messages *diag.Buffer
}

// LexNext runs the greedy longest-match algorithm once: it walks the
// lexer's trigger DFA over the reader's upcoming characters, remembering the
// action of the last state with one seen along the way, then replays that
// action against everything consumed.
//
// It enables the reader's capture buffer if it is not already enabled and
// leaves it enabled afterwards; if it is already enabled, it must be empty.
// Callers that only ever go through Next need not think about this.
//
// LexNext returns an unexpected-character error if the very first character
// could not extend any trigger, or an unexpected-end-of-source error if the
// reader was exhausted before any trigger's callback ever matched. Both are
// unexported; use Next, which already knows how to recover from the first
// and treat the second as the normal end of iteration.
func (d *Driver[K]) LexNext() (token.Token[K], error) {
	if !d.reader.CaptureEnabled() {
		if err := d.reader.EnableCapture(); err != nil {
			return token.Token[K]{}, fmt.Errorf("lexing: %w", err)
		}
	} else if buf, err := d.reader.Buffer(); err != nil {
		return token.Token[K]{}, fmt.Errorf("lexing: %w", err)
	} else if buf != "" {
		return token.Token[K]{}, fmt.Errorf("lexing: capture buffer was not empty at start of LexNext")
	}

	startPos := d.reader.Position()

	exec, err := automaton.NewExecutor(d.lexer.dfa)
	if err != nil {
		return token.Token[K]{}, &FatalError{cause: err}
	}

	var bestAction Callback[K]
	haveBest := false
	var firstChar rune
	haveFirstChar := false

	for {
		if act, has := exec.CurrentAction(); has {
			bestAction = act
			haveBest = true
		}

		next, peekErr := d.reader.PeekNext()
		if peekErr != nil {
			if errors.Is(peekErr, sourcing.ErrNoMoreChars) {
				break
			}
			return token.Token[K]{}, &FatalError{cause: peekErr}
		}
		if !haveFirstChar {
			firstChar = next
			haveFirstChar = true
		}

		if stepErr := exec.Step(next); stepErr != nil {
			break
		}
		if _, err := d.reader.EatNext(); err != nil {
			return token.Token[K]{}, &FatalError{cause: err}
		}
	}

	if haveBest {
		kind, ok := bestAction(d.reader)
		if ok {
			text, err := d.reader.PopCapture()
			if err != nil {
				return token.Token[K]{}, &FatalError{cause: err}
			}
			return token.New(startPos, text, kind), nil
		}
		if err := d.reader.ClearCapture(); err != nil {
			return token.Token[K]{}, &FatalError{cause: err}
		}
		return d.LexNext()
	}

	if exec.IsAtStart() && haveFirstChar {
		if err := d.reader.ClearCapture(); err != nil {
			return token.Token[K]{}, &FatalError{cause: err}
		}
		return token.Token[K]{}, &unexpectedCharacterError{char: firstChar, pos: startPos}
	}

	if err := d.reader.ClearCapture(); err != nil {
		return token.Token[K]{}, &FatalError{cause: err}
	}
	return token.Token[K]{}, errUnexpectedEndOfSource
}

// Next returns the next token, recovering from unexpected-character errors
// on its own: it emits an Error-severity diagnostic, invokes the lexer's
// error handler (by default, consuming one character), and tries again.
//
// Next returns ErrEndOfSource once the reader is exhausted, which is the
// normal, successful way for iteration to end. Any other non-nil error is a
// *FatalError wrapping whatever underlying sourcing or automaton failure
// caused it, and iteration should not continue after one is seen.
func (d *Driver[K]) Next() (token.Token[K], error) {
	for {
		tok, err := d.LexNext()
		if err == nil {
			return tok, nil
		}

		var unexpectedEnd *unexpectedEndOfSourceError
		if errors.As(err, &unexpectedEnd) {
			return token.Token[K]{}, ErrEndOfSource
		}

		var unexpectedChar *unexpectedCharacterError
		if errors.As(err, &unexpectedChar) {
			d.messages.Emit(diag.Diagnostic{
				Origin:      diag.PositionOrigin(unexpectedChar.pos, ""),
				Severity:    diag.Error,
				Description: fmt.Sprintf("unexpected character %q", unexpectedChar.char),
				Stage:       "lexer",
			})
			d.lexer.errorHandler(d.reader)
			continue
		}

		var fatal *FatalError
		if errors.As(err, &fatal) {
			d.messages.Emit(diag.Diagnostic{
				Origin:      diag.GlobalOrigin(),
				Severity:    diag.InternalError,
				Description: err.Error(),
				Stage:       "lexer",
			})
			return token.Token[K]{}, err
		}

		return token.Token[K]{}, err
	}
}

// All drains the driver to completion, returning every token produced
// before ErrEndOfSource or the first fatal error. It is a convenience for
// tests and small inputs; callers with large sources should prefer Next.
func (d *Driver[K]) All() ([]token.Token[K], error) {
	var toks []token.Token[K]
	for {
		tok, err := d.Next()
		if err != nil {
			if errors.Is(err, ErrEndOfSource) {
				return toks, nil
			}
			return toks, err
		}
		toks = append(toks, tok)
	}
}
