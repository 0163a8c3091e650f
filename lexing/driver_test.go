package lexing

import (
	"errors"
	"testing"

	"github.com/dekarrin/langtools/diag"
	"github.com/dekarrin/langtools/sourcing"
	"github.com/stretchr/testify/assert"
)

type testKind int

const (
	kWord testKind = iota
	kIf
	kNumber
	kString
)

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// consumeWhile eats characters from r as long as pred holds, stopping
// cleanly at end of source.
func consumeWhile(r *sourcing.Reader, pred func(rune) bool) {
	for {
		c, err := r.PeekNext()
		if err != nil || !pred(c) {
			return
		}
		r.EatNext()
	}
}

func newIdentifierLexer() *Lexer[testKind] {
	lx := NewLexer[testKind]()

	// "if" is a keyword, but only when not followed by further identifier
	// characters; otherwise it's an ordinary identifier like "ifx".
	ifErr := lx.AddTrigger(Trigger[testKind]{
		Prefix: "if",
		Callback: func(r *sourcing.Reader) (testKind, bool) {
			if c, err := r.PeekNext(); err == nil && (isLetter(c) || isDigit(c)) {
				consumeWhile(r, func(c rune) bool { return isLetter(c) || isDigit(c) })
				return kWord, true
			}
			return kIf, true
		},
	})
	if ifErr != nil {
		panic(ifErr)
	}

	for c := 'a'; c <= 'z'; c++ {
		if c == 'i' {
			continue // "i" gets its own trigger below, after the "if" trigger above
		}
		prefix := string(c)
		err := lx.AddTrigger(Trigger[testKind]{
			Prefix: prefix,
			Callback: func(r *sourcing.Reader) (testKind, bool) {
				consumeWhile(r, func(c rune) bool { return isLetter(c) || isDigit(c) })
				return kWord, true
			},
		})
		if err != nil {
			panic(err)
		}
	}
	// "i" alone (not followed by "f") still needs to reach an identifier.
	iErr := lx.AddTrigger(Trigger[testKind]{
		Prefix: "i",
		Callback: func(r *sourcing.Reader) (testKind, bool) {
			consumeWhile(r, func(c rune) bool { return isLetter(c) || isDigit(c) })
			return kWord, true
		},
	})
	if iErr != nil {
		panic(iErr)
	}

	for c := '0'; c <= '9'; c++ {
		prefix := string(c)
		err := lx.AddTrigger(Trigger[testKind]{
			Prefix: prefix,
			Callback: func(r *sourcing.Reader) (testKind, bool) {
				consumeWhile(r, isDigit)
				return kNumber, true
			},
		})
		if err != nil {
			panic(err)
		}
	}

	strErr := lx.AddTrigger(Trigger[testKind]{
		Prefix: `"`,
		Callback: func(r *sourcing.Reader) (testKind, bool) {
			for {
				c, err := r.PeekNext()
				if err != nil {
					return kString, true // unterminated: emit what we have
				}
				r.EatNext()
				if c == '"' {
					return kString, true
				}
			}
		},
	})
	if strErr != nil {
		panic(strErr)
	}

	wsErr := lx.AddTrigger(Trigger[testKind]{
		Prefix: " ",
		Callback: func(r *sourcing.Reader) (testKind, bool) {
			consumeWhile(r, func(c rune) bool { return c == ' ' || c == '\t' || c == '\n' })
			return 0, false
		},
	})
	if wsErr != nil {
		panic(wsErr)
	}
	for _, p := range []string{"\t", "\n"} {
		err := lx.AddTrigger(Trigger[testKind]{
			Prefix: p,
			Callback: func(r *sourcing.Reader) (testKind, bool) {
				consumeWhile(r, func(c rune) bool { return c == ' ' || c == '\t' || c == '\n' })
				return 0, false
			},
		})
		if err != nil {
			panic(err)
		}
	}

	return lx
}

func driverFor(lx *Lexer[testKind], text string) (*Driver[testKind], *diag.Buffer) {
	src := sourcing.NewStringSource("test", text)
	reader := sourcing.NewReader(src)
	msgs := diag.NewBuffer()
	return lx.Lex(reader, msgs), msgs
}

func Test_Driver_longestMatch_keywordVsIdentifier(t *testing.T) {
	assert := assert.New(t)

	lx := newIdentifierLexer()

	d, _ := driverFor(lx, "if")
	toks, err := d.All()
	assert.NoError(err)
	if assert.Len(toks, 1) {
		assert.Equal(kIf, toks[0].Kind)
		assert.Equal("if", toks[0].Text)
	}

	d2, _ := driverFor(lx, "ifx")
	toks2, err := d2.All()
	assert.NoError(err)
	if assert.Len(toks2, 1) {
		assert.Equal(kWord, toks2[0].Kind)
		assert.Equal("ifx", toks2[0].Text)
	}
}

func Test_Driver_unexpectedCharacter_recoversAndContinues(t *testing.T) {
	assert := assert.New(t)

	lx := newIdentifierLexer()
	d, msgs := driverFor(lx, "foo @ bar")

	toks, err := d.All()
	assert.NoError(err)

	var texts []string
	for _, tok := range toks {
		texts = append(texts, tok.Text)
	}
	assert.Equal([]string{"foo", "bar"}, texts)
	assert.Equal(1, msgs.CountWithSeverity(diag.Error))
}

func Test_Driver_callbackExtension_numberAndString(t *testing.T) {
	assert := assert.New(t)

	lx := newIdentifierLexer()
	d, _ := driverFor(lx, `123 "hello world"`)

	toks, err := d.All()
	assert.NoError(err)
	if assert.Len(toks, 2) {
		assert.Equal(kNumber, toks[0].Kind)
		assert.Equal("123", toks[0].Text)
		assert.Equal(kString, toks[1].Kind)
		assert.Equal(`"hello world"`, toks[1].Text)
	}
}

func Test_Driver_crlfFolding_affectsTokenPositions(t *testing.T) {
	assert := assert.New(t)

	lx := newIdentifierLexer()
	d, _ := driverFor(lx, "foo\r\nbar")

	toks, err := d.All()
	assert.NoError(err)
	if assert.Len(toks, 2) {
		assert.Equal(1, toks[0].Position.Line)
		assert.Equal(1, toks[0].Position.Column)
		assert.Equal(2, toks[1].Position.Line)
		assert.Equal(1, toks[1].Position.Column)
	}
}

func Test_Driver_emptySource_yieldsNoTokens(t *testing.T) {
	assert := assert.New(t)

	lx := newIdentifierLexer()
	d, _ := driverFor(lx, "")

	toks, err := d.All()
	assert.NoError(err)
	assert.Empty(toks)
}

func Test_Driver_next_returnsErrEndOfSourceAtExhaustion(t *testing.T) {
	assert := assert.New(t)

	lx := newIdentifierLexer()
	d, _ := driverFor(lx, "foo")

	_, err := d.Next()
	assert.NoError(err)

	_, err = d.Next()
	assert.True(errors.Is(err, ErrEndOfSource))
}
