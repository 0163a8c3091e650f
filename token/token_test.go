package token

import (
	"testing"

	"github.com/dekarrin/langtools/sourcing"
	"github.com/stretchr/testify/assert"
)

type kind int

const kindWord kind = 1

func Test_Token_kindless_dropsKindButKeepsPositionAndText(t *testing.T) {
	assert := assert.New(t)

	pos := sourcing.Position{Path: "test", Offset: 3, Line: 1, Column: 4}
	tok := New(pos, "foo", kindWord)

	kindless := tok.Kindless()
	assert.Equal(pos, kindless.Position)
	assert.Equal("foo", kindless.Text)
}

func Test_Token_string_includesKindTextAndPosition(t *testing.T) {
	assert := assert.New(t)

	pos := sourcing.Position{Path: "test", Line: 2, Column: 5}
	tok := New(pos, "bar", kindWord)

	s := tok.String()
	assert.Contains(s, "bar")
	assert.Contains(s, "test:2:5")
}
