// Package token defines the lexeme type shared by the lexing and parsing
// packages: a source position, the exact matched text, and a user-supplied
// kind tag.
package token

import (
	"fmt"

	"github.com/dekarrin/langtools/sourcing"
)

// Token pairs a source position and lexeme text with a user-defined kind
// tag K. Position is the location of the token's first character; Text is
// the exact accumulated characters after newline folding.
type Token[K any] struct {
	Position sourcing.Position
	Text     string
	Kind     K
}

// New returns a Token with the given position, text, and kind.
func New[K any](pos sourcing.Position, text string, kind K) Token[K] {
	return Token[K]{Position: pos, Text: text, Kind: kind}
}

// String renders the token for diagnostics and test failure output.
func (t Token[K]) String() string {
	return fmt.Sprintf("%v(%q)@%s", t.Kind, t.Text, t.Position)
}

// Kindless returns a copy of t with the kind tag erased, so downstream types
// (tree nodes, diagnostics) don't need to be parameterized by K.
func (t Token[K]) Kindless() KindlessToken {
	return KindlessToken{Position: t.Position, Text: t.Text}
}

// KindlessToken carries a token's position and text without its kind. It is
// used in tree nodes and diagnostics to avoid re-parameterizing downstream
// types over the grammar's token-kind type.
type KindlessToken struct {
	Position sourcing.Position
	Text     string
}

// String renders the kindless token for diagnostics.
func (t KindlessToken) String() string {
	return fmt.Sprintf("%q@%s", t.Text, t.Position)
}
