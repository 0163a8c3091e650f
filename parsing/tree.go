package parsing

import "github.com/dekarrin/langtools/token"

// Tree is a node of a parse tree. Every Tree is anchored at the first token
// it (or, for non-terminals, its leftmost descendant) consumed, so
// diagnostics can always point at a concrete source location.
type Tree interface {
	// Anchor returns the kind-erased token this node (or its leftmost
	// descendant) begins at.
	Anchor() token.KindlessToken

	// Children returns this node's immediate sub-trees, in left-to-right
	// order. A terminal returns nil.
	Children() []Tree
}

// Visitor is notified of each node as Walk descends a Tree depth-first,
// left to right. Visit returns whether Walk should descend into the node's
// children.
type Visitor interface {
	Visit(t Tree) bool
}

// Walk calls v.Visit on t and, if it returns true, recurses into t's
// children in order.
func Walk(t Tree, v Visitor) {
	if t == nil {
		return
	}
	if v.Visit(t) {
		for _, c := range t.Children() {
			Walk(c, v)
		}
	}
}

// TerminalTree is a general-purpose Tree for a single matched token with no
// children. A TerminalParser action may return one directly, or embed it in
// a caller-defined type to attach more data to the node.
type TerminalTree struct {
	Token token.KindlessToken
}

func (t TerminalTree) Anchor() token.KindlessToken {
	return t.Token
}

func (t TerminalTree) Children() []Tree {
	return nil
}

// SequenceTree is a general-purpose Tree for an ordered run of sub-trees,
// anchored at the first one. A SequenceParser action may return one
// directly, or embed it in a caller-defined type to attach more data to the
// node.
type SequenceTree struct {
	Parts []Tree
}

func (t SequenceTree) Anchor() token.KindlessToken {
	return t.Parts[0].Anchor()
}

func (t SequenceTree) Children() []Tree {
	return t.Parts
}
