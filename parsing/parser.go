package parsing

import (
	"github.com/dekarrin/langtools/internal/util"
	"github.com/dekarrin/langtools/token"
)

// Parser recognizes some portion of a token stream and builds a Tree from
// it. TerminalParser leaves a TokenReader's cursor unchanged on failure, and
// ChoiceParser seeks it back to where it started before returning a failure.
// SequenceParser does not roll back: tokens consumed by the sub-parsers that
// succeeded before the failing one stay consumed.
type Parser[K comparable] interface {
	// Parse consumes tokens from r and returns the Tree it built. On
	// failure it returns a nil Tree and a non-nil error (normally an
	// *UnexpectedTokenError or *UnexpectedEndOfSourceError).
	Parse(r *TokenReader[K]) (Tree, error)

	// ExpectedTokens returns the set of token kinds this parser could begin
	// matching on, used to build combined error messages for enclosing
	// parsers and, for ChoiceParser, to report to callers that want to
	// predict ahead of time. It returns an error only if the parser has no
	// well-defined expected set (e.g. an empty ChoiceParser).
	ExpectedTokens() (util.Set[K], error)
}

// TerminalParser matches a single token of exactly one kind, building a
// Tree from it via a user-supplied action.
type TerminalParser[K comparable] struct {
	Kind   K
	action func(token.KindlessToken) Tree
}

// NewTerminalParser returns a TerminalParser matching kind, invoking action
// with the matched token (kind-erased) to build the resulting Tree. action
// is required.
func NewTerminalParser[K comparable](kind K, action func(token.KindlessToken) Tree) (*TerminalParser[K], error) {
	if action == nil {
		return nil, &RequiredParserFieldMissingError{Name: "action"}
	}
	return &TerminalParser[K]{Kind: kind, action: action}, nil
}

func (p *TerminalParser[K]) ExpectedTokens() (util.Set[K], error) {
	return util.NewSet(p.Kind), nil
}

func (p *TerminalParser[K]) Parse(r *TokenReader[K]) (Tree, error) {
	tok, err := r.PeekNext()
	if err != nil {
		return nil, &UnexpectedEndOfSourceError[K]{Expected: util.NewSet(p.Kind)}
	}
	if tok.Kind != p.Kind {
		return nil, &UnexpectedTokenError[K]{Expected: util.NewSet(p.Kind), Actual: tok}
	}
	r.EatNext()
	return p.action(tok.Kindless()), nil
}

// SequenceParser matches each of its sub-parsers in order, failing as soon
// as one of them does, then builds a Tree from the matched children via a
// user-supplied action. Its expected-token set is that of its first
// sub-parser alone, since that is the only one consulted before any input
// is consumed.
type SequenceParser[K comparable] struct {
	Parsers []Parser[K]
	action  func(anchor token.KindlessToken, children []Tree) Tree
}

// NewSequenceParser returns a SequenceParser over parsers, which must be
// non-empty, invoking action with the first child's anchor token and the
// full list of matched children to build the resulting Tree. action is
// required.
func NewSequenceParser[K comparable](parsers []Parser[K], action func(anchor token.KindlessToken, children []Tree) Tree) (*SequenceParser[K], error) {
	if len(parsers) == 0 {
		return nil, &RequiredParserFieldMissingError{Name: "Parsers"}
	}
	if action == nil {
		return nil, &RequiredParserFieldMissingError{Name: "action"}
	}
	return &SequenceParser[K]{Parsers: parsers, action: action}, nil
}

func (p *SequenceParser[K]) ExpectedTokens() (util.Set[K], error) {
	return p.Parsers[0].ExpectedTokens()
}

func (p *SequenceParser[K]) Parse(r *TokenReader[K]) (Tree, error) {
	children := make([]Tree, 0, len(p.Parsers))
	for _, sub := range p.Parsers {
		tree, err := sub.Parse(r)
		if err != nil {
			return nil, err
		}
		children = append(children, tree)
	}
	anchor := children[0].Anchor()
	return p.action(anchor, children), nil
}

// ChoiceParser tries each of its sub-parsers in order against the same
// starting position, returning the Tree of the first one that succeeds. It
// is the only combinator that backtracks: before trying the next
// alternative, it seeks the TokenReader back to where it started.
type ChoiceParser[K comparable] struct {
	Parsers []Parser[K]
}

// NewChoiceParser returns a ChoiceParser over parsers, which must be
// non-empty.
func NewChoiceParser[K comparable](parsers []Parser[K]) (*ChoiceParser[K], error) {
	if len(parsers) == 0 {
		return nil, &RequiredParserFieldMissingError{Name: "Parsers"}
	}
	return &ChoiceParser[K]{Parsers: parsers}, nil
}

func (p *ChoiceParser[K]) ExpectedTokens() (util.Set[K], error) {
	out := util.NewSet[K]()
	for _, sub := range p.Parsers {
		set, err := sub.ExpectedTokens()
		if err != nil {
			return nil, err
		}
		out.AddAll(set)
	}
	if out.Empty() {
		return nil, &NoExpectedTokensProvidedError{}
	}
	return out, nil
}

func (p *ChoiceParser[K]) Parse(r *TokenReader[K]) (Tree, error) {
	start := r.Offset()
	expected := util.NewSet[K]()

	for _, sub := range p.Parsers {
		tree, err := sub.Parse(r)
		if err == nil {
			return tree, nil
		}

		if set, setErr := sub.ExpectedTokens(); setErr == nil {
			expected.AddAll(set)
		}

		if seekErr := r.Seek(start); seekErr != nil {
			return nil, seekErr
		}
	}

	if _, peekErr := r.PeekNext(); peekErr != nil {
		return nil, &UnexpectedEndOfSourceError[K]{Expected: expected}
	}
	tok, _ := r.PeekNext()
	return nil, &UnexpectedTokenError[K]{Expected: expected, Actual: tok}
}

// LazyParser defers resolving its underlying Parser until first use,
// calling Resolve at most once. It exists so that mutually- or
// self-referential grammars can be expressed as plain Go values: a rule
// that refers to itself would otherwise need to exist before it is fully
// constructed.
type LazyParser[K comparable] struct {
	Resolve func() Parser[K]

	resolved Parser[K]
}

// NewLazyParser returns a LazyParser that calls resolve on first use.
func NewLazyParser[K comparable](resolve func() Parser[K]) *LazyParser[K] {
	return &LazyParser[K]{Resolve: resolve}
}

func (p *LazyParser[K]) get() Parser[K] {
	if p.resolved == nil {
		p.resolved = p.Resolve()
	}
	return p.resolved
}

func (p *LazyParser[K]) ExpectedTokens() (util.Set[K], error) {
	return p.get().ExpectedTokens()
}

func (p *LazyParser[K]) Parse(r *TokenReader[K]) (Tree, error) {
	if err := r.enterRecursion(); err != nil {
		return nil, err
	}
	defer r.exitRecursion()
	return p.get().Parse(r)
}
