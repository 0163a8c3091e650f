package diag

import (
	"fmt"

	"github.com/dekarrin/langtools/sourcing"
	"github.com/dekarrin/langtools/token"
)

// OriginKind distinguishes the four places a Diagnostic can be anchored to.
type OriginKind int

const (
	// OriginGlobal is for messages with no particular source, e.g. ones
	// about the toolkit's own configuration.
	OriginGlobal OriginKind = iota
	// OriginWholeSource anchors a message to an entire source, identified
	// by its path, rather than a specific position within it.
	OriginWholeSource
	// OriginPosition anchors a message at a specific source position.
	OriginPosition
	// OriginToken anchors a message at a specific (kind-erased) token.
	OriginToken
)

// Origin identifies where a Diagnostic came from. Diagnostics anchored at a
// token hold a kind-erased copy of it, not a borrow, so the diagnostic's
// lifetime is independent of the token stream it came from.
type Origin struct {
	kind     OriginKind
	path     string
	position sourcing.Position
	token    token.KindlessToken
	// line, if non-empty, is the full text of the source line the origin
	// falls on, used by Render to draw a cursor under the offending text.
	line string
}

// GlobalOrigin returns an Origin for a message with no particular source.
func GlobalOrigin() Origin {
	return Origin{kind: OriginGlobal}
}

// WholeSourceOrigin returns an Origin anchored to an entire source, named by
// path.
func WholeSourceOrigin(path string) Origin {
	return Origin{kind: OriginWholeSource, path: path}
}

// PositionOrigin returns an Origin anchored at pos. line, if provided, is
// the full text of the source line pos falls on; pass "" if unavailable.
func PositionOrigin(pos sourcing.Position, line string) Origin {
	return Origin{kind: OriginPosition, position: pos, line: line}
}

// TokenOrigin returns an Origin anchored at tok, copying it so the
// diagnostic does not keep the token stream alive. line, if provided, is the
// full text of the source line the token falls on; pass "" if unavailable.
func TokenOrigin(tok token.KindlessToken, line string) Origin {
	return Origin{kind: OriginToken, token: tok, line: line}
}

// Kind returns which of the four origin flavors this is.
func (o Origin) Kind() OriginKind {
	return o.kind
}

// Position returns the anchoring position, valid for OriginPosition and
// OriginToken.
func (o Origin) Position() sourcing.Position {
	if o.kind == OriginToken {
		return o.token.Position
	}
	return o.position
}

// String renders the origin for inclusion in a rendered diagnostic.
func (o Origin) String() string {
	switch o.kind {
	case OriginGlobal:
		return "<global>"
	case OriginWholeSource:
		return o.path
	case OriginPosition:
		return o.position.String()
	case OriginToken:
		return o.token.String()
	default:
		return "<unknown origin>"
	}
}

// Diagnostic is a single severity-tagged message anchored at an Origin.
type Diagnostic struct {
	Origin      Origin
	Severity    Severity
	Description string
	// Stage is a short human label for where the diagnostic originated,
	// e.g. "lexer" or "parser". It is optional.
	Stage string
}

// String renders the diagnostic without source-line context, suitable for
// plain-text logs: "stage: severity: origin: description".
func (d Diagnostic) String() string {
	if d.Stage != "" {
		return fmt.Sprintf("%s: %s: %s: %s", d.Stage, d.Severity, d.Origin, d.Description)
	}
	return fmt.Sprintf("%s: %s: %s", d.Severity, d.Origin, d.Description)
}
