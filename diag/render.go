package diag

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dekarrin/rosed"
	"golang.org/x/text/width"
)

// descriptionWrapWidth is the column at which a diagnostic's description is
// wrapped by Render.
const descriptionWrapWidth = 80

// Render renders the diagnostic as multi-line, human-readable text: the
// position, severity, and (word-wrapped) description, followed by the
// offending source line and a cursor pointing at the column, when the
// origin carries one.
func (d Diagnostic) Render() string {
	wrapped := rosed.Edit(d.Description).Wrap(descriptionWrapWidth).String()

	var sb strings.Builder
	if d.Stage != "" {
		fmt.Fprintf(&sb, "%s: %s: %s: %s", d.Stage, d.Severity, d.Origin, wrapped)
	} else {
		fmt.Fprintf(&sb, "%s: %s: %s", d.Severity, d.Origin, wrapped)
	}

	if d.Origin.line != "" {
		sb.WriteRune('\n')
		sb.WriteString(d.Origin.line)
		sb.WriteRune('\n')
		sb.WriteString(cursorLine(d.Origin.line, d.Origin.Position().Column))
	}

	return sb.String()
}

// cursorLine returns a line of spaces with a single '^' positioned under
// the rune at the given 1-based column of line, accounting for the display
// width of wide (e.g. East Asian fullwidth) runes that precede it.
func cursorLine(line string, column int) string {
	indent := 0
	runeIdx := 0

	for _, r := range line {
		runeIdx++
		if runeIdx >= column {
			break
		}
		indent += runeDisplayWidth(r)
	}

	return fmt.Sprintf("%*s^", indent, "")
}

// runeDisplayWidth estimates how many monospace columns r occupies, per the
// East Asian width classification db47h/lex uses for the same purpose
// (golang.org/x/text/width).
func runeDisplayWidth(r rune) int {
	if !unicode.IsGraphic(r) {
		return 0
	}

	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	case width.EastAsianAmbiguous:
		return 1
	default:
		return 1
	}
}
