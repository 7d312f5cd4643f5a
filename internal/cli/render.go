// internal/cli/render.go
//
// Terminal rendering of grader feedback as emoji tiles, one glyph per
// position. The glyphs are a presentation choice; the game core only ever
// deals in Mark values.

package cli

import (
	"strings"

	"github.com/vsworlde/vsworlde/internal/game"
)

const (
	glyphExact   = "🟩"
	glyphPresent = "🟨"
	glyphAbsent  = "⬛"
)

// renderMarks concatenates one tile per mark, in position order.
func renderMarks(marks []game.Mark) string {
	var b strings.Builder
	for _, m := range marks {
		switch m {
		case game.MarkExact:
			b.WriteString(glyphExact)
		case game.MarkPresent:
			b.WriteString(glyphPresent)
		default:
			b.WriteString(glyphAbsent)
		}
	}
	return b.String()
}
