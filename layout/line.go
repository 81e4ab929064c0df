package layout

import (
	"strings"

	"github.com/tsawler/pagemd/font"
	"github.com/tsawler/pagemd/model"
)

// ComposedLine is one line folded into a single inline-formatted text
// fragment. FontSize and FontName are the canonical size and font of the
// line's last non-empty span; that representative value is what heading
// and code classification of the whole line runs on.
type ComposedLine struct {
	// Text is the space-joined, emphasis-wrapped span text. Empty when the
	// line had no non-empty spans.
	Text string

	// FontSize is the canonical font size of the last non-empty span.
	FontSize float64

	// FontName is the font name of the last non-empty span.
	FontName string

	// Bold and Italic report whether any span in the line carried the
	// respective emphasis.
	Bold   bool
	Italic bool
}

// IsEmpty reports whether the line contributed no text. Empty lines are
// skipped entirely by the assembler.
func (c ComposedLine) IsEmpty() bool {
	return c.Text == ""
}

// ComposeLine assembles the spans of a line into a ComposedLine. Spans with
// empty trimmed text are skipped; every other span's text is wrapped in
// emphasis markers according to its bold/italic classification (both set
// wraps in ***, bold alone in **, italic alone in *) and the formatted
// spans are joined with single spaces.
func ComposeLine(line model.Line, tolerance float64) ComposedLine {
	var composed ComposedLine
	var parts []string

	for _, span := range line.Spans {
		text := strings.TrimSpace(span.Text)
		if text == "" {
			continue
		}

		composed.FontSize = font.Normalize(span.Size, tolerance)
		composed.FontName = span.Font

		bold := font.Bold(span.Font, span.Flags)
		italic := font.Italic(span.Font, span.Flags)

		switch {
		case bold && italic:
			text = "***" + text + "***"
		case bold:
			text = "**" + text + "**"
		case italic:
			text = "*" + text + "*"
		}

		if bold {
			composed.Bold = true
		}
		if italic {
			composed.Italic = true
		}

		parts = append(parts, text)
	}

	composed.Text = strings.Join(parts, " ")
	return composed
}
