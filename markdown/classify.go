package markdown

import (
	"regexp"
	"strings"

	"github.com/tsawler/pagemd/font"
	"github.com/tsawler/pagemd/layout"
)

// Kind is the structural classification of one composed line.
type Kind int

const (
	// KindParagraph is the default: plain prose, emitted as-is.
	KindParagraph Kind = iota
	// KindCode marks lines belonging to a fenced code block.
	KindCode
	// KindHeading marks lines whose canonical font size is a heading size.
	KindHeading
	// KindList marks lines starting with a list marker. They are
	// recognized for classification purposes but emitted unchanged.
	KindList
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCode:
		return "code"
	case KindHeading:
		return "heading"
	case KindList:
		return "list"
	default:
		return "paragraph"
	}
}

// listPattern matches leading "-", "•", "*", or "N." list markers.
var listPattern = regexp.MustCompile(`^(\s*)([-•*]|\d+\.)\s+`)

// Classify runs the priority cascade over a composed line: code wins over
// heading, heading over list, and everything else is a paragraph. Code
// detection runs on the formatted text, emphasis markers included.
func Classify(line layout.ComposedLine, headings layout.HeadingMap) Kind {
	if font.CodeLike(line.FontName, line.Text) {
		return KindCode
	}
	if _, ok := headings.Level(line.FontSize); ok {
		return KindHeading
	}
	if listPattern.MatchString(line.Text) {
		return KindList
	}
	return KindParagraph
}

// StripEmphasis removes inline emphasis markers from a composed line, for
// text that re-emphasizes itself structurally (headings) or must stay
// verbatim (code).
func StripEmphasis(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	return strings.ReplaceAll(text, "*", "")
}
