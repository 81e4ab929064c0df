package font

import (
	"regexp"
	"strings"

	"github.com/tsawler/pagemd/model"
)

var boldKeywords = []string{"bold", "heavy", "black", "semibold", "demibold"}

var italicKeywords = []string{"italic", "oblique", "slant"}

var codeFonts = []string{"courier", "mono", "consola", "code"}

// codePatterns are content heuristics for code-like text: a leading
// language keyword, brace/bracket/paren/semicolon characters, a leading
// identifier assignment, or a leading comment marker.
var codePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\s*(def|class|import|from|if|for|while|return)\s+`),
	regexp.MustCompile(`[{}\[\]();]`),
	regexp.MustCompile(`^\s*[a-zA-Z_][a-zA-Z0-9_]*\s*=`),
	regexp.MustCompile(`^\s*//|^\s*#|^\s*/\*`),
}

// Bold reports whether a span with the given font name and style flags was
// rendered bold: the font name carries a bold keyword, or the bold flag bit
// is set.
func Bold(fontName string, flags int) bool {
	return containsAny(fontName, boldKeywords) || flags&model.FlagBold != 0
}

// Italic reports whether a span with the given font name and style flags
// was rendered italic.
func Italic(fontName string, flags int) bool {
	return containsAny(fontName, italicKeywords) || flags&model.FlagItalic != 0
}

// CodeLike reports whether a line is likely source code: the font is a
// known monospace family, or the text matches a code-content pattern. The
// text may still carry inline emphasis markers; the patterns tolerate them.
func CodeLike(fontName, text string) bool {
	if containsAny(fontName, codeFonts) {
		return true
	}
	for _, pattern := range codePatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

func containsAny(fontName string, keywords []string) bool {
	lower := strings.ToLower(fontName)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
