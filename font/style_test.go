package font

import (
	"testing"

	"github.com/tsawler/pagemd/model"
)

func TestBold(t *testing.T) {
	tests := []struct {
		name     string
		fontName string
		flags    int
		want     bool
	}{
		{"bold in name", "Helvetica-Bold", 0, true},
		{"case insensitive", "ARIAL-BLACK", 0, true},
		{"semibold in name", "SourceSans-SemiBold", 0, true},
		{"demibold in name", "Futura-DemiBold", 0, true},
		{"heavy in name", "Helvetica-Heavy", 0, true},
		{"bold flag only", "Helvetica", model.FlagBold, true},
		{"plain font", "Helvetica", 0, false},
		{"italic flag is not bold", "Helvetica", model.FlagItalic, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bold(tt.fontName, tt.flags); got != tt.want {
				t.Errorf("Bold(%q, %#x) = %v, want %v", tt.fontName, tt.flags, got, tt.want)
			}
		})
	}
}

func TestItalic(t *testing.T) {
	tests := []struct {
		name     string
		fontName string
		flags    int
		want     bool
	}{
		{"italic in name", "Times-Italic", 0, true},
		{"oblique in name", "Helvetica-Oblique", 0, true},
		{"slant in name", "Roboto-Slanted", 0, true},
		{"italic flag only", "Times", model.FlagItalic, true},
		{"plain font", "Times", 0, false},
		{"bold flag is not italic", "Times", model.FlagBold, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Italic(tt.fontName, tt.flags); got != tt.want {
				t.Errorf("Italic(%q, %#x) = %v, want %v", tt.fontName, tt.flags, got, tt.want)
			}
		})
	}
}

func TestCodeLike(t *testing.T) {
	tests := []struct {
		name     string
		fontName string
		text     string
		want     bool
	}{
		{"courier font", "Courier New", "hello world", true},
		{"mono font", "DejaVu Sans Mono", "hello world", true},
		{"consolas font", "Consolas", "plain text", true},
		{"code font", "Fira Code", "plain text", true},
		{"def keyword", "Helvetica", "def compute(x):", true},
		{"import keyword", "Helvetica", "import os", true},
		{"return keyword", "Helvetica", "return value", true},
		{"braces", "Helvetica", "func main() {", true},
		{"semicolon", "Helvetica", "count++;", true},
		{"assignment", "Helvetica", "total = 0", true},
		{"line comment", "Helvetica", "// initialize the cache", true},
		{"hash comment", "Helvetica", "# configuration", true},
		{"block comment", "Helvetica", "/* begin */", true},
		{"plain prose", "Helvetica", "The quick brown fox", false},
		{"keyword mid-sentence", "Helvetica", "we return to this later", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeLike(tt.fontName, tt.text); got != tt.want {
				t.Errorf("CodeLike(%q, %q) = %v, want %v", tt.fontName, tt.text, got, tt.want)
			}
		})
	}
}
