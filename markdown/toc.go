package markdown

import (
	"regexp"
	"strings"

	"github.com/tsawler/pagemd/layout"
)

var (
	anchorStrip    = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	anchorCollapse = regexp.MustCompile(`[-\s]+`)
)

// Anchor derives a link anchor from heading text: lowercase, every
// character that is not a word character, whitespace, or hyphen removed,
// runs of hyphens and whitespace collapsed to a single hyphen. Anchors are
// not de-duplicated; two headings may collapse to the same anchor.
func Anchor(text string) string {
	anchor := strings.ToLower(text)
	anchor = anchorStrip.ReplaceAllString(anchor, "")
	return anchorCollapse.ReplaceAllString(anchor, "-")
}

// TOC renders the table of contents for the recorded headings: one
// anchor-linked list item per heading, indented two spaces per level below
// the first. Returns "" when there are no headings.
func TOC(headings []layout.Heading) string {
	if len(headings) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("## Table of Contents\n\n")
	for _, h := range headings {
		sb.WriteString(strings.Repeat("  ", h.Level-1))
		sb.WriteString("- [")
		sb.WriteString(h.Text)
		sb.WriteString("](#")
		sb.WriteString(Anchor(h.Text))
		sb.WriteString(")\n")
	}
	sb.WriteString("\n")
	return sb.String()
}
