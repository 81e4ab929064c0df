// Package pagemd reconstructs document structure from positioned text
// spans and re-emits it as markdown. Given per-span font metrics,
// coordinates, and style flags — with no semantic tags — it recovers a
// heading hierarchy from corpus-wide font statistics, detects tabular
// layouts from coordinate alignment, distinguishes code from prose, and
// linearizes everything into a navigable document with inline emphasis
// preserved.
//
// Page-content and image extraction are external collaborators reached
// through the source.Document interface; pagemd never parses
// page-description formats itself.
//
// Basic usage:
//
//	md, err := pagemd.From(doc).Markdown()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	path, err := pagemd.From(doc).
//	    IncludeTOC(true).
//	    DetectTables(true).
//	    FontTolerance(0.5).
//	    SaveAs("report.md")
package pagemd

import "github.com/tsawler/pagemd/source"

// From creates a Converter for the given document with default options.
// Configuration methods return new Converter instances, so a configured
// chain can be stored and reused safely.
//
// Example:
//
//	md, err := pagemd.From(doc).IncludeTOC(false).Markdown()
func From(doc source.Document) *Converter {
	return &Converter{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	md := pagemd.Must(pagemd.From(doc).Markdown())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
