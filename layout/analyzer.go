// Package layout infers document structure from span-level font metrics:
// a document-wide analysis pass ranks canonical font sizes into heading
// levels, and a line composer folds styled spans into inline-formatted
// text fragments.
package layout

import (
	"fmt"

	"github.com/tsawler/pagemd/font"
	"github.com/tsawler/pagemd/source"
)

// Analysis is the read-only result of the document-wide analysis pass. It
// is computed before any structural dispatch and threaded into the
// assembly pass; it is never shared between documents.
type Analysis struct {
	// Stats holds the canonical-size tallies and raw-to-canonical record.
	Stats *font.Stats

	// Headings maps canonical font sizes to heading levels.
	Headings HeadingMap
}

// Analyzer performs the analysis pass over a document.
type Analyzer struct {
	tolerance float64
	config    HeadingConfig
}

// NewAnalyzer creates an analyzer with the given font-size tolerance and
// default heading configuration.
func NewAnalyzer(tolerance float64) *Analyzer {
	return &Analyzer{
		tolerance: tolerance,
		config:    DefaultHeadingConfig(),
	}
}

// NewAnalyzerWithConfig creates an analyzer with a custom heading
// configuration.
func NewAnalyzerWithConfig(tolerance float64, config HeadingConfig) *Analyzer {
	return &Analyzer{
		tolerance: tolerance,
		config:    config,
	}
}

// Analyze scans every span in the document, tallies canonical font sizes,
// and derives the heading map. Heading classification on any page depends
// on these corpus-wide statistics, so Analyze must complete before the
// assembly pass starts.
func (a *Analyzer) Analyze(doc source.Document) (*Analysis, error) {
	stats := font.NewStats(a.tolerance)

	pageCount, err := doc.PageCount()
	if err != nil {
		return nil, fmt.Errorf("failed to count pages: %w", err)
	}

	for i := 0; i < pageCount; i++ {
		page, err := doc.Page(i)
		if err != nil {
			return nil, fmt.Errorf("failed to read page %d: %w", i, err)
		}
		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				for _, span := range line.Spans {
					stats.Observe(span.Size)
				}
			}
		}
	}

	return &Analysis{
		Stats:    stats,
		Headings: buildHeadingMap(stats.Sizes(), stats.Count, a.config),
	}, nil
}
