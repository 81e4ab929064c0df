package markdown

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/pagemd/images"
	"github.com/tsawler/pagemd/layout"
	"github.com/tsawler/pagemd/source"
	"github.com/tsawler/pagemd/tables"
)

// Config holds configuration for one assembly pass.
type Config struct {
	// IncludeTOC prepends a table of contents when at least one heading
	// was recorded. Default: true
	IncludeTOC bool

	// DetectTables enables per-page table detection. A page recognized as
	// a table skips line-level processing entirely. Default: true
	DetectTables bool

	// FontTolerance is the font-size quantization tolerance, forwarded to
	// line composition. It must match the tolerance the analysis pass ran
	// with, or heading lookups will miss.
	FontTolerance float64

	// Logger receives per-page debug events. Default: zap.NewNop()
	Logger *zap.Logger
}

// Assembler linearizes a document into markdown. It owns all transient
// conversion state (emitted units, the code-fence accumulator, recorded
// headings), so one Assembler serves exactly one Run; conversions running
// concurrently need separate instances.
type Assembler struct {
	config   Config
	analysis *layout.Analysis
	sink     images.Sink
	detector *tables.Detector
	log      *zap.Logger

	units    []string
	fence    fence
	headings []layout.Heading
}

// NewAssembler creates an assembler for one conversion. The analysis must
// come from a completed analysis pass over the same document.
func NewAssembler(analysis *layout.Analysis, sink images.Sink, config Config) *Assembler {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Assembler{
		config:   config,
		analysis: analysis,
		sink:     sink,
		detector: tables.NewDetector(),
		log:      log,
	}
}

// Headings returns the headings recorded during the last Run, in document
// order.
func (a *Assembler) Headings() []layout.Heading {
	return a.headings
}

// Run walks the document page by page and produces the final markdown.
// Collaborator failures (unreadable page, corrupt image) abort the whole
// conversion; there is no partial-document recovery.
func (a *Assembler) Run(doc source.Document) (string, error) {
	a.units = a.units[:0]
	a.headings = nil
	a.fence = fence{}

	pageCount, err := doc.PageCount()
	if err != nil {
		return "", fmt.Errorf("failed to count pages: %w", err)
	}

	for i := 0; i < pageCount; i++ {
		page, err := doc.Page(i)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i, err)
		}

		refs, err := a.collectImages(doc, i)
		if err != nil {
			return "", err
		}

		if a.config.DetectTables {
			if table := a.detector.Detect(page); table != nil {
				a.emit("\n" + table.ToMarkdown() + "\n")
				a.emitImages(refs)
				a.log.Debug("table detected",
					zap.Int("page", i),
					zap.Int("rows", table.RowCount()),
					zap.Int("cols", table.ColCount()))
				continue
			}
		}

		for _, block := range page.Blocks {
			for _, line := range block.Lines {
				a.processLine(layout.ComposeLine(line, a.config.FontTolerance))
			}
		}

		a.emitImages(refs)
	}

	// A code run still open at document end is flushed so the fence count
	// stays balanced.
	a.fence.flush(a.emit)

	out := strings.Join(a.units, "\n\n")
	if a.config.IncludeTOC && len(a.headings) > 0 {
		out = TOC(a.headings) + out
	}
	return out, nil
}

// processLine dispatches one composed line. A non-code line closes any
// open code run first, then is handled normally.
func (a *Assembler) processLine(line layout.ComposedLine) {
	if line.IsEmpty() {
		return
	}

	kind := Classify(line, a.analysis.Headings)

	if kind == KindCode {
		if !a.fence.inCode() {
			a.fence.open(a.emit)
		}
		a.fence.buffer(StripEmphasis(line.Text))
		return
	}

	a.fence.flush(a.emit)

	switch kind {
	case KindHeading:
		level, _ := a.analysis.Headings.Level(line.FontSize)
		text := StripEmphasis(line.Text)
		a.headings = append(a.headings, layout.Heading{Level: level, Text: text})
		a.emit(strings.Repeat("#", level) + " " + text)
	default:
		// Lists pass through unchanged; so does plain prose.
		a.emit(line.Text)
	}
}

// collectImages pulls a page's embedded images through the sink and
// returns their reference paths in extraction order.
func (a *Assembler) collectImages(doc source.Document, pageIndex int) ([]string, error) {
	imgs, err := doc.Images(pageIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to extract images from page %d: %w", pageIndex, err)
	}

	refs := make([]string, 0, len(imgs))
	for j, img := range imgs {
		ref, err := a.sink.Add(pageIndex, j, img)
		if err != nil {
			return nil, fmt.Errorf("failed to materialize image %d on page %d: %w", j, pageIndex, err)
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

// emitImages appends one image-embed unit per reference.
func (a *Assembler) emitImages(refs []string) {
	for _, ref := range refs {
		a.emit("\n![Image](" + ref + ")\n")
	}
}

// emit appends one output unit. Units are joined with blank lines.
func (a *Assembler) emit(unit string) {
	a.units = append(a.units, unit)
}
