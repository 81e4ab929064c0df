package pagemd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/pagemd/images"
	"github.com/tsawler/pagemd/layout"
	"github.com/tsawler/pagemd/markdown"
	"github.com/tsawler/pagemd/source"
)

// Converter converts one document to markdown. Each configuration method
// returns a new Converter instance, making configured chains safe to store
// and reuse; separate conversions share no mutable state, so independent
// Converters may run concurrently.
type Converter struct {
	doc     source.Document
	options ConvertOptions
}

// clone creates a copy of the Converter with copied options. This ensures
// immutability: each chain method returns a new instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		doc:     c.doc,
		options: c.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// IncludeTOC controls whether a table of contents is prepended to the
// output when at least one heading was recorded. Default: true.
func (c *Converter) IncludeTOC(include bool) *Converter {
	newConv := c.clone()
	newConv.options.includeTOC = include
	return newConv
}

// DetectTables controls per-page table detection. Default: true.
func (c *Converter) DetectTables(detect bool) *Converter {
	newConv := c.clone()
	newConv.options.detectTables = detect
	return newConv
}

// FontTolerance sets the font-size quantization tolerance in points.
// Values of 1.0 or more round sizes to whole points. Out-of-range values
// are accepted and simply produce looser or tighter grouping. Default: 0.5.
func (c *Converter) FontTolerance(tolerance float64) *Converter {
	newConv := c.clone()
	newConv.options.fontTolerance = tolerance
	return newConv
}

// WithLogger attaches a logger for per-page debug events. Default: a nop
// logger.
func (c *Converter) WithLogger(logger *zap.Logger) *Converter {
	newConv := c.clone()
	if logger == nil {
		logger = zap.NewNop()
	}
	newConv.options.logger = logger
	return newConv
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Markdown converts the document and returns the markdown text. It is a
// pure function of the document content and the configured options: no
// files are written, and repeated calls produce identical output.
func (c *Converter) Markdown() (string, error) {
	out, _, err := c.convert(images.NewRefSink(c.stem()))
	return out, err
}

// SaveAs converts the document and writes the markdown to outputPath,
// materializing embedded images into a "<stem>_images" directory sibling
// to the input as a side effect. With an empty outputPath the markdown is
// written next to the input as "<stem>.md". The write is all-or-nothing:
// no output file is produced when conversion fails. Returns the path
// written.
func (c *Converter) SaveAs(outputPath string) (string, error) {
	stem := c.stem()

	if outputPath == "" {
		if c.doc.Path() == "" {
			return "", fmt.Errorf("document has no input path; an output path is required")
		}
		outputPath = filepath.Join(filepath.Dir(c.doc.Path()), stem+".md")
	}

	// Images land next to the input when its location is known, otherwise
	// next to the output file.
	imagesParent := filepath.Dir(outputPath)
	if c.doc.Path() != "" {
		imagesParent = filepath.Dir(c.doc.Path())
	}

	sink := images.NewDirSink(imagesParent, stem)
	out, _, err := c.convert(sink)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
		return "", fmt.Errorf("failed to write markdown output: %w", err)
	}

	if sink.Created() {
		c.options.logger.Info("images saved", zap.String("dir", sink.Dir()))
	}

	return outputPath, nil
}

// convert runs the two conversion phases: the document-wide analysis pass,
// then the assembly pass. The phases are strictly sequential; heading
// classification is undefined until analysis completes.
func (c *Converter) convert(sink images.Sink) (string, []layout.Heading, error) {
	analyzer := layout.NewAnalyzer(c.options.fontTolerance)
	analysis, err := analyzer.Analyze(c.doc)
	if err != nil {
		return "", nil, err
	}

	c.options.logger.Debug("analysis pass complete",
		zap.Int("canonical_sizes", len(analysis.Stats.Sizes())),
		zap.Int("heading_sizes", len(analysis.Headings)))

	assembler := markdown.NewAssembler(analysis, sink, markdown.Config{
		IncludeTOC:    c.options.includeTOC,
		DetectTables:  c.options.detectTables,
		FontTolerance: c.options.fontTolerance,
		Logger:        c.options.logger,
	})

	out, err := assembler.Run(c.doc)
	if err != nil {
		return "", nil, err
	}
	return out, assembler.Headings(), nil
}

// stem returns the document's filename without its extension, used for the
// default output name and the images directory. Documents without a path
// fall back to "document".
func (c *Converter) stem() string {
	path := c.doc.Path()
	if path == "" {
		return "document"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
