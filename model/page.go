package model

// Span flag bits set by the extraction collaborator.
const (
	// FlagItalic is set when the glyph run was rendered italic (bit 6).
	FlagItalic = 1 << 6
	// FlagBold is set when the glyph run was rendered bold (bit 16).
	FlagBold = 1 << 16
)

// Span is the smallest styled text unit: a glyph run with its own font,
// size, style flags, and position. Spans are produced by the extraction
// collaborator and are read-only.
type Span struct {
	Text  string
	Font  string
	Size  float64
	Flags int
	BBox  BBox
}

// Line is an ordered sequence of spans sharing a visual row within a block.
type Line struct {
	Spans []Span
	BBox  BBox
}

// Block is an ordered sequence of lines sharing a visual region. A block
// with no lines represents a non-text region (typically an image).
type Block struct {
	Lines []Line
	BBox  BBox
}

// HasText reports whether the block contains any text lines.
func (b Block) HasText() bool {
	return len(b.Lines) > 0
}

// Page is an ordered sequence of blocks, identified by a 0-based index.
type Page struct {
	Index  int
	Width  float64
	Height float64
	Blocks []Block
}

// NewPage creates an empty page with the given index and dimensions.
func NewPage(index int, width, height float64) *Page {
	return &Page{
		Index:  index,
		Width:  width,
		Height: height,
		Blocks: make([]Block, 0),
	}
}

// AddBlock appends a block to the page.
func (p *Page) AddBlock(block Block) {
	p.Blocks = append(p.Blocks, block)
}

// TextBlocks returns the blocks that contain text lines.
func (p *Page) TextBlocks() []Block {
	var blocks []Block
	for _, b := range p.Blocks {
		if b.HasText() {
			blocks = append(blocks, b)
		}
	}
	return blocks
}
