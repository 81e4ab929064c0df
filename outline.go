package pagemd

import (
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/tsawler/pagemd/images"
	"github.com/tsawler/pagemd/markdown"
)

// OutlineEntry is one recorded heading with its resolved level and the
// anchor its TOC link points at.
type OutlineEntry struct {
	Level  int    `json:"level"`
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
}

// Outline converts the document and returns its heading outline in
// document order. Like Markdown, it writes nothing.
func (c *Converter) Outline() ([]OutlineEntry, error) {
	_, headings, err := c.convert(images.NewRefSink(c.stem()))
	if err != nil {
		return nil, err
	}

	entries := make([]OutlineEntry, 0, len(headings))
	for _, h := range headings {
		entries = append(entries, OutlineEntry{
			Level:  h.Level,
			Text:   h.Text,
			Anchor: markdown.Anchor(h.Text),
		})
	}
	return entries, nil
}

// OutlineJSON returns the heading outline serialized as a JSON array.
func (c *Converter) OutlineJSON() ([]byte, error) {
	entries, err := c.Outline()
	if err != nil {
		return nil, err
	}

	data, err := sonic.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize outline: %w", err)
	}
	return data, nil
}
