// Package source defines the contracts the host environment must satisfy to
// feed documents into the converter, along with two ready-made
// implementations: an in-memory document and a document backed by a
// serialized extraction dump.
//
// The converter never parses page-description formats itself. It consumes
// pages of positioned text spans and embedded image payloads through the
// Document interface, so any extraction engine can be adapted.
package source

import (
	"fmt"

	"github.com/tsawler/pagemd/model"
)

// Image is an embedded image payload extracted from a page.
type Image struct {
	// Data is the raw image payload.
	Data []byte

	// Ext is the format extension reported by the extractor (e.g. "png",
	// "jpeg"). It may be empty or unknown; consumers are expected to sniff
	// the payload in that case.
	Ext string
}

// Document yields pages of positioned text spans and the images embedded in
// them. Implementations must return pages in order and keep page content
// stable for the lifetime of a conversion: the converter reads every page
// twice (an analysis pass, then an assembly pass).
type Document interface {
	// Path returns the path of the underlying input file, or "" when the
	// document has no filesystem identity.
	Path() string

	// PageCount returns the number of pages.
	PageCount() (int, error)

	// Page returns the page at the given 0-based index.
	Page(index int) (*model.Page, error)

	// Images returns the images embedded in the given page, in extraction
	// order.
	Images(pageIndex int) ([]Image, error)
}

// StaticDocument is an in-memory Document. It is the adaptation target for
// host extraction engines and the fixture type used throughout the tests.
type StaticDocument struct {
	// DocPath is reported by Path. May be empty.
	DocPath string

	// DocPages are the document's pages in order.
	DocPages []*model.Page

	// PageImages holds the embedded images per page index. Pages without
	// images may be omitted.
	PageImages map[int][]Image
}

// Path returns the document's input path.
func (d *StaticDocument) Path() string {
	return d.DocPath
}

// PageCount returns the number of pages.
func (d *StaticDocument) PageCount() (int, error) {
	return len(d.DocPages), nil
}

// Page returns the page at the given index.
func (d *StaticDocument) Page(index int) (*model.Page, error) {
	if index < 0 || index >= len(d.DocPages) {
		return nil, fmt.Errorf("page index %d out of range (0-%d)", index, len(d.DocPages)-1)
	}
	return d.DocPages[index], nil
}

// Images returns the embedded images for the given page.
func (d *StaticDocument) Images(pageIndex int) ([]Image, error) {
	if pageIndex < 0 || pageIndex >= len(d.DocPages) {
		return nil, fmt.Errorf("page index %d out of range (0-%d)", pageIndex, len(d.DocPages)-1)
	}
	return d.PageImages[pageIndex], nil
}
