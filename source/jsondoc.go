package source

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/tsawler/pagemd/model"
)

// JSONDocument is a Document backed by a serialized extraction dump: the
// page/block/line/span geometry an extraction engine produced, written out
// as JSON. It lets the converter run in processes that do not link an
// extraction engine at all.
//
// Dump schema:
//
//	{
//	  "path": "report.pdf",
//	  "pages": [
//	    {
//	      "width": 612, "height": 792,
//	      "blocks": [
//	        {
//	          "bbox": [x0, y0, x1, y1],
//	          "lines": [
//	            {
//	              "bbox": [x0, y0, x1, y1],
//	              "spans": [
//	                {"text": "...", "font": "...", "size": 12.0,
//	                 "flags": 0, "bbox": [x0, y0, x1, y1]}
//	              ]
//	            }
//	          ]
//	        }
//	      ],
//	      "images": [{"ext": "png", "data": "<base64>"}]
//	    }
//	  ]
//	}
//
// Blocks without a "lines" key are image-bearing regions.
type JSONDocument struct {
	doc *StaticDocument
}

type dumpFile struct {
	Path  string     `json:"path"`
	Pages []dumpPage `json:"pages"`
}

type dumpPage struct {
	Width  float64     `json:"width"`
	Height float64     `json:"height"`
	Blocks []dumpBlock `json:"blocks"`
	Images []dumpImage `json:"images"`
}

type dumpBlock struct {
	BBox  dumpBBox   `json:"bbox"`
	Lines []dumpLine `json:"lines"`
}

type dumpLine struct {
	BBox  dumpBBox   `json:"bbox"`
	Spans []dumpSpan `json:"spans"`
}

type dumpSpan struct {
	Text  string   `json:"text"`
	Font  string   `json:"font"`
	Size  float64  `json:"size"`
	Flags int      `json:"flags"`
	BBox  dumpBBox `json:"bbox"`
}

type dumpImage struct {
	Ext  string `json:"ext"`
	Data string `json:"data"`
}

type dumpBBox [4]float64

func (b dumpBBox) toModel() model.BBox {
	return model.NewBBox(b[0], b[1], b[2], b[3])
}

// OpenJSON reads an extraction dump from a file.
func OpenJSON(path string) (*JSONDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read extraction dump: %w", err)
	}
	return FromJSON(data)
}

// FromJSON parses an extraction dump from raw JSON bytes.
func FromJSON(data []byte) (*JSONDocument, error) {
	var dump dumpFile
	if err := sonic.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("failed to parse extraction dump: %w", err)
	}

	doc := &StaticDocument{
		DocPath:    dump.Path,
		PageImages: make(map[int][]Image),
	}

	for i, dp := range dump.Pages {
		page := model.NewPage(i, dp.Width, dp.Height)
		for _, db := range dp.Blocks {
			block := model.Block{BBox: db.BBox.toModel()}
			for _, dl := range db.Lines {
				line := model.Line{BBox: dl.BBox.toModel()}
				for _, ds := range dl.Spans {
					line.Spans = append(line.Spans, model.Span{
						Text:  ds.Text,
						Font:  ds.Font,
						Size:  ds.Size,
						Flags: ds.Flags,
						BBox:  ds.BBox.toModel(),
					})
				}
				block.Lines = append(block.Lines, line)
			}
			page.AddBlock(block)
		}
		doc.DocPages = append(doc.DocPages, page)

		for j, di := range dp.Images {
			payload, err := base64.StdEncoding.DecodeString(di.Data)
			if err != nil {
				return nil, fmt.Errorf("invalid image payload on page %d, image %d: %w", i, j, err)
			}
			doc.PageImages[i] = append(doc.PageImages[i], Image{
				Data: payload,
				Ext:  di.Ext,
			})
		}
	}

	return &JSONDocument{doc: doc}, nil
}

// Path returns the original input path recorded in the dump.
func (d *JSONDocument) Path() string {
	return d.doc.Path()
}

// PageCount returns the number of pages.
func (d *JSONDocument) PageCount() (int, error) {
	return d.doc.PageCount()
}

// Page returns the page at the given index.
func (d *JSONDocument) Page(index int) (*model.Page, error) {
	return d.doc.Page(index)
}

// Images returns the embedded images for the given page.
func (d *JSONDocument) Images(pageIndex int) ([]Image, error) {
	return d.doc.Images(pageIndex)
}
