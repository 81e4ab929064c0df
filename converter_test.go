package pagemd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/pagemd/model"
	"github.com/tsawler/pagemd/source"
)

func spanLine(fontName string, size float64, text string) model.Line {
	return model.Line{Spans: []model.Span{{Text: text, Font: fontName, Size: size}}}
}

// titleDoc is a single page with a "Title" heading at canonical size 24
// (tally 3) followed by body text.
func titleDoc(path string) *source.StaticDocument {
	page := model.NewPage(0, 612, 792)
	page.AddBlock(model.Block{Lines: []model.Line{
		spanLine("Helvetica", 24.0, "Title"),
		{Spans: []model.Span{
			{Text: " ", Font: "Helvetica", Size: 24.1},
			{Text: "  ", Font: "Helvetica", Size: 24.2},
		}},
		spanLine("Helvetica", 12.0, "Some body text."),
	}})
	return &source.StaticDocument{DocPath: path, DocPages: []*model.Page{page}}
}

func TestMarkdown(t *testing.T) {
	out, err := From(titleDoc("")).Markdown()
	if err != nil {
		t.Fatalf("Markdown returned error: %v", err)
	}

	want := "## Table of Contents\n\n- [Title](#title)\n\n# Title\n\nSome body text."
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestMarkdown_TOCDisabled(t *testing.T) {
	out, err := From(titleDoc("")).IncludeTOC(false).Markdown()
	if err != nil {
		t.Fatalf("Markdown returned error: %v", err)
	}

	want := "# Title\n\nSome body text."
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestMarkdown_Deterministic(t *testing.T) {
	conv := From(titleDoc(""))

	first, err := conv.Markdown()
	if err != nil {
		t.Fatalf("first conversion failed: %v", err)
	}
	second, err := conv.Markdown()
	if err != nil {
		t.Fatalf("second conversion failed: %v", err)
	}
	if first != second {
		t.Errorf("repeated conversions differ:\n%q\n%q", first, second)
	}
}

func TestMarkdown_CodeFences(t *testing.T) {
	page := model.NewPage(0, 612, 792)
	page.AddBlock(model.Block{Lines: []model.Line{
		spanLine("Courier", 10.0, "x := 1"),
		spanLine("Courier", 10.0, "y := 2"),
		spanLine("Helvetica", 12.0, "Back to prose."),
	}})
	doc := &source.StaticDocument{DocPages: []*model.Page{page}}

	out, err := From(doc).Markdown()
	if err != nil {
		t.Fatalf("Markdown returned error: %v", err)
	}

	if got := strings.Count(out, "```"); got != 2 {
		t.Errorf("fence markers = %d, want 2:\n%q", got, out)
	}
	if !strings.Contains(out, "x := 1") || !strings.Contains(out, "y := 2") {
		t.Errorf("code lines missing from %q", out)
	}
}

func TestConfigurationChaining(t *testing.T) {
	base := From(titleDoc(""))
	noTOC := base.IncludeTOC(false)

	out, err := base.Markdown()
	if err != nil {
		t.Fatalf("base conversion failed: %v", err)
	}
	if !strings.Contains(out, "Table of Contents") {
		t.Error("chaining mutated the base converter: TOC missing")
	}

	out, err = noTOC.Markdown()
	if err != nil {
		t.Fatalf("chained conversion failed: %v", err)
	}
	if strings.Contains(out, "Table of Contents") {
		t.Error("chained converter still emits the TOC")
	}
}

func TestSaveAs(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "report.pdf")

	doc := titleDoc(inputPath)
	doc.PageImages = map[int][]source.Image{
		0: {{Data: []byte{1, 2, 3}, Ext: "png"}},
	}

	outPath := filepath.Join(dir, "out.md")
	written, err := From(doc).SaveAs(outPath)
	if err != nil {
		t.Fatalf("SaveAs returned error: %v", err)
	}
	if written != outPath {
		t.Errorf("SaveAs returned %q, want %q", written, outPath)
	}

	md, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.Contains(string(md), "![Image](report_images/page_1_img_1.png)") {
		t.Errorf("markdown missing image reference:\n%s", md)
	}

	img, err := os.ReadFile(filepath.Join(dir, "report_images", "page_1_img_1.png"))
	if err != nil {
		t.Fatalf("failed to read materialized image: %v", err)
	}
	if len(img) != 3 {
		t.Errorf("image payload length = %d, want 3", len(img))
	}
}

func TestSaveAs_DefaultOutputPath(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "report.pdf")

	written, err := From(titleDoc(inputPath)).SaveAs("")
	if err != nil {
		t.Fatalf("SaveAs returned error: %v", err)
	}

	want := filepath.Join(dir, "report.md")
	if written != want {
		t.Errorf("SaveAs wrote to %q, want %q", written, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("default output file missing: %v", err)
	}
}

func TestSaveAs_NoPathsAtAll(t *testing.T) {
	if _, err := From(titleDoc("")).SaveAs(""); err == nil {
		t.Error("expected error when both input and output paths are empty")
	}
}

func TestSaveAs_NoImagesNoDirectory(t *testing.T) {
	dir := t.TempDir()
	inputPath := filepath.Join(dir, "report.pdf")

	if _, err := From(titleDoc(inputPath)).SaveAs(""); err != nil {
		t.Fatalf("SaveAs returned error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "report_images")); !os.IsNotExist(err) {
		t.Error("images directory created for an imageless document")
	}
}

// failingDocument errors on every page read.
type failingDocument struct{}

func (failingDocument) Path() string                  { return "broken.pdf" }
func (failingDocument) PageCount() (int, error)       { return 1, nil }
func (failingDocument) Page(int) (*model.Page, error) { return nil, errors.New("page unreadable") }

func (failingDocument) Images(int) ([]source.Image, error) { return nil, nil }

func TestSaveAs_FailedConversionWritesNothing(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.md")

	if _, err := From(failingDocument{}).SaveAs(outPath); err == nil {
		t.Fatal("expected conversion error")
	}
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Error("output file written despite failed conversion")
	}
}

func TestMarkdown_CollaboratorErrorPropagates(t *testing.T) {
	_, err := From(failingDocument{}).Markdown()
	if err == nil {
		t.Fatal("expected error from failing document")
	}
	if !strings.Contains(err.Error(), "page unreadable") {
		t.Errorf("error = %q, want it to wrap the collaborator error", err)
	}
}

func TestOutline(t *testing.T) {
	entries, err := From(titleDoc("")).Outline()
	if err != nil {
		t.Fatalf("Outline returned error: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("Outline returned %d entries, want 1", len(entries))
	}
	got := entries[0]
	if got.Level != 1 || got.Text != "Title" || got.Anchor != "title" {
		t.Errorf("entry = %+v, want level 1, Title, title", got)
	}
}

func TestOutlineJSON(t *testing.T) {
	data, err := From(titleDoc("")).OutlineJSON()
	if err != nil {
		t.Fatalf("OutlineJSON returned error: %v", err)
	}

	want := `[{"level":1,"text":"Title","anchor":"title"}]`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must(42, nil) = %d, want 42", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must should panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}
