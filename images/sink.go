// Package images materializes embedded image payloads for markdown output.
// A Sink turns (page, index, payload) into the relative path the markdown
// embeds; the naming-only RefSink keeps pure conversion deterministic,
// while DirSink additionally writes the payloads under a sibling
// "<stem>_images" directory.
package images

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsawler/pagemd/source"
)

// Sink consumes one embedded image and returns the relative path used to
// reference it from the markdown output.
type Sink interface {
	Add(pageIndex, imageIndex int, img source.Image) (string, error)
}

// RefSink names image references without touching the filesystem. Both
// sinks produce identical paths for the same document, so output rendered
// against a RefSink matches output rendered while saving.
type RefSink struct {
	dirName string
}

// NewRefSink creates a naming-only sink for a document with the given stem.
func NewRefSink(stem string) *RefSink {
	return &RefSink{dirName: stem + "_images"}
}

// Add returns the relative reference path for the image.
func (s *RefSink) Add(pageIndex, imageIndex int, img source.Image) (string, error) {
	return s.dirName + "/" + FileName(pageIndex, imageIndex, NormalizeExt(img.Data, img.Ext)), nil
}

// DirSink writes image payloads to a "<stem>_images" directory under its
// parent directory. The directory is created lazily, on the first image.
// Concurrent conversions sharing one output directory are not safe; give
// each conversion its own sink.
type DirSink struct {
	dir     string
	dirName string
	created bool
}

// NewDirSink creates a writing sink rooted at parent/<stem>_images.
func NewDirSink(parent, stem string) *DirSink {
	dirName := stem + "_images"
	return &DirSink{
		dir:     filepath.Join(parent, dirName),
		dirName: dirName,
	}
}

// Dir returns the directory images are written to.
func (s *DirSink) Dir() string {
	return s.dir
}

// Created reports whether the images directory was actually created, which
// happens only when at least one image was added.
func (s *DirSink) Created() bool {
	return s.created
}

// Add writes the image payload and returns its relative reference path.
func (s *DirSink) Add(pageIndex, imageIndex int, img source.Image) (string, error) {
	if !s.created {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create image directory %s: %w", s.dir, err)
		}
		s.created = true
	}

	name := FileName(pageIndex, imageIndex, NormalizeExt(img.Data, img.Ext))
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, img.Data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image %s: %w", path, err)
	}

	return s.dirName + "/" + name, nil
}

// FileName builds the canonical image filename for a page/index pair.
// Page and image numbers are 1-based in filenames.
func FileName(pageIndex, imageIndex int, ext string) string {
	return fmt.Sprintf("page_%d_img_%d.%s", pageIndex+1, imageIndex+1, ext)
}
