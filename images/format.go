package images

import (
	"bytes"
	"image"
	"strings"

	// Register decoders so payload sniffing recognizes the formats
	// extraction engines commonly hand over without an extension.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// NormalizeExt returns the extension to store an image payload under. The
// extractor's extension wins when present; otherwise the payload is
// sniffed against the registered decoders. Payloads that cannot be
// identified fall back to "bin" rather than failing: an unknown format is
// still written byte-for-byte.
func NormalizeExt(data []byte, ext string) string {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext != "" {
		return ext
	}

	if _, format, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		return format
	}

	return "bin"
}
