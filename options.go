package pagemd

import (
	"go.uber.org/zap"

	"github.com/tsawler/pagemd/font"
)

// ConvertOptions holds configuration for one conversion.
type ConvertOptions struct {
	includeTOC    bool
	detectTables  bool
	fontTolerance float64
	logger        *zap.Logger
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		includeTOC:    true,
		detectTables:  true,
		fontTolerance: font.DefaultTolerance,
		logger:        zap.NewNop(),
	}
}

// clone creates a copy of ConvertOptions. The logger is shared; everything
// else is a value.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		includeTOC:    o.includeTOC,
		detectTables:  o.detectTables,
		fontTolerance: o.fontTolerance,
		logger:        o.logger,
	}
}
