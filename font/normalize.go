// Package font classifies span-level font metadata: it quantizes raw font
// sizes into canonical buckets, tallies canonical-size usage across a
// document, and derives bold/italic/code signals from font names and style
// flags.
package font

import "math"

// DefaultTolerance is the default quantization tolerance in points.
const DefaultTolerance = 0.5

// Normalize quantizes a raw font size into a canonical bucket so that
// rendering noise (24.0 vs 24.2 vs 24.4) collapses to one value. With a
// tolerance of 1.0 or more it rounds to the nearest integer; otherwise it
// rounds to the nearest multiple of the tolerance, then to one decimal
// place to avoid floating-point drift.
//
// Normalize is a pure function of its arguments. Tolerances outside (0, 2]
// are accepted and simply produce looser or tighter grouping.
func Normalize(size, tolerance float64) float64 {
	if tolerance >= 1.0 {
		return math.Round(size)
	}
	normalized := math.Round(size/tolerance) * tolerance
	return math.Round(normalized*10) / 10
}
