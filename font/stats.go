package font

import "sort"

// Stats accumulates canonical font-size usage over one document. It records
// how often each canonical size occurs and which canonical bucket each raw
// size collapsed to. A Stats value belongs to a single conversion; separate
// conversions must use separate instances.
type Stats struct {
	tolerance      float64
	counts         map[float64]int
	rawToCanonical map[float64]float64
}

// NewStats creates an empty Stats with the given quantization tolerance.
func NewStats(tolerance float64) *Stats {
	return &Stats{
		tolerance:      tolerance,
		counts:         make(map[float64]int),
		rawToCanonical: make(map[float64]float64),
	}
}

// Observe normalizes a raw size, tallies its canonical bucket, records the
// raw-to-canonical mapping, and returns the canonical size.
func (s *Stats) Observe(raw float64) float64 {
	canonical := Normalize(raw, s.tolerance)
	s.counts[canonical]++
	s.rawToCanonical[raw] = canonical
	return canonical
}

// Count returns how many spans used the given canonical size.
func (s *Stats) Count(canonical float64) int {
	return s.counts[canonical]
}

// Canonical returns the recorded canonical bucket for a raw size observed
// earlier, and whether the raw size was observed at all.
func (s *Stats) Canonical(raw float64) (float64, bool) {
	c, ok := s.rawToCanonical[raw]
	return c, ok
}

// Sizes returns all observed canonical sizes in descending order.
func (s *Stats) Sizes() []float64 {
	sizes := make([]float64, 0, len(s.counts))
	for size := range s.counts {
		sizes = append(sizes, size)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))
	return sizes
}

// Tolerance returns the quantization tolerance this Stats was built with.
func (s *Stats) Tolerance() float64 {
	return s.tolerance
}
