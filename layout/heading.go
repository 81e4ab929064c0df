package layout

// HeadingConfig holds configuration for heading-level resolution.
type HeadingConfig struct {
	// MaxLevels is the maximum number of heading levels to assign.
	// Default: 6
	MaxLevels int

	// MinOccurrences is the tally a canonical size must exceed to qualify
	// as a heading size. Default: 2 (a size must appear at least 3 times)
	MinOccurrences int
}

// DefaultHeadingConfig returns the default resolver configuration.
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		MaxLevels:      6,
		MinOccurrences: 2,
	}
}

// HeadingMap maps canonical font sizes to heading depths in [1, MaxLevels].
// It is built once per document from corpus-wide frequency statistics and
// queried by exact canonical size during assembly; a size not present is
// not a heading.
type HeadingMap map[float64]int

// Level returns the heading level for a canonical size, and whether the
// size is a heading size at all.
func (m HeadingMap) Level(size float64) (int, bool) {
	level, ok := m[size]
	return level, ok
}

// Heading is a recorded heading occurrence: its resolved level and its
// emphasis-stripped text, in document order.
type Heading struct {
	Level int
	Text  string
}

// buildHeadingMap assigns heading levels to canonical sizes. Sizes are
// ranked descending; only the largest MaxLevels sizes are considered, and
// of those, only sizes whose tally exceeds MinOccurrences are accepted.
// Levels increment on acceptance only, so the assigned levels always form
// a contiguous 1..k run. A rare outlier size still occupies one of the
// considered slots without consuming a level.
func buildHeadingMap(sizes []float64, count func(float64) int, config HeadingConfig) HeadingMap {
	m := make(HeadingMap)
	level := 1

	considered := sizes
	if len(considered) > config.MaxLevels {
		considered = considered[:config.MaxLevels]
	}

	for _, size := range considered {
		if count(size) <= config.MinOccurrences {
			continue
		}
		m[size] = level
		level++
	}

	return m
}
