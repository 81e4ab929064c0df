package tables

import (
	"math"
	"sort"
	"strings"

	"github.com/tsawler/pagemd/model"
)

// columnSupport is how many times a column key must recur across a page's
// rows before it counts as table-structure evidence.
const columnSupport = 2

// Config holds configuration for table detection.
type Config struct {
	// MinRows is the minimum number of distinct row positions required to
	// declare a table. Default: 2
	MinRows int

	// MinCommonColumns is the minimum number of recurring column positions
	// required to declare a table. Default: 2
	MinCommonColumns int
}

// DefaultConfig returns the default detection configuration.
func DefaultConfig() Config {
	return Config{
		MinRows:          2,
		MinCommonColumns: 2,
	}
}

// Detector recognizes grid structure on a page from row and column
// coordinate alignment alone; it needs no visible rulings.
type Detector struct {
	config Config
}

// NewDetector creates a detector with default configuration.
func NewDetector() *Detector {
	return &Detector{config: DefaultConfig()}
}

// NewDetectorWithConfig creates a detector with custom configuration.
func NewDetectorWithConfig(config Config) *Detector {
	return &Detector{config: config}
}

// cellCandidate is one line's text anchored at its rounded left X.
type cellCandidate struct {
	x    float64
	text string
}

// Detect looks for a table covering the page's text blocks. It returns the
// detected table, or nil when the page does not form a grid: fewer than
// MinRows distinct row positions, or fewer than MinCommonColumns column
// positions recurring across rows.
func (d *Detector) Detect(page *model.Page) *Table {
	if page == nil {
		return nil
	}

	// Group lines into rows keyed by their block's top Y.
	rows := make(map[float64][]cellCandidate)
	for _, block := range page.Blocks {
		if !block.HasText() {
			continue
		}
		rowKey := roundTenth(block.BBox.Top())
		for _, line := range block.Lines {
			text := lineText(line)
			if text == "" {
				continue
			}
			colKey := roundTenth(line.BBox.Left())
			rows[rowKey] = append(rows[rowKey], cellCandidate{x: colKey, text: text})
		}
	}

	if len(rows) < d.config.MinRows {
		return nil
	}

	rowKeys := make([]float64, 0, len(rows))
	for y := range rows {
		rowKeys = append(rowKeys, y)
	}
	sort.Float64s(rowKeys)

	// Tally column keys across rows, keeping first-observed order so that
	// tie-breaking during cell assignment is deterministic.
	counts := make(map[float64]int)
	var order []float64
	for _, y := range rowKeys {
		for _, c := range rows[y] {
			if counts[c.x] == 0 {
				order = append(order, c.x)
			}
			counts[c.x]++
		}
	}

	var columns []float64
	for _, x := range order {
		if counts[x] >= columnSupport {
			columns = append(columns, x)
		}
	}
	if len(columns) < d.config.MinCommonColumns {
		return nil
	}

	// Build the grid: each row vector is sized to the common columns and
	// each cell lands in the nearest column; later cells at the same
	// column overwrite earlier ones.
	grid := make([][]string, 0, len(rowKeys))
	for _, y := range rowKeys {
		row := make([]string, len(columns))
		cells := append([]cellCandidate(nil), rows[y]...)
		sort.SliceStable(cells, func(i, j int) bool {
			return cells[i].x < cells[j].x
		})
		for _, c := range cells {
			row[nearestColumn(columns, c.x)] = c.text
		}
		grid = append(grid, row)
	}

	if len(grid) < d.config.MinRows {
		return nil
	}

	return &Table{Rows: grid}
}

// lineText concatenates a line's span texts, space-joined and trimmed.
func lineText(line model.Line) string {
	parts := make([]string, 0, len(line.Spans))
	for _, span := range line.Spans {
		parts = append(parts, span.Text)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// nearestColumn returns the index of the column key closest to x by
// absolute distance; ties resolve to the first minimum in column order.
func nearestColumn(columns []float64, x float64) int {
	best := 0
	bestDist := math.Abs(columns[0] - x)
	for i := 1; i < len(columns); i++ {
		if dist := math.Abs(columns[i] - x); dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	return best
}

// roundTenth rounds a coordinate to one decimal place.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
