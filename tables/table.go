package tables

import (
	"strings"

	"golang.org/x/text/width"
)

// Table is a detected grid: an ordered sequence of rows, each an ordered
// sequence of column slots (possibly empty). The first row is
// conventionally treated as the header.
type Table struct {
	Rows [][]string
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColCount returns the widest row length.
func (t *Table) ColCount() int {
	cols := 0
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// ToMarkdown renders the table as a pipe-delimited markdown grid: a header
// row (row 0), a separator row of dashes sized to each column width plus
// two, then the data rows. Cells are left-justified and padded to the
// widest cell in their column; rows shorter than the column count are
// padded with empty cells.
func (t *Table) ToMarkdown() string {
	if len(t.Rows) == 0 {
		return ""
	}

	numCols := t.ColCount()
	widths := make([]int, numCols)
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && displayWidth(cell) > widths[i] {
				widths[i] = displayWidth(cell)
			}
		}
	}

	var lines []string

	header := make([]string, 0, len(t.Rows[0]))
	for i, cell := range t.Rows[0] {
		header = append(header, pad(cell, widths[i]))
	}
	lines = append(lines, "| "+strings.Join(header, " | ")+" |")

	separator := make([]string, 0, numCols)
	for _, w := range widths {
		separator = append(separator, strings.Repeat("-", w+2))
	}
	lines = append(lines, "|"+strings.Join(separator, "|")+"|")

	for _, row := range t.Rows[1:] {
		cells := make([]string, 0, numCols)
		for i := 0; i < numCols; i++ {
			if i < len(row) {
				cells = append(cells, pad(row[i], widths[i]))
			} else {
				cells = append(cells, pad("", widths[i]))
			}
		}
		lines = append(lines, "| "+strings.Join(cells, " | ")+" |")
	}

	return strings.Join(lines, "\n")
}

// displayWidth returns the rendered width of a cell, counting East Asian
// wide and fullwidth runes as two columns.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}

// pad left-justifies a cell to the given display width.
func pad(s string, w int) string {
	if gap := w - displayWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
