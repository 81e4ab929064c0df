// Package tables recognizes tabular layouts from coordinate alignment.
// Rows are grouped by block top-Y, columns by line left-X; a grid is
// declared only when at least two rows share at least two recurring column
// positions. Detected tables render as pipe-delimited markdown grids.
package tables
