// Package model defines the read-only input model shared by all layout
// analysis packages: spans, lines, blocks, and pages, together with the
// bounding-box geometry they are positioned with.
package model
