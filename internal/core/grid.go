package core

import "fmt"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Coordinates are (row, col); there is no wrapping at the edges.
type ByteGrid struct {
	rows, cols int
	data       []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions.
func NewByteGrid(rows, cols int) *ByteGrid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &ByteGrid{rows: rows, cols: cols, data: make([]uint8, rows*cols)}
}

// Rows returns the number of rows.
func (g *ByteGrid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *ByteGrid) Cols() int { return g.cols }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// In reports whether (row, col) lies inside the grid.
func (g *ByteGrid) In(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index returns the linear slice index for (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.cols + col }

// At returns the value at (row, col). It panics when the coordinates are out of range.
func (g *ByteGrid) At(row, col int) uint8 {
	g.check(row, col)
	return g.data[g.Index(row, col)]
}

// Set stores v at (row, col). It panics when the coordinates are out of range.
func (g *ByteGrid) Set(row, col int, v uint8) {
	g.check(row, col)
	g.data[g.Index(row, col)] = v
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

func (g *ByteGrid) check(row, col int) {
	if !g.In(row, col) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
}
