package sand

import "sandlab/internal/core"

// Grid is the narrow read/write view of particle state the engine works on.
// Value and SetValue require 0 <= row < NumRows() and 0 <= col < NumCols().
type Grid interface {
	NumRows() int
	NumCols() int
	Value(row, col int) Particle
	SetValue(row, col int, p Particle)
}

// Board is a fixed-size Grid backed by a core.ByteGrid. Dimensions below one
// are raised to one. Out-of-range coordinates are programming errors: Value
// and SetValue panic rather than clamp or wrap.
type Board struct {
	cells *core.ByteGrid
}

// NewBoard allocates an all-empty board.
func NewBoard(rows, cols int) *Board {
	return &Board{cells: core.NewByteGrid(rows, cols)}
}

func (b *Board) NumRows() int { return b.cells.Rows() }

func (b *Board) NumCols() int { return b.cells.Cols() }

func (b *Board) Value(row, col int) Particle {
	return Particle(b.cells.At(row, col))
}

func (b *Board) SetValue(row, col int, p Particle) {
	b.cells.Set(row, col, uint8(p))
}

// Cells exposes the row-major particle bytes.
func (b *Board) Cells() []uint8 { return b.cells.Cells() }

// Clear empties every cell.
func (b *Board) Clear() { b.cells.Clear() }

// Counts tallies the particles of each kind on a grid.
type Counts struct {
	Metal int
	Sand  int
	Water int
}

// Total is the number of non-empty cells.
func (c Counts) Total() int { return c.Metal + c.Sand + c.Water }

// CountParticles scans g once and tallies every non-empty cell.
func CountParticles(g Grid) Counts {
	var c Counts
	for row := 0; row < g.NumRows(); row++ {
		for col := 0; col < g.NumCols(); col++ {
			switch g.Value(row, col) {
			case Metal:
				c.Metal++
			case Sand:
				c.Sand++
			case Water:
				c.Water++
			}
		}
	}
	return c
}
