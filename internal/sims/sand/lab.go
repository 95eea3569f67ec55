package sand

// WaterMovements is the number of equally likely horizontal drifts water
// samples per move: -1, 0 and +1.
const WaterMovements = 3

// Source supplies uniform random ints in [0, n). *rand.Rand from math/rand/v2
// and *core.RNG both satisfy it.
type Source interface {
	IntN(n int) int
}

// Lab advances a grid one randomly sampled cell at a time. It holds no loop;
// hosts call Step repeatedly (see Frame).
type Lab struct {
	grid Grid
	rng  Source
}

// NewLab returns an engine operating on grid with randomness drawn from rng.
func NewLab(grid Grid, rng Source) *Lab {
	return &Lab{grid: grid, rng: rng}
}

// Grid returns the grid the lab mutates.
func (l *Lab) Grid() Grid { return l.grid }

// Step picks one cell uniformly at random and, if it holds sand or water,
// tries to move it down by one row. Blocked or out-of-bounds moves leave the
// grid unchanged. Randomness is drawn as row, col and then, for water only,
// the drift.
func (l *Lab) Step() {
	row := l.rng.IntN(l.grid.NumRows())
	col := l.rng.IntN(l.grid.NumCols())

	switch l.grid.Value(row, col) {
	case Sand:
		l.sandMove(row, col)
	case Water:
		l.waterMove(row, col, l.rng.IntN(WaterMovements)-1)
	}
}

// LocationClicked overwrites one cell with tool. Empty erases.
func (l *Lab) LocationClicked(row, col int, tool Particle) {
	l.grid.SetValue(row, col, tool)
}

func (l *Lab) sandMove(row, col int) {
	l.moveTo(row, col, row+1, col)
}

// waterMove only tries the one sampled direction: a blocked diagonal does not
// fall back to straight down.
func (l *Lab) waterMove(row, col, drift int) {
	l.moveTo(row, col, row+1, col+drift)
}

func (l *Lab) moveTo(row, col, toRow, toCol int) {
	if toRow >= l.grid.NumRows() || toCol < 0 || toCol >= l.grid.NumCols() {
		return
	}
	if l.grid.Value(toRow, toCol) != Empty {
		return
	}
	p := l.grid.Value(row, col)
	l.grid.SetValue(toRow, toCol, p)
	l.grid.SetValue(row, col, Empty)
}
