package sand

import (
	"image/color"
	"time"

	"sandlab/internal/core"
)

// MaxSpeed caps the steps-per-frame knob.
const MaxSpeed = 100000

// World is a self-contained headless Display: it owns the board, the engine,
// the color buffer and the user-facing knobs. GUI front ends feed clicks and
// tool changes into it and draw Colors.
type World struct {
	cfg Config

	board  *Board
	lab    *Lab
	colors []color.RGBA

	speed int
	tool  Particle

	clickRow, clickCol int
	clicked            bool

	pause  func(time.Duration)
	frames int
}

// New returns a world with the provided dimensions using defaults.
func New(rows, cols int) *World {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empty world configured from cfg.
func NewWithConfig(cfg Config) *World {
	board := NewBoard(cfg.Rows, cfg.Cols)
	cfg.Rows, cfg.Cols = board.NumRows(), board.NumCols()
	w := &World{
		cfg:    cfg,
		board:  board,
		colors: make([]color.RGBA, cfg.Rows*cfg.Cols),
		speed:  clampSpeed(cfg.Speed),
		tool:   cfg.Tool,
	}
	w.Reset(cfg.Seed)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Cols, H: w.cfg.Rows} }

// Cells exposes the row-major particle bytes.
func (w *World) Cells() []uint8 { return w.board.Cells() }

// Colors exposes the row-major color buffer written by the last repaint.
func (w *World) Colors() []color.RGBA { return w.colors }

// Lab returns the engine stepping this world.
func (w *World) Lab() *Lab { return w.lab }

// Reset empties the board, drops any pending click and reseeds the engine. A
// zero seed falls back to the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	w.board.Clear()
	w.clicked = false
	w.lab = NewLab(w, core.NewRNG(seed))
	w.lab.UpdateDisplay(w)
}

// Step runs one driving-loop frame.
func (w *World) Step() {
	Frame(w.lab, w)
}

func (w *World) NumRows() int { return w.board.NumRows() }

func (w *World) NumCols() int { return w.board.NumCols() }

func (w *World) Value(row, col int) Particle { return w.board.Value(row, col) }

func (w *World) SetValue(row, col int, p Particle) { w.board.SetValue(row, col, p) }

func (w *World) SetColor(row, col int, c color.RGBA) {
	w.colors[row*w.cfg.Cols+col] = c
}

// Speed reports the steps run per frame.
func (w *World) Speed() int { return w.speed }

// SetSpeed changes the steps run per frame, clamped to [0, MaxSpeed].
func (w *World) SetSpeed(n int) { w.speed = clampSpeed(n) }

// Tool reports the particle painted by clicks.
func (w *World) Tool() Particle { return w.tool }

// SetTool selects the particle painted by clicks. Empty erases.
func (w *World) SetTool(p Particle) { w.tool = p }

// Click queues a paint at (row, col), clamped to the board. Only the most
// recent click is kept; it is applied at the end of the next frame.
func (w *World) Click(row, col int) {
	w.clickRow = clampInt(row, 0, w.board.NumRows()-1)
	w.clickCol = clampInt(col, 0, w.board.NumCols()-1)
	w.clicked = true
}

// MouseLocation consumes the pending click.
func (w *World) MouseLocation() (int, int, bool) {
	if !w.clicked {
		return 0, 0, false
	}
	w.clicked = false
	return w.clickRow, w.clickCol, true
}

// SetPause installs the frame pacing hook. A nil hook makes Pause a no-op.
func (w *World) SetPause(fn func(time.Duration)) { w.pause = fn }

func (w *World) Pause(d time.Duration) {
	if w.pause != nil {
		w.pause(d)
	}
}

// Repaint records that a frame's colors are ready.
func (w *World) Repaint() { w.frames++ }

// Frames reports how many repaints have been signalled.
func (w *World) Frames() int { return w.frames }

// Counts tallies the particles currently on the board.
func (w *World) Counts() Counts { return CountParticles(w.board) }

func clampSpeed(n int) int {
	return clampInt(n, 0, MaxSpeed)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
