package sand

import (
	"image/color"
	"time"
)

var (
	colorEmpty = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorMetal = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colorSand  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colorWater = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

// ColorOf maps a particle to its render color. Kinds without a dedicated
// color, Water included, render as water.
func ColorOf(p Particle) color.RGBA {
	switch p {
	case Empty:
		return colorEmpty
	case Metal:
		return colorMetal
	case Sand:
		return colorSand
	default:
		return colorWater
	}
}

// ColorSink receives one render color per cell.
type ColorSink interface {
	SetColor(row, col int, c color.RGBA)
}

// Display is everything the driving loop needs from its host: grid access,
// color output, the live speed knob, pending input and pacing signals.
type Display interface {
	Grid
	ColorSink

	// Speed is the number of Lab steps to run before the next repaint.
	Speed() int
	// MouseLocation returns the most recent unconsumed click, if any.
	MouseLocation() (row, col int, ok bool)
	// Tool is the selected paint particle; Empty means erase.
	Tool() Particle
	Pause(d time.Duration)
	Repaint()
}

// UpdateDisplay publishes the color of every cell to out exactly once. It
// never mutates the grid.
func (l *Lab) UpdateDisplay(out ColorSink) {
	rows, cols := l.grid.NumRows(), l.grid.NumCols()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			out.SetColor(row, col, ColorOf(l.grid.Value(row, col)))
		}
	}
}
