package sand

import (
	"image/color"
	"slices"
	"testing"
)

type recordingSink struct {
	cols   int
	colors []color.RGBA
	visits []int
}

func newRecordingSink(rows, cols int) *recordingSink {
	return &recordingSink{cols: cols, colors: make([]color.RGBA, rows*cols), visits: make([]int, rows*cols)}
}

func (r *recordingSink) SetColor(row, col int, c color.RGBA) {
	idx := row*r.cols + col
	r.colors[idx] = c
	r.visits[idx]++
}

func TestColorOf(t *testing.T) {
	cases := []struct {
		p    Particle
		want color.RGBA
	}{
		{Empty, color.RGBA{A: 255}},
		{Metal, color.RGBA{R: 128, G: 128, B: 128, A: 255}},
		{Sand, color.RGBA{R: 255, G: 255, A: 255}},
		{Water, color.RGBA{G: 255, B: 255, A: 255}},
		{Particle(42), color.RGBA{G: 255, B: 255, A: 255}},
	}
	for _, tc := range cases {
		if got := ColorOf(tc.p); got != tc.want {
			t.Errorf("ColorOf(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestUpdateDisplayVisitsEveryCellOnce(t *testing.T) {
	b := NewBoard(4, 5)
	b.SetValue(0, 0, Metal)
	b.SetValue(1, 2, Sand)
	b.SetValue(3, 4, Water)
	before := snapshot(b)
	sink := newRecordingSink(4, 5)

	NewLab(b, script(t)).UpdateDisplay(sink)

	for i, n := range sink.visits {
		if n != 1 {
			t.Fatalf("cell %d colored %d times", i, n)
		}
	}
	for i, cell := range b.Cells() {
		if got, want := sink.colors[i], ColorOf(Particle(cell)); got != want {
			t.Fatalf("cell %d color %v, want %v", i, got, want)
		}
	}
	if !slices.Equal(before, b.Cells()) {
		t.Fatal("repaint mutated the grid")
	}
}

func TestUpdateDisplayIdempotent(t *testing.T) {
	b := NewBoard(3, 3)
	b.SetValue(2, 0, Sand)
	b.SetValue(2, 1, Water)
	lab := NewLab(b, script(t))

	first := newRecordingSink(3, 3)
	second := newRecordingSink(3, 3)
	lab.UpdateDisplay(first)
	lab.UpdateDisplay(second)

	if !slices.Equal(first.colors, second.colors) {
		t.Fatalf("repaints differ: %v vs %v", first.colors, second.colors)
	}
}
