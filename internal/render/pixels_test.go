package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillRGBA(t *testing.T) {
	colors := []color.RGBA{
		{R: 1, G: 2, B: 3, A: 4},
		{R: 255, G: 255, A: 255},
	}
	buf := make([]byte, 8)
	fillRGBA(buf, colors)
	want := []byte{1, 2, 3, 4, 255, 255, 0, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, want %v", buf, want)
	}
}

func TestFillRGBAShortBuffer(t *testing.T) {
	colors := []color.RGBA{{R: 9, A: 255}, {G: 9, A: 255}}
	buf := make([]byte, 4)
	fillRGBA(buf, colors)
	if !slices.Equal(buf, []byte{9, 0, 0, 255}) {
		t.Fatalf("buf = %v", buf)
	}
}
