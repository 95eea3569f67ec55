package render

import "image/color"

// fillRGBA copies per-cell colors into buf as packed RGBA bytes. Cells past
// the end of buf are ignored.
func fillRGBA(buf []byte, colors []color.RGBA) {
	for i, c := range colors {
		base := i * 4
		if base+3 >= len(buf) {
			return
		}
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}
