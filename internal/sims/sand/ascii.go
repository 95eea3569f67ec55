package sand

import "strings"

// Glyph is the single-character form of a particle used by text renderings.
func Glyph(p Particle) byte {
	switch p {
	case Empty:
		return ' '
	case Metal:
		return '#'
	case Sand:
		return '.'
	case Water:
		return '~'
	default:
		return '?'
	}
}

// Format renders g as text, one line per row, framed by a border.
func Format(g Grid) string {
	rows, cols := g.NumRows(), g.NumCols()
	var sb strings.Builder
	sb.Grow((rows + 2) * (cols + 3))
	border := "+" + strings.Repeat("-", cols) + "+\n"
	sb.WriteString(border)
	for row := 0; row < rows; row++ {
		sb.WriteByte('|')
		for col := 0; col < cols; col++ {
			sb.WriteByte(Glyph(g.Value(row, col)))
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}
