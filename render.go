package bitboard

import (
	"fmt"
	"strings"
)

// String renders the board as a human-readable grid: column indices
// wrapped mod 10 as a header row, each data row prefixed with a
// right-aligned two-character row index, and cells drawn as 'X' (true)
// or '.' (false). The rendering is a read-only projection of the board.
func (g *grid) String() string {
	var sb strings.Builder

	// column indices, space for the row labels first
	sb.WriteString("   ")
	for col := 0; col < g.cols; col++ {
		sb.WriteByte(byte('0' + col%10))
	}
	sb.WriteByte('\n')

	for row := 0; row < g.rows; row++ {
		fmt.Fprintf(&sb, "%2d ", row)
		for col := 0; col < g.cols; col++ {
			if g.Get(row, col) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
