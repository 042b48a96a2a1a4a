package bitboard

// SetCardinalNeighbors sets the cells directly above, below, left and
// right of (row, col) to value. A neighbor past an edge is skipped; the
// board never wraps around.
func (g *grid) SetCardinalNeighbors(row, col int, value bool) {
	// above
	if row > 0 {
		g.Set(row-1, col, value)
	}
	// below
	if row+1 < g.rows {
		g.Set(row+1, col, value)
	}
	// left
	if col > 0 {
		g.Set(row, col-1, value)
	}
	// right
	if col+1 < g.cols {
		g.Set(row, col+1, value)
	}
}

// SetDiagonals sets the four diagonally adjacent cells of (row, col) to
// value. A neighbor past an edge is skipped.
func (g *grid) SetDiagonals(row, col int, value bool) {
	// above left
	if row > 0 && col > 0 {
		g.Set(row-1, col-1, value)
	}
	// above right
	if row > 0 && col+1 < g.cols {
		g.Set(row-1, col+1, value)
	}
	// below left
	if row+1 < g.rows && col > 0 {
		g.Set(row+1, col-1, value)
	}
	// below right
	if row+1 < g.rows && col+1 < g.cols {
		g.Set(row+1, col+1, value)
	}
}

// SetAllNeighbors sets the cardinal and the diagonal neighbors of
// (row, col) to value. A neighbor past an edge is skipped.
func (g *grid) SetAllNeighbors(row, col int, value bool) {
	g.SetCardinalNeighbors(row, col, value)
	g.SetDiagonals(row, col, value)
}
