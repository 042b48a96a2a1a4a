package bitboard

import (
	"fmt"
	"iter"
)

// Board is the capability contract shared by the fixed-capacity and the
// growable board. It is built entirely on top of the shape accessors and
// the raw linear-index bit view that each storage backend supplies, so
// algorithms written against Board behave identically for both backends.
type Board interface {
	fmt.Stringer

	// NumRows returns the number of rows in the board.
	NumRows() int

	// NumCols returns the number of columns in the board.
	NumCols() int

	// Bit reads the bit at the given linear index. Indexes outside the
	// backing storage read as false.
	Bit(index int) bool

	// SetBit writes the bit at the given linear index. It panics if index
	// is outside the backing storage.
	SetBit(index int, value bool)

	// IndexOf returns the linear index of (row, col). It panics if row or
	// col is out of range.
	IndexOf(row, col int) int

	// RowColOf is the inverse of IndexOf. It is defined only for indexes
	// below NumRows*NumCols.
	RowColOf(index int) (row, col int)

	// Get reads the cell at (row, col). A computed index outside the
	// backing storage reads as false rather than failing.
	Get(row, col int) bool

	// Set writes the cell at (row, col). It panics if row or col is out
	// of range.
	Set(row, col int, value bool)

	// Fill sets every cell to value.
	Fill(value bool)

	// SetRow sets every cell in the given row to value.
	SetRow(row int, value bool)

	// SetCol sets every cell in the given column to value.
	SetCol(col int, value bool)

	// Row returns a lazy sequence over the cells of the given row. The
	// sequence reads the board at iteration time and can be restarted.
	Row(row int) iter.Seq[bool]

	// Col returns a lazy sequence over the cells of the given column.
	Col(col int) iter.Seq[bool]

	// SetCardinalNeighbors sets the cells directly above, below, left and
	// right of (row, col) to value. Neighbors past an edge are skipped.
	SetCardinalNeighbors(row, col int, value bool)

	// SetDiagonals sets the four diagonally adjacent cells of (row, col)
	// to value. Neighbors past an edge are skipped.
	SetDiagonals(row, col int, value bool)

	// SetAllNeighbors sets all up-to-eight neighbors of (row, col) to
	// value. Neighbors past an edge are skipped.
	SetAllNeighbors(row, col int, value bool)

	// And returns a new board that is the cellwise conjunction of the two
	// boards. It returns ErrDimensionMismatch if the shapes differ.
	// Neither operand is modified.
	And(other Board) (Board, error)

	// Or returns a new board that is the cellwise disjunction of the two
	// boards. It returns ErrDimensionMismatch if the shapes differ.
	// Neither operand is modified.
	Or(other Board) (Board, error)

	// Count returns the number of cells set to true.
	Count() int

	// Any reports whether at least one cell is true.
	Any() bool

	// None reports whether no cell is true.
	None() bool

	// All reports whether every cell is true.
	All() bool

	// Equal reports whether the two boards have the same shape and cell
	// content. Boards of different backends compare equal if their cells
	// agree.
	Equal(other Board) bool
}

// bitstore is the minimal storage contract a backend supplies: a packed
// bit sequence with read, write, bulk fill, popcount and deep copy.
// Callers guarantee indexes are within the logical bit length.
type bitstore interface {
	bit(index int) bool
	setBit(index int, value bool)
	fill(value bool)
	count() int
	clone() bitstore
}

// grid implements every derived Board operation once, on top of a shape
// and a bitstore. Static and Dynamic embed it and add construction,
// cloning and the set-algebra operations.
type grid struct {
	rows  int
	cols  int
	store bitstore
}

// NumRows returns the number of rows in the board.
func (g *grid) NumRows() int { return g.rows }

// NumCols returns the number of columns in the board.
func (g *grid) NumCols() int { return g.cols }

// size is the logical bit length of the board.
func (g *grid) size() int { return g.rows * g.cols }

// IndexOf returns the linear index of (row, col) in row-major order.
// It panics if row or col is out of range.
func (g *grid) IndexOf(row, col int) int {
	if row < 0 || row >= g.rows {
		panic(fmt.Sprintf("bitboard: row %d out of range [0,%d)", row, g.rows))
	}
	if col < 0 || col >= g.cols {
		panic(fmt.Sprintf("bitboard: col %d out of range [0,%d)", col, g.cols))
	}
	return row*g.cols + col
}

// RowColOf returns the (row, col) position of a linear index. It is the
// inverse of IndexOf and is defined only for index < NumRows*NumCols.
func (g *grid) RowColOf(index int) (row, col int) {
	return index / g.cols, index % g.cols
}

// Bit reads the bit at the given linear index. Indexes outside the
// backing storage read as false.
func (g *grid) Bit(index int) bool {
	if index < 0 || index >= g.size() {
		return false
	}
	return g.store.bit(index)
}

// SetBit writes the bit at the given linear index.
func (g *grid) SetBit(index int, value bool) {
	if index < 0 || index >= g.size() {
		panic(fmt.Sprintf("bitboard: bit index %d out of range [0,%d)", index, g.size()))
	}
	g.store.setBit(index, value)
}

// Get reads the cell at (row, col). It panics if row or col is out of
// range; a valid position whose index falls outside the backing storage
// reads as false.
func (g *grid) Get(row, col int) bool {
	return g.Bit(g.IndexOf(row, col))
}

// Set writes the cell at (row, col). It panics if row or col is out of
// range.
func (g *grid) Set(row, col int, value bool) {
	g.SetBit(g.IndexOf(row, col), value)
}

// Fill sets every cell to value.
func (g *grid) Fill(value bool) {
	g.store.fill(value)
}

// SetRow sets every cell in the given row to value.
func (g *grid) SetRow(row int, value bool) {
	for col := 0; col < g.cols; col++ {
		g.Set(row, col, value)
	}
}

// SetCol sets every cell in the given column to value.
func (g *grid) SetCol(col int, value bool) {
	for row := 0; row < g.rows; row++ {
		g.Set(row, col, value)
	}
}

// Row returns a lazy sequence over the cells of the given row. Cells are
// read at iteration time, so re-iterating observes the current state.
func (g *grid) Row(row int) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for col := 0; col < g.cols; col++ {
			if !yield(g.Get(row, col)) {
				return
			}
		}
	}
}

// Col returns a lazy sequence over the cells of the given column. Cells
// are read at iteration time, so re-iterating observes the current state.
func (g *grid) Col(col int) iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for row := 0; row < g.rows; row++ {
			if !yield(g.Get(row, col)) {
				return
			}
		}
	}
}

// Count returns the number of cells set to true.
func (g *grid) Count() int { return g.store.count() }

// Any reports whether at least one cell is true.
func (g *grid) Any() bool { return g.store.count() > 0 }

// None reports whether no cell is true.
func (g *grid) None() bool { return g.store.count() == 0 }

// All reports whether every cell is true.
func (g *grid) All() bool { return g.store.count() == g.size() }

// Equal reports whether the two boards have the same shape and cell
// content, regardless of backend.
func (g *grid) Equal(other Board) bool {
	if g.rows != other.NumRows() || g.cols != other.NumCols() {
		return false
	}
	for i := 0; i < g.size(); i++ {
		if g.Bit(i) != other.Bit(i) {
			return false
		}
	}
	return true
}

// clone returns a grid backed by an independent copy of the storage.
func (g *grid) clone() grid {
	return grid{rows: g.rows, cols: g.cols, store: g.store.clone()}
}

// checkShape verifies that other has the same shape as g.
func (g *grid) checkShape(other Board) error {
	if g.rows != other.NumRows() || g.cols != other.NumCols() {
		return ErrDimensionMismatch
	}
	return nil
}

// intersect replaces every bit of g with its conjunction with other.
// Shapes must already have been checked.
func (g *grid) intersect(other Board) {
	for i := 0; i < g.size(); i++ {
		g.store.setBit(i, g.store.bit(i) && other.Bit(i))
	}
}

// union replaces every bit of g with its disjunction with other. Shapes
// must already have been checked.
func (g *grid) union(other Board) {
	for i := 0; i < g.size(); i++ {
		g.store.setBit(i, g.store.bit(i) || other.Bit(i))
	}
}
