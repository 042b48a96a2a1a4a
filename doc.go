// Package bitboard implements a bit-packed 2D boolean grid.
//
// A Board is a rectangular matrix of booleans stored one bit per cell in
// packed machine words, with positional access, bulk row/column mutation,
// neighborhood mutation, and bitwise AND/OR combination of same-shaped
// boards. Boundaries are hard: operations on neighbors past an edge do not
// wrap around to the other side.
//
// # Quick Start
//
//	b := bitboard.New(4, 13) // growable backend, sized exactly
//	b.Set(0, 0, true)
//	b.SetCol(4, true)
//	fmt.Print(b)
//
// For allocation-sensitive callers, the fixed-capacity backend reserves a
// block of 64-bit words up front and never reallocates:
//
//	b := bitboard.NewStatic(8, 8, bitboard.WordsFor(8*8))
//
// Both backends satisfy the Board interface, so algorithms written against
// it work identically regardless of storage strategy:
//
//	union, err := a.Or(b) // fresh board, operands untouched
//	if errors.Is(err, bitboard.ErrDimensionMismatch) {
//	    // shapes differ
//	}
//
// # Error Model
//
// Passing an out-of-range row or column to IndexOf, Set, SetRow or SetCol
// is a contract violation and panics. Get is deliberately lenient: a
// computed index outside the backing storage reads as false. Combining
// boards of different shapes is the only recoverable error and is reported
// as ErrDimensionMismatch.
//
// Boards are not safe for concurrent mutation; wrap access in a mutex if
// an instance must be shared across goroutines.
package bitboard
