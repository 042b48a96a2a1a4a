package bitboard

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Dynamic is a board over a bit sequence allocated to exactly rows*cols
// bits at construction. It has no capacity slack and no capacity ceiling
// at construction time, but the shape is just as immutable as for Static.
type Dynamic struct {
	grid
}

var _ Board = (*Dynamic)(nil)

// New creates an all-false growable board with the given shape.
func New(rows, cols int) *Dynamic {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("bitboard: invalid shape %dx%d", rows, cols))
	}
	return &Dynamic{
		grid: grid{
			rows:  rows,
			cols:  cols,
			store: &bitsetStore{bits: bitset.New(uint(rows * cols))},
		},
	}
}

// Clone returns an independent, fully-owned copy of the board.
func (b *Dynamic) Clone() *Dynamic {
	return &Dynamic{grid: b.grid.clone()}
}

// And returns a new growable board that is the cellwise conjunction of
// the two boards. It returns ErrDimensionMismatch if the shapes differ.
// Neither operand is modified.
func (b *Dynamic) And(other Board) (Board, error) {
	if err := b.checkShape(other); err != nil {
		return nil, err
	}
	out := b.Clone()
	out.intersect(other)
	return out, nil
}

// Or returns a new growable board that is the cellwise disjunction of
// the two boards. It returns ErrDimensionMismatch if the shapes differ.
// Neither operand is modified.
func (b *Dynamic) Or(other Board) (Board, error) {
	if err := b.checkShape(other); err != nil {
		return nil, err
	}
	out := b.Clone()
	out.union(other)
	return out, nil
}

// bitsetStore is the storage backend of Dynamic, a thin wrapper around
// bitset.BitSet. The set is created with the exact logical length, and
// all writes go through guarded board operations, so it never grows.
type bitsetStore struct {
	bits *bitset.BitSet
}

func (s *bitsetStore) bit(index int) bool {
	return s.bits.Test(uint(index))
}

func (s *bitsetStore) setBit(index int, value bool) {
	s.bits.SetTo(uint(index), value)
}

func (s *bitsetStore) fill(value bool) {
	if value {
		s.bits.SetAll()
	} else {
		s.bits.ClearAll()
	}
}

func (s *bitsetStore) count() int {
	return int(s.bits.Count())
}

func (s *bitsetStore) clone() bitstore {
	return &bitsetStore{bits: s.bits.Clone()}
}
