package bitboard

import (
	"fmt"
	"math/bits"
)

// WordBits is the number of bits per backing machine word.
const WordBits = 64

// WordsFor returns the number of backing words needed to hold nbits bits.
// Use it to size the capacity of a Static board.
func WordsFor(nbits int) int {
	return (nbits + WordBits - 1) / WordBits
}

// Static is a board over a fixed-capacity block of 64-bit words. The
// block is allocated once at construction and never reallocated; capacity
// beyond the logical rows*cols bits exists but is never addressed.
type Static struct {
	grid
	capacityWords int
}

var _ Board = (*Static)(nil)

// NewStatic creates an all-false board of the given shape backed by a
// block of capacityWords 64-bit words. It panics if rows*cols exceeds
// capacityWords*64: the capacity is a hard ceiling, never grown and never
// silently truncated.
func NewStatic(rows, cols, capacityWords int) *Static {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("bitboard: invalid shape %dx%d", rows, cols))
	}
	need := rows * cols
	avail := capacityWords * WordBits
	if need > avail {
		panic(fmt.Sprintf("bitboard: %dx%d board needs %d bits, capacity is %d words (%d bits)",
			rows, cols, need, capacityWords, avail))
	}
	return &Static{
		grid: grid{
			rows:  rows,
			cols:  cols,
			store: newWordBlock(capacityWords, need),
		},
		capacityWords: capacityWords,
	}
}

// CapacityWords returns the number of backing words reserved at
// construction.
func (b *Static) CapacityWords() int { return b.capacityWords }

// CapacityBits returns the total bit capacity of the backing block.
func (b *Static) CapacityBits() int { return b.capacityWords * WordBits }

// Clone returns an independent, fully-owned copy of the board.
func (b *Static) Clone() *Static {
	return &Static{grid: b.grid.clone(), capacityWords: b.capacityWords}
}

// And returns a new fixed-capacity board that is the cellwise conjunction
// of the two boards. It returns ErrDimensionMismatch if the shapes
// differ. Neither operand is modified.
func (b *Static) And(other Board) (Board, error) {
	if err := b.checkShape(other); err != nil {
		return nil, err
	}
	out := b.Clone()
	out.intersect(other)
	return out, nil
}

// Or returns a new fixed-capacity board that is the cellwise disjunction
// of the two boards. It returns ErrDimensionMismatch if the shapes
// differ. Neither operand is modified.
func (b *Static) Or(other Board) (Board, error) {
	if err := b.checkShape(other); err != nil {
		return nil, err
	}
	out := b.Clone()
	out.union(other)
	return out, nil
}

// wordBlock is the storage backend of Static: a block of 64-bit words
// whose length is fixed at construction. Only the first nbits bits are
// logical board state; the slack stays zero.
type wordBlock struct {
	words []uint64
	nbits int
}

func newWordBlock(capacityWords, nbits int) *wordBlock {
	return &wordBlock{words: make([]uint64, capacityWords), nbits: nbits}
}

func (w *wordBlock) bit(index int) bool {
	return w.words[index/WordBits]&(uint64(1)<<(index%WordBits)) != 0
}

func (w *wordBlock) setBit(index int, value bool) {
	if value {
		w.words[index/WordBits] |= uint64(1) << (index % WordBits)
	} else {
		w.words[index/WordBits] &^= uint64(1) << (index % WordBits)
	}
}

func (w *wordBlock) fill(value bool) {
	if !value {
		clear(w.words)
		return
	}
	full := w.nbits / WordBits
	for i := 0; i < full; i++ {
		w.words[i] = ^uint64(0)
	}
	// mask the tail so the slack stays clear
	if rem := w.nbits % WordBits; rem != 0 {
		w.words[full] = uint64(1)<<rem - 1
	}
}

func (w *wordBlock) count() int {
	n := 0
	for _, word := range w.words {
		n += bits.OnesCount64(word)
	}
	return n
}

func (w *wordBlock) clone() bitstore {
	words := make([]uint64, len(w.words))
	copy(words, w.words)
	return &wordBlock{words: words, nbits: w.nbits}
}
