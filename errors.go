package bitboard

import "errors"

var (
	// ErrDimensionMismatch is returned by And and Or when the two boards do
	// not share the same shape.
	ErrDimensionMismatch = errors.New("bitboard: dimension mismatch")
)
