// Package sequence declares the Sequence container, its sentinel errors,
// and the three constructors (New, FromValues, Wrap).
package sequence

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for sequence construction and element access.
var (
	// ErrNegativeLength is returned by New when n < 0.
	ErrNegativeLength = errors.New("sequence: negative length")

	// ErrIndexOutOfRange is returned by At/Set for an index outside [0, Len).
	ErrIndexOutOfRange = errors.New("sequence: index out of range")
)

// Sequence is an ordered, mutable, randomly-indexable buffer of totally
// ordered elements, owned exclusively by whoever holds the pointer.
//
// Ownership rules:
//   - Clone produces an independent deep copy.
//   - Take moves the backing slice out and empties the Sequence.
//   - Wrap adopts the caller's slice; the caller must not touch it afterwards.
//
// The zero value is an empty, usable Sequence.
type Sequence[T constraints.Ordered] struct {
	data []T
}

// New returns a zero-filled Sequence of length n.
// Returns ErrNegativeLength when n < 0.
// Complexity: O(n)
func New[T constraints.Ordered](n int) (*Sequence[T], error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}

	return &Sequence[T]{data: make([]T, n)}, nil
}

// FromValues returns a Sequence holding a copy of vs.
// The caller keeps full ownership of vs; later mutations do not alias.
// Complexity: O(n)
func FromValues[T constraints.Ordered](vs ...T) *Sequence[T] {
	buf := make([]T, len(vs))
	copy(buf, vs)

	return &Sequence[T]{data: buf}
}

// Wrap adopts data as the backing slice without copying (a move, not a copy).
// After Wrap the caller must not read or write data directly; all access goes
// through the returned Sequence.
// Complexity: O(1)
func Wrap[T constraints.Ordered](data []T) *Sequence[T] {
	return &Sequence[T]{data: data}
}
