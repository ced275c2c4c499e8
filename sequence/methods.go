// File: methods.go
// Role: Element access, ownership transfer, and comparison helpers.

package sequence

import "fmt"

// Len reports the number of elements. A nil Sequence has length 0.
// Complexity: O(1)
func (s *Sequence[T]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.data)
}

// At returns the element at index i.
// Returns ErrIndexOutOfRange (wrapped with the offending index) when
// i is outside [0, Len).
// Complexity: O(1)
func (s *Sequence[T]) At(i int) (T, error) {
	if i < 0 || i >= s.Len() {
		var zero T
		return zero, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, s.Len())
	}

	return s.data[i], nil
}

// Set stores v at index i.
// Returns ErrIndexOutOfRange (wrapped with the offending index) when
// i is outside [0, Len).
// Complexity: O(1)
func (s *Sequence[T]) Set(i int, v T) error {
	if i < 0 || i >= s.Len() {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, s.Len())
	}
	s.data[i] = v

	return nil
}

// Values exposes the backing slice as a borrowed view: mutations through the
// view are visible in the Sequence and vice versa. Hot paths (the engines)
// use it to avoid per-element bounds checks they already guarantee.
// A nil Sequence yields a nil slice.
// Complexity: O(1)
func (s *Sequence[T]) Values() []T {
	if s == nil {
		return nil
	}

	return s.data
}

// Clone returns an independent deep copy. Cloning nil yields nil.
// Complexity: O(n)
func (s *Sequence[T]) Clone() *Sequence[T] {
	if s == nil {
		return nil
	}
	buf := make([]T, len(s.data))
	copy(buf, s.data)

	return &Sequence[T]{data: buf}
}

// Take moves the backing slice out of the Sequence and leaves it empty:
// after Take, Len() == 0 and the returned slice is exclusively the caller's.
// Taking from nil yields nil.
// Complexity: O(1)
func (s *Sequence[T]) Take() []T {
	if s == nil {
		return nil
	}
	data := s.data
	s.data = nil

	return data
}

// Equal reports whether s and other hold the same elements in the same
// order. A nil Sequence compares as empty.
// Complexity: O(n)
func (s *Sequence[T]) Equal(other *Sequence[T]) bool {
	_, diverged := s.Mismatch(other)

	return !diverged
}

// Mismatch returns the first index at which s and other diverge and true,
// or (0, false) when they are element-wise identical. When one sequence is
// a strict prefix of the other, the divergence index is the shorter length.
// Complexity: O(n)
func (s *Sequence[T]) Mismatch(other *Sequence[T]) (int, bool) {
	a, b := s.Values(), other.Values()
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i, true
		}
	}
	if len(a) != len(b) {
		return n, true
	}

	return 0, false
}

// IsSorted reports whether the elements are in non-decreasing order.
// Empty and single-element sequences are sorted.
// Complexity: O(n)
func (s *Sequence[T]) IsSorted() bool {
	vs := s.Values()
	for i := 1; i < len(vs); i++ {
		if vs[i] < vs[i-1] {
			return false
		}
	}

	return true
}

// String renders the elements in slice notation, e.g. "[1 2 3]".
// Complexity: O(n)
func (s *Sequence[T]) String() string {
	return fmt.Sprint(s.Values())
}
