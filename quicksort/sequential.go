// Package quicksort: the recursive sequential baseline engine.
package quicksort

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/parsort/sequence"
)

// Sequential is the recursive partition-and-conquer baseline. It is the
// reference implementation the benchmark harness validates the parallel
// engines against, and the body those engines collapse to below their
// gates.
type Sequential[T constraints.Ordered] struct{}

// NewSequential returns the baseline engine. It has no tunables.
func NewSequential[T constraints.Ordered]() *Sequential[T] {
	return &Sequential[T]{}
}

// Name identifies the engine in reports and logs.
func (e *Sequential[T]) Name() string { return "Sequential" }

// Sort orders seq in place in non-decreasing order.
//
// Steps:
//  1. Reject a nil sequence (ErrNilSequence).
//  2. Recurse: partition, sort [low, p−1], sort [p+1, high];
//     ranges of length ≤ 1 are already sorted.
//
// Complexity: average O(n log n), worst case O(n²) on already-sorted or
// reverse-sorted input (last-element pivot). Stability is not guaranteed.
func (e *Sequential[T]) Sort(seq *sequence.Sequence[T]) error {
	if seq == nil {
		return ErrNilSequence
	}
	data := seq.Values()
	sequentialSort(data, 0, len(data)-1)

	return nil
}

// sequentialSort is the shared recursive body: plain quicksort over
// data[low..high], no concurrency, no allocation.
func sequentialSort[T constraints.Ordered](data []T, low, high int) {
	if low >= high {
		return
	}
	p := Partition(data, low, high)
	sequentialSort(data, low, p-1)
	sequentialSort(data, p+1, high)
}
