// Package sequence provides the owned, bounds-checked, contiguous buffer
// that the sorting engines mutate in place.
//
// What:
//
//   - Sequence[T] wraps a contiguous []T with explicit ownership semantics.
//   - Clone is the only copy; Take moves the backing slice out; Wrap adopts
//     a caller's slice without copying.
//   - At/Set are bounds-checked; Values exposes the raw slice for hot paths
//     that already guarantee their index ranges.
//   - Equal, Mismatch and IsSorted support correctness cross-checking.
//
// Why:
//
//   - Sorting engines need a single mutable container whose lifetime is
//     scoped to one trial and whose hand-offs are explicit: a benchmark
//     that accidentally aliases two engines onto one buffer measures
//     nothing. Move-vs-copy is therefore spelled out in the API instead of
//     being implied by slice semantics.
//
// Complexity:
//
//   - At/Set/Len/Take: O(1).
//   - Clone/Equal/Mismatch/IsSorted: O(n).
//
// Errors:
//
//   - ErrNegativeLength: requested length is negative.
//   - ErrIndexOutOfRange: index outside [0, Len).
package sequence
