// Package quicksort implements the adaptive in-place sorting engine
// family: a recursive sequential baseline and two task-parallel variants
// sharing one Lomuto partitioning primitive.
//
// What:
//
//   - Partition rearranges a subrange around its last element and reports
//     the pivot's settled index (the Lomuto scheme).
//   - Sequential sorts by plain partition-and-recurse; it is also the
//     fallback body both parallel engines collapse to.
//   - Bounded forks subranges into concurrent tasks only while the range
//     is at least SizeThreshold long AND the task depth has not passed
//     DepthLimit, keeping live tasks in O(2^DepthLimit).
//   - Unbounded forks on every range longer than SizeThreshold with no
//     depth cap.
//
// Why two parallel variants:
//
//   - Bounded is the production-shaped strategy: parallelize the top of
//     the recursion tree where subranges are largest, stop where
//     scheduling overhead would dominate.
//   - Unbounded exists to measure the naive strategy honestly. On
//     adversarial inputs (already sorted, reverse sorted, all equal) the
//     last-element pivot degrades partitioning to one-off ranges, the
//     recursion tree becomes a chain of length O(n), and the engine keeps
//     O(n) tasks pending at once. That fan-out is deliberately NOT capped
//     here — capping it would change the very behavior the benchmark
//     harness is meant to characterize.
//
// Fallback gates (asymmetric on purpose, matching the engines' contracts):
//
//	Bounded:   high-low <  SizeThreshold  OR  depth > DepthLimit  → sequential
//	Unbounded: high-low <= SizeThreshold                          → sequential
//
// Concurrency:
//
//   - Engines mutate the sequence in place. Sibling tasks always own
//     disjoint index ranges that exclude the settled pivot, so element
//     access needs no locks; the forkjoin barrier provides the only
//     synchronization.
//
// Complexity:
//
//   - All engines: average O(n log n) comparisons, worst case O(n²) on
//     adversarial pivots; O(1) auxiliary space per call frame.
//
// Errors:
//
//   - ErrNilSequence: Sort received a nil sequence.
//   - ErrNilPool: a parallel engine was constructed without a pool.
//   - ErrOptionViolation: an invalid Option was supplied.
package quicksort
