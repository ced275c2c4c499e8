// Package quicksort: the depth- and size-gated task-parallel engine.
package quicksort

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/parsort/forkjoin"
	"github.com/katalvlaran/parsort/sequence"
)

// Bounded is the task-parallel engine with both gates: a range forks into
// concurrent child tasks only while it spans at least SizeThreshold and
// its task depth has not passed DepthLimit. Everything below either gate
// runs the sequential body, so live tasks stay in O(2^DepthLimit) and the
// top of the recursion tree — where subranges are largest — gets all the
// parallelism.
type Bounded[T constraints.Ordered] struct {
	pool *forkjoin.Pool
	opts Options
}

// NewBounded returns a Bounded engine running its tasks on pool.
// Returns ErrNilPool for a nil pool and ErrOptionViolation for invalid
// options.
func NewBounded[T constraints.Ordered](pool *forkjoin.Pool, opts ...Option) (*Bounded[T], error) {
	if pool == nil {
		return nil, ErrNilPool
	}
	o, err := normalize(opts)
	if err != nil {
		return nil, err
	}

	return &Bounded[T]{pool: pool, opts: o}, nil
}

// Name identifies the engine in reports and logs.
func (e *Bounded[T]) Name() string { return "Bounded" }

// Sort orders seq in place in non-decreasing order.
//
// Steps:
//  1. Reject a nil sequence (ErrNilSequence).
//  2. Recurse from depth 0: if (high−low) < SizeThreshold or
//     depth > DepthLimit, collapse the whole range to the sequential
//     body; otherwise partition, fork both subranges as tasks at
//     depth+1, and join before returning.
//
// The join barrier makes Sort synchronous to its caller despite internal
// concurrency. The call returns only once the full range is sorted.
func (e *Bounded[T]) Sort(seq *sequence.Sequence[T]) error {
	if seq == nil {
		return ErrNilSequence
	}
	data := seq.Values()
	e.sort(data, 0, len(data)-1, 0)

	return nil
}

// sort is the recursive task body at one (range, depth).
func (e *Bounded[T]) sort(data []T, low, high, depth int) {
	// 1) Both gates: small ranges and exhausted depth run sequentially.
	if high-low < e.opts.SizeThreshold || depth > e.opts.DepthLimit {
		sequentialSort(data, low, high)
		return
	}

	// 2) Split around the pivot; subranges are disjoint by construction.
	p := Partition(data, low, high)

	// 3) Fork both subranges. The gate already guaranteed
	//    depth ≤ DepthLimit, so every call reaching here may fork.
	e.opts.OnFork(depth)
	left := e.pool.Spawn(func() { e.sort(data, low, p-1, depth+1) })
	right := e.pool.Spawn(func() { e.sort(data, p+1, high, depth+1) })

	// 4) Barrier: children fully sorted before this range reports done.
	forkjoin.Join(left, right)
}
