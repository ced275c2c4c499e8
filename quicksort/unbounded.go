// Package quicksort: the size-only-gated task-parallel engine.
package quicksort

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/parsort/forkjoin"
	"github.com/katalvlaran/parsort/sequence"
)

// Unbounded is the task-parallel engine with a size gate only: every
// range spanning more than SizeThreshold forks both subranges, at any
// depth. Note the gate is non-strict (≤, where Bounded uses <) — the two
// engines deliberately disagree by one on the smallest range they treat
// as parallelizable.
//
// There is no depth cap. On adversarial inputs the recursion degrades to
// a chain of length O(n) and the engine keeps O(n) tasks pending at once;
// run it on an Unlimited pool to observe exactly that. The benchmark
// harness exists partly to put numbers on this risk, which is why the
// engine does not defend against it.
type Unbounded[T constraints.Ordered] struct {
	pool *forkjoin.Pool
	opts Options
}

// NewUnbounded returns an Unbounded engine running its tasks on pool —
// canonically one built with forkjoin.Unlimited, so that fan-out is
// visible rather than absorbed by inline overflow.
// Returns ErrNilPool for a nil pool and ErrOptionViolation for invalid
// options. DepthLimit, if set, is ignored: this engine has no depth gate.
func NewUnbounded[T constraints.Ordered](pool *forkjoin.Pool, opts ...Option) (*Unbounded[T], error) {
	if pool == nil {
		return nil, ErrNilPool
	}
	o, err := normalize(opts)
	if err != nil {
		return nil, err
	}

	return &Unbounded[T]{pool: pool, opts: o}, nil
}

// Name identifies the engine in reports and logs.
func (e *Unbounded[T]) Name() string { return "Unbounded" }

// Sort orders seq in place in non-decreasing order.
//
// Steps:
//  1. Reject a nil sequence (ErrNilSequence).
//  2. Recurse: if (high−low) ≤ SizeThreshold, collapse to the sequential
//     body; otherwise partition, fork both subranges unconditionally,
//     and join before returning.
//
// Depth is carried for observability (the OnFork hook reports it) but
// never gates anything.
func (e *Unbounded[T]) Sort(seq *sequence.Sequence[T]) error {
	if seq == nil {
		return ErrNilSequence
	}
	data := seq.Values()
	e.sort(data, 0, len(data)-1, 0)

	return nil
}

// sort is the recursive task body at one (range, depth).
func (e *Unbounded[T]) sort(data []T, low, high, depth int) {
	// 1) Size gate only, non-strict.
	if high-low <= e.opts.SizeThreshold {
		sequentialSort(data, low, high)
		return
	}

	// 2) Split and always fork both sides.
	p := Partition(data, low, high)
	e.opts.OnFork(depth)
	left := e.pool.Spawn(func() { e.sort(data, low, p-1, depth+1) })
	right := e.pool.Spawn(func() { e.sort(data, p+1, high, depth+1) })

	// 3) Barrier before reporting this range sorted.
	forkjoin.Join(left, right)
}
