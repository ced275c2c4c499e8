// Package quicksort declares engine configuration: tunables, fork
// observability hooks, and sentinel errors.
package quicksort

import (
	"errors"
	"fmt"
)

// Default engine tunables.
const (
	// DefaultSizeThreshold is the minimum subrange length worth handing to
	// concurrent tasks; below it per-task scheduling overhead dominates
	// any parallel gain.
	DefaultSizeThreshold = 1000

	// DefaultDepthLimit is the deepest task level at which the bounded
	// engine still forks, bounding live tasks to O(2^DefaultDepthLimit).
	DefaultDepthLimit = 3
)

// Sentinel errors for engine construction and invocation.
var (
	// ErrNilSequence is returned by Sort when the sequence pointer is nil.
	ErrNilSequence = errors.New("quicksort: nil sequence")

	// ErrNilPool is returned when a parallel engine is constructed
	// without a fork-join pool.
	ErrNilPool = errors.New("quicksort: nil pool")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("quicksort: invalid option supplied")
)

// Option configures a parallel engine via functional arguments.
// An invalid Option (e.g. a zero threshold) is recorded internally and
// surfaced as ErrOptionViolation by the engine constructor.
type Option func(*Options)

// Options holds the tunables and callbacks shared by the parallel engines.
type Options struct {
	// SizeThreshold is the minimum (high − low) gap a range must have for
	// the engine to consider forking it. Must be ≥ 1.
	SizeThreshold int

	// DepthLimit is the maximum task depth at which the bounded engine
	// still forks; deeper calls collapse to the sequential body. Must be
	// ≥ 0 (0 = fork at the top-level call only). Ignored by Unbounded,
	// which has no depth gate.
	DepthLimit int

	// OnFork is called once per fork event — a call handing both of its
	// subranges to concurrent tasks — with the forking call's depth.
	// The hook runs on the forking goroutine, before the children spawn;
	// it must be fast and, for parallel runs, safe to call concurrently.
	OnFork func(depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the stock tunables:
//   - SizeThreshold = DefaultSizeThreshold (1000)
//   - DepthLimit = DefaultDepthLimit (3)
//   - no-op OnFork hook
func DefaultOptions() Options {
	return Options{
		SizeThreshold: DefaultSizeThreshold,
		DepthLimit:    DefaultDepthLimit,
		OnFork:        func(int) {},
		err:           nil,
	}
}

// WithSizeThreshold sets the minimum parallelizable range gap.
//
//	n ≥ 1: use n
//	n < 1: invalid option → ErrOptionViolation
func WithSizeThreshold(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: SizeThreshold must be ≥ 1, got %d", ErrOptionViolation, n)
			return
		}
		o.SizeThreshold = n
	}
}

// WithDepthLimit sets the deepest forking level for the bounded engine.
//
//	d ≥ 0: fork while depth ≤ d
//	d < 0: invalid option → ErrOptionViolation
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: DepthLimit cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthLimit = d
	}
}

// WithOnFork registers a callback observing every fork event. A nil fn is
// ignored.
func WithOnFork(fn func(depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFork = fn
		}
	}
}

// normalize applies opts over the defaults and reports the first recorded
// violation, if any.
func normalize(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}

	return o, nil
}
