// Package dataset declares the Generator, its options, and sentinel
// errors.
package dataset

import (
	"errors"
	"fmt"
	"math/rand"
)

// DefaultMaxValue is the upper bound (inclusive) of generated values:
// the benchmark draws from [1, 1_000_000].
const DefaultMaxValue int64 = 1_000_000

// Sentinel errors for generation and persistence.
var (
	// ErrNegativeCount is returned by Uniform when n < 0.
	ErrNegativeCount = errors.New("dataset: negative element count")

	// ErrNilSequence is returned by WriteFile for a nil sequence.
	ErrNilSequence = errors.New("dataset: nil sequence")

	// ErrBadRecord is returned by ReadFile when a token cannot be parsed
	// as a base-10 integer.
	ErrBadRecord = errors.New("dataset: malformed record")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dataset: invalid option supplied")
)

// Option configures a Generator via functional arguments.
type Option func(*Options)

// Options holds Generator tunables.
type Options struct {
	// MaxValue is the inclusive upper bound of generated values; draws
	// come from [1, MaxValue]. Must be ≥ 1.
	MaxValue int64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with MaxValue = DefaultMaxValue.
func DefaultOptions() Options {
	return Options{
		MaxValue: DefaultMaxValue,
		err:      nil,
	}
}

// WithMaxValue bounds generated values to [1, v].
//
//	v ≥ 1: use v
//	v < 1: invalid option → ErrOptionViolation
func WithMaxValue(v int64) Option {
	return func(o *Options) {
		if v < 1 {
			o.err = fmt.Errorf("%w: MaxValue must be ≥ 1, got %d", ErrOptionViolation, v)
			return
		}
		o.MaxValue = v
	}
}

// Generator draws uniformly distributed datasets from an explicit random
// source. It is NOT safe for concurrent use: the harness serializes all
// draws, and independent goroutines should construct their own Generator.
type Generator struct {
	rng      *rand.Rand
	seed     int64
	maxValue int64
}
