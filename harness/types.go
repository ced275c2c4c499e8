// Package harness declares the Engine capability, trial/row records,
// options, and sentinel errors.
package harness

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/parsort/sequence"
)

// Sentinel errors for harness construction and runs.
var (
	// ErrMismatch reports a parallel engine's output diverging from the
	// sequential baseline's — a correctness failure fatal to the whole
	// benchmark.
	ErrMismatch = errors.New("harness: output diverges from baseline")

	// ErrNilGenerator is returned by New for a nil dataset generator.
	ErrNilGenerator = errors.New("harness: nil generator")

	// ErrNilEngine is returned by New when the baseline or a variant is nil.
	ErrNilEngine = errors.New("harness: nil engine")

	// ErrDuplicateEngine is returned by New when two engines share a name.
	ErrDuplicateEngine = errors.New("harness: duplicate engine name")

	// ErrInvalidRunCount is returned by Run when numRuns < 1.
	ErrInvalidRunCount = errors.New("harness: run count must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("harness: invalid option supplied")
)

// Engine is the sortable-engine capability the harness drives. Sort must
// order seq in place and be synchronous: when it returns, the sequence is
// fully sorted regardless of any internal concurrency.
type Engine interface {
	// Name identifies the engine in rows, reports, and logs.
	Name() string

	// Sort orders seq in place in non-decreasing order.
	Sort(seq *sequence.Sequence[int64]) error
}

// TrialResult records one timed engine run within one trial.
type TrialResult struct {
	// Engine is the engine's Name.
	Engine string

	// Size is the trial's input length.
	Size int

	// Run is the 1-based trial number within its size.
	Run int

	// Elapsed is the monotonic wall time of the Sort call.
	Elapsed time.Duration
}

// VariantStat aggregates one parallel variant over a size's trials.
type VariantStat struct {
	// Name is the variant engine's Name.
	Name string

	// AvgSeconds is the mean Sort wall time across the size's trials.
	AvgSeconds float64

	// Speedup is the baseline's AvgSeconds divided by this variant's.
	Speedup float64
}

// Row is the finalized result for one input size.
type Row struct {
	// Size is the input length this row summarizes.
	Size int

	// BaselineName is the baseline engine's Name.
	BaselineName string

	// BaselineSeconds is the baseline's mean Sort wall time.
	BaselineSeconds float64

	// Variants holds per-variant stats in the order the harness was
	// configured with.
	Variants []VariantStat
}

// Option configures a Harness via functional arguments.
type Option func(*Options)

// Options holds harness callbacks and the run context.
type Options struct {
	// Ctx allows cancelling a run between trials. A started trial always
	// completes: engines themselves have no cancellation.
	Ctx context.Context

	// OnTrial is called after every timed engine run.
	OnTrial func(TrialResult)

	// OnRow is called when a size's row is finalized.
	OnRow func(Row)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with context.Background and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnTrial: func(TrialResult) {},
		OnRow:   func(Row) {},
		err:     nil,
	}
}

// WithContext sets the context consulted between trials.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnTrial registers a callback observing every timed engine run.
// A nil fn is ignored.
func WithOnTrial(fn func(TrialResult)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnTrial = fn
		}
	}
}

// WithOnRow registers a callback observing every finalized row. A nil fn
// is ignored.
func WithOnRow(fn func(Row)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRow = fn
		}
	}
}
