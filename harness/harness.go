// Package harness implements the benchmark loop: trials, timing,
// validation, aggregation.
package harness

import (
	"fmt"
	"time"

	"github.com/katalvlaran/parsort/dataset"
	"github.com/katalvlaran/parsort/sequence"
)

// Harness benchmarks an explicit engine list against one baseline.
type Harness struct {
	gen      *dataset.Generator
	baseline Engine
	variants []Engine
	opts     Options
}

// New validates the collaborators and returns a ready Harness.
//
// Steps:
//  1. Require a generator and a non-nil baseline (ErrNilGenerator,
//     ErrNilEngine).
//  2. Require every variant non-nil and all engine names unique
//     (ErrNilEngine, ErrDuplicateEngine).
//  3. Apply options; surface the first violation (ErrOptionViolation).
func New(gen *dataset.Generator, baseline Engine, variants []Engine, opts ...Option) (*Harness, error) {
	if gen == nil {
		return nil, ErrNilGenerator
	}
	if baseline == nil {
		return nil, fmt.Errorf("%w: baseline", ErrNilEngine)
	}

	seen := map[string]bool{baseline.Name(): true}
	for i, v := range variants {
		if v == nil {
			return nil, fmt.Errorf("%w: variant %d", ErrNilEngine, i)
		}
		if seen[v.Name()] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEngine, v.Name())
		}
		seen[v.Name()] = true
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Harness{gen: gen, baseline: baseline, variants: variants, opts: o}, nil
}

// Run benchmarks every size with numRuns trials each and returns one Row
// per size, in order.
//
// Any correctness mismatch, engine failure, dataset failure, or context
// cancellation aborts the whole run: rows already aggregated are
// discarded, because partial numbers next to a failed validation are
// exactly the suspect data the harness exists to rule out.
func (h *Harness) Run(sizes []int, numRuns int) ([]Row, error) {
	if numRuns < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRunCount, numRuns)
	}

	rows := make([]Row, 0, len(sizes))
	for _, size := range sizes {
		row, err := h.runSize(size, numRuns)
		if err != nil {
			return nil, err
		}
		h.opts.OnRow(row)
		rows = append(rows, row)
	}

	return rows, nil
}

// runSize executes numRuns trials at one input size and aggregates them.
func (h *Harness) runSize(size, numRuns int) (Row, error) {
	var baseTotal time.Duration
	varTotals := make([]time.Duration, len(h.variants))

	for run := 1; run <= numRuns; run++ {
		// Cancellation is honored between trials only; a started trial
		// always completes.
		select {
		case <-h.opts.Ctx.Done():
			return Row{}, h.opts.Ctx.Err()
		default:
		}

		if err := h.trial(size, run, &baseTotal, varTotals); err != nil {
			return Row{}, err
		}
	}

	row := Row{
		Size:            size,
		BaselineName:    h.baseline.Name(),
		BaselineSeconds: baseTotal.Seconds() / float64(numRuns),
		Variants:        make([]VariantStat, len(h.variants)),
	}
	for i, v := range h.variants {
		avg := varTotals[i].Seconds() / float64(numRuns)
		row.Variants[i] = VariantStat{
			Name:       v.Name(),
			AvgSeconds: avg,
			Speedup:    row.BaselineSeconds / avg,
		}
	}

	return row, nil
}

// trial draws one dataset, times every engine on its own clone, and
// validates each variant against the baseline's output.
func (h *Harness) trial(size, run int, baseTotal *time.Duration, varTotals []time.Duration) error {
	input, err := h.gen.Uniform(size)
	if err != nil {
		return fmt.Errorf("harness: dataset for size %d: %w", size, err)
	}

	// 1) Baseline first: its output is the oracle for this trial.
	oracle := input.Clone()
	elapsed, err := h.timeSort(h.baseline, oracle, size, run)
	if err != nil {
		return err
	}
	*baseTotal += elapsed

	// 2) Each variant sorts its own clone of the same logical input.
	for i, v := range h.variants {
		work := input.Clone()
		elapsed, err = h.timeSort(v, work, size, run)
		if err != nil {
			return err
		}
		varTotals[i] += elapsed

		// 3) Element-by-element check against the oracle. Divergence is
		//    fatal to the entire benchmark.
		if idx, diverged := oracle.Mismatch(work); diverged {
			return fmt.Errorf("%w: engine %q at size %d, first divergence at index %d",
				ErrMismatch, v.Name(), size, idx)
		}
	}

	return nil
}

// timeSort runs one engine over seq under the monotonic clock and feeds
// the trial hook.
func (h *Harness) timeSort(e Engine, seq *sequence.Sequence[int64], size, run int) (time.Duration, error) {
	start := time.Now()
	if err := e.Sort(seq); err != nil {
		return 0, fmt.Errorf("harness: engine %q at size %d: %w", e.Name(), size, err)
	}
	elapsed := time.Since(start)
	// Coarse platform timers can report 0 for tiny inputs; a 1ns floor
	// keeps every average and speedup strictly positive and finite.
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}

	h.opts.OnTrial(TrialResult{Engine: e.Name(), Size: size, Run: run, Elapsed: elapsed})

	return elapsed, nil
}
