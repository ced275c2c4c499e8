// Package harness drives the engine family through repeated timed trials
// and cross-validates every parallel result against the sequential
// baseline.
//
// What:
//
//   - Engine is the capability a sorting variant exposes: Name + in-place
//     Sort. The harness holds one baseline and an explicit, ordered list
//     of variants — selection is by this list, never by comparing
//     function values.
//   - Run executes numRuns trials per input size. Each trial draws ONE
//     fresh dataset, clones it once per engine, times every engine on its
//     own clone with the monotonic clock, and compares each variant's
//     output element-by-element against the baseline's output for the
//     same logical input.
//   - A divergence is a concurrency bug, not a transient: Run aborts the
//     entire benchmark with ErrMismatch (never retries, never masks) and
//     reports the engine, input size, and first divergent index.
//   - Surviving sizes aggregate into Rows: per-engine average seconds and
//     speedup = baseline average / variant average.
//
// Why:
//
//   - Timing without validation would happily benchmark a racy sort. The
//     baseline is the oracle; a single mismatched element invalidates the
//     whole run's numbers.
//
// Concurrency:
//
//   - Engines run strictly one after another — concurrency lives inside
//     an engine's own Sort call, never between engines, so timings do not
//     contend. The run context (WithContext) is consulted between trials
//     only; a started trial always completes.
//
// Hooks:
//
//   - WithOnTrial observes every timed engine run; WithOnRow observes
//     each finalized per-size row. Both default to no-ops; the CLI wires
//     them to its logger.
//
// Errors:
//
//   - ErrMismatch: a variant's output diverged from the baseline's.
//   - ErrNilGenerator / ErrNilEngine: missing collaborators at New.
//   - ErrDuplicateEngine: two engines share a name.
//   - ErrInvalidRunCount: Run called with numRuns < 1.
//   - ErrOptionViolation: an invalid Option was supplied.
package harness
