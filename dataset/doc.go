// Package dataset produces the random integer sequences the benchmark
// sorts, and persists them as comma-separated records.
//
// What:
//
//   - Generator wraps an explicit *rand.Rand handle: construct once with a
//     seed, pass by reference, draw a fresh dataset per trial. No hidden
//     package-level random state anywhere.
//   - Uniform(n) yields n values drawn uniformly from [1, MaxValue].
//   - WriteFile/ReadFile persist one sequence per file as
//     "v0,v1,...,vN-1" — no trailing delimiter, no final newline — and
//     round-trip valid files exactly.
//
// Why:
//
//   - Benchmark trials must be independent (fresh randomness per call) yet
//     reproducible (one logged seed reconstructs the whole run). An owned
//     generator handle gives both; a process-global seed gives neither.
//
// Seeding:
//
//   - NewGenerator(seed): a non-zero seed is used as-is; seed 0 derives
//     one from the wall clock at construction. Seed() reports the
//     effective value so callers can log it.
//
// Errors:
//
//   - ErrNegativeCount: Uniform called with n < 0.
//   - ErrNilSequence: WriteFile called with a nil sequence.
//   - ErrBadRecord: ReadFile met a token that is not a base-10 integer.
//   - ErrOptionViolation: an invalid Option was supplied.
package dataset
