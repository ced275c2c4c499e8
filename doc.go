// Package parsort compares sequential and task-parallel variants of an
// in-place quicksort and reports their relative speed — a fork-join
// laboratory whose benchmark harness refuses to trust a timing it has
// not validated.
//
// 🚀 What is parsort?
//
//	A library plus CLI that brings together:
//		• sequence:  an owned, bounds-checked buffer with explicit move semantics
//		• forkjoin:  a first-class spawn/join task pool (capped or unlimited)
//		• quicksort: one Lomuto partitioner, three engines — Sequential,
//		  Bounded (size- and depth-gated forking), Unbounded (size-gated only)
//		• dataset:   explicit-seed random generation + CSV persistence
//		• harness:   timed trials, baseline cross-checking, speedup aggregation
//		• report:    CSV report file + aligned stdout table
//		• hostinfo:  CPU/RAM context captured next to every benchmark
//
// ✨ Why parsort?
//
//   - Honest numbers – every parallel run is compared element-by-element
//     against the sequential baseline before its timing counts
//   - Honest risk – the Unbounded engine's fan-out is measured, not capped
//   - Hooks over hidden state – fork, trial, and row callbacks let callers
//     observe everything without the library logging anything
//   - Pure in-place sorting – engines mutate the caller's sequence and
//     allocate nothing on the hot path
//
// Quick start:
//
//	gen, _ := dataset.NewGenerator(42)
//	h, _ := harness.New(gen, quicksort.NewSequential[int64](), variants)
//	rows, err := h.Run([]int{10_000, 100_000}, 5)
//
// Dive into examples/ for runnable scenarios and cmd/parsort for the
// bench / generate / sort / host commands.
//
//	go get github.com/katalvlaran/parsort
package parsort
