// Package report renders finalized benchmark rows: a CSV file for
// downstream tooling and an aligned text table for the terminal.
//
// The CSV header is derived from the engine names in the rows — with the
// stock engine family it reads
//
//	Input Size,Sequential Time,Bounded Time,Unbounded Time,Bounded Speedup,Unbounded Speedup
//
// followed by one comma-separated data row per input size, times in
// seconds as fixed-point floats.
//
// Errors:
//
//   - ErrNoRows: nothing to render.
//   - ErrInconsistentRows: rows disagree on their engine set.
//   - ErrNilWriter: destination writer is nil.
package report
