// Package report declares rendering sentinel errors.
package report

import "errors"

// Sentinel errors for report rendering.
var (
	// ErrNoRows is returned when there are no rows to render.
	ErrNoRows = errors.New("report: no rows to render")

	// ErrInconsistentRows is returned when rows disagree on their engine
	// set (different baseline or variant names across rows).
	ErrInconsistentRows = errors.New("report: rows disagree on engine set")

	// ErrNilWriter is returned when the destination writer is nil.
	ErrNilWriter = errors.New("report: nil writer")
)
