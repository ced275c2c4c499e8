// Package forkjoin declares the Pool and Handle types and their sentinel
// errors.
package forkjoin

import (
	"errors"
	"sync/atomic"
)

// Unlimited selects a Pool without a worker cap: every Spawn gets its own
// goroutine. Used by the size-only-gated sorting engine to expose, not
// hide, its fan-out.
const Unlimited = 0

// ErrNegativeWorkers is returned by NewPool when workers < 0.
var ErrNegativeWorkers = errors.New("forkjoin: negative worker count")

// Pool schedules spawned closures over at most `workers` concurrent slots,
// or without any cap when built with Unlimited.
//
// The zero value is not usable; construct with NewPool.
type Pool struct {
	// slots is the semaphore guarding concurrency; nil means Unlimited.
	slots chan struct{}

	// spawned counts tasks that received their own goroutine.
	spawned atomic.Int64

	// inlined counts tasks run synchronously on the spawning goroutine
	// because every slot was busy.
	inlined atomic.Int64
}

// Handle represents one spawned task. It settles exactly once, when the
// task has run to completion (normally or by panicking).
type Handle struct {
	// done is closed when the task has finished.
	done chan struct{}

	// panicked holds the task's panic value, if any. Written before done
	// closes; read only after done closes.
	panicked any
}
