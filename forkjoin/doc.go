// Package forkjoin provides the explicit task-spawning and join-barrier
// primitive the parallel sorting engines are built on.
//
// What:
//
//   - Pool schedules closures over a fixed number of worker slots;
//     Spawn(task) returns a *Handle, Handle.Join blocks until completion.
//   - A saturated Pool never queues and never blocks the spawner: the task
//     runs inline on the calling goroutine and its Handle is already
//     settled. Recursion therefore cannot deadlock on pool capacity.
//   - A Pool built with Unlimited capacity gives every task its own
//     goroutine with no cap. Fan-out is then bounded only by the caller's
//     recursion; see the quicksort package for why that risk is kept
//     measurable instead of being capped here.
//   - Join re-panics a task's panic on the joining goroutine, so failures
//     inside forked work surface at the barrier, not into the runtime.
//   - Spawned/Inlined counters expose scheduling decisions to tests and
//     benchmarks.
//
// Why:
//
//   - Fork-join sorting needs "run these two subranges concurrently, then
//     wait for both" as a first-class, testable operation rather than an
//     annotation buried in a directive. Spawn/Join is that operation.
//
// Model:
//
//   - No persistent workers and no queue: capacity is a semaphore. A slot
//     is held for a task's whole run and released before its Handle
//     settles. Tasks always run to completion; there is no cancellation
//     and no timeout.
//
// Errors:
//
//   - ErrNegativeWorkers: NewPool called with workers < 0.
package forkjoin
