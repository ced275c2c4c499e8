// Package forkjoin implements the Pool scheduling policy: semaphore
// admission, inline overflow, and the join barrier.
package forkjoin

import "runtime"

// workersPerElement is the dataset size one extra worker is worth.
const workersPerElement = 1_000_000

// NewPool returns a Pool with the given worker capacity.
//
//	workers > 0:        at most `workers` tasks run concurrently;
//	                    overflow runs inline on the spawner.
//	workers == Unlimited: no cap, one goroutine per task.
//	workers < 0:        ErrNegativeWorkers.
//
// Complexity: O(1); the semaphore is allocated eagerly, workers never are.
func NewPool(workers int) (*Pool, error) {
	if workers < 0 {
		return nil, ErrNegativeWorkers
	}
	p := &Pool{}
	if workers > 0 {
		p.slots = make(chan struct{}, workers)
	}

	return p, nil
}

// Spawn submits task for execution and returns its Handle.
//
// Scheduling:
//  1. Unlimited pool: the task always gets a fresh goroutine.
//  2. Free slot available: the slot is taken and the task runs on a fresh
//     goroutine, releasing the slot when done.
//  3. All slots busy: the task runs inline, synchronously, on the calling
//     goroutine; Spawn returns only after it finished and the Handle is
//     already settled.
//
// Spawn never blocks on capacity, so recursive spawning from inside a task
// cannot deadlock the pool. A task panic does not escape here; it is
// captured and re-raised by Join.
func (p *Pool) Spawn(task func()) *Handle {
	h := &Handle{done: make(chan struct{})}

	if p.slots == nil {
		p.spawned.Add(1)
		go h.run(task, nil)

		return h
	}

	select {
	case p.slots <- struct{}{}:
		p.spawned.Add(1)
		go h.run(task, p.slots)
	default:
		p.inlined.Add(1)
		h.run(task, nil)
	}

	return h
}

// run executes task, captures any panic, releases the pool slot (when one
// was held), and settles the handle, in that order.
func (h *Handle) run(task func(), release chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			h.panicked = r
		}
		if release != nil {
			<-release
		}
		close(h.done)
	}()
	task()
}

// Join blocks until the task behind h has finished. If the task panicked,
// Join re-panics with the same value on the joining goroutine. Joining an
// already-settled handle returns (or re-panics) immediately.
func (h *Handle) Join() {
	<-h.done
	if h.panicked != nil {
		panic(h.panicked)
	}
}

// wait blocks until the handle settles, without re-raising panics.
func (h *Handle) wait() {
	<-h.done
}

// Join is the barrier form: it waits for every handle to settle — even
// when some of them panicked — and only then re-panics the first captured
// panic value, preserving spawn order. Nil handles are skipped.
func Join(handles ...*Handle) {
	for _, h := range handles {
		if h != nil {
			h.wait()
		}
	}
	for _, h := range handles {
		if h != nil && h.panicked != nil {
			panic(h.panicked)
		}
	}
}

// Workers reports the pool's capacity; Unlimited (0) means no cap.
func (p *Pool) Workers() int {
	return cap(p.slots)
}

// Spawned reports how many tasks received their own goroutine so far.
func (p *Pool) Spawned() int64 {
	return p.spawned.Load()
}

// Inlined reports how many tasks ran synchronously on their spawner
// because the pool was saturated at spawn time.
func (p *Pool) Inlined() int64 {
	return p.inlined.Load()
}

// WorkersForSize suggests a worker count for sorting n elements:
// one worker per started million elements, clamped to [1, GOMAXPROCS].
func WorkersForSize(n int) int {
	limit := runtime.GOMAXPROCS(0)
	w := 1 + n/workersPerElement
	if w > limit {
		w = limit
	}
	if w < 1 {
		w = 1
	}

	return w
}
