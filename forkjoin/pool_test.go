package forkjoin_test

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/parsort/forkjoin"
)

// PoolSuite exercises Pool scheduling, the join barrier, and panic
// propagation.
type PoolSuite struct {
	suite.Suite
}

func (s *PoolSuite) TestSpawnRunsTask() {
	p, err := forkjoin.NewPool(2)
	s.Require().NoError(err)

	var ran atomic.Bool
	h := p.Spawn(func() { ran.Store(true) })
	h.Join()

	s.Require().True(ran.Load())
	s.Require().EqualValues(1, p.Spawned())
	s.Require().EqualValues(0, p.Inlined())
}

func (s *PoolSuite) TestSaturatedPoolRunsInline() {
	p, err := forkjoin.NewPool(1)
	s.Require().NoError(err)

	block := make(chan struct{})
	hold := p.Spawn(func() { <-block })

	// The only slot is busy: this task must run synchronously, before
	// Spawn returns, on the calling goroutine.
	inlineRan := false
	h := p.Spawn(func() { inlineRan = true })
	s.Require().True(inlineRan)
	s.Require().EqualValues(1, p.Inlined())

	close(block)
	forkjoin.Join(hold, h)
}

func (s *PoolSuite) TestUnlimitedHasNoCap() {
	p, err := forkjoin.NewPool(forkjoin.Unlimited)
	s.Require().NoError(err)

	// All tasks must be able to block at the same time: only possible when
	// every one of them got its own goroutine.
	const tasks = 64
	gate := make(chan struct{})
	var started atomic.Int64
	handles := make([]*forkjoin.Handle, 0, tasks)
	for i := 0; i < tasks; i++ {
		handles = append(handles, p.Spawn(func() {
			started.Add(1)
			<-gate
		}))
	}
	s.Require().Eventually(
		func() bool { return started.Load() == tasks },
		time.Second, time.Millisecond,
	)

	close(gate)
	forkjoin.Join(handles...)
	s.Require().EqualValues(tasks, p.Spawned())
	s.Require().EqualValues(0, p.Inlined())
}

func (s *PoolSuite) TestJoinRepanics() {
	p, err := forkjoin.NewPool(4)
	s.Require().NoError(err)

	h := p.Spawn(func() { panic("boom") })
	s.Require().PanicsWithValue("boom", func() { h.Join() })
}

func (s *PoolSuite) TestInlinePanicSurfacesAtJoin() {
	p, err := forkjoin.NewPool(1)
	s.Require().NoError(err)

	block := make(chan struct{})
	hold := p.Spawn(func() { <-block })

	// Even when the task ran inline, its panic must wait for Join.
	var h *forkjoin.Handle
	s.Require().NotPanics(func() { h = p.Spawn(func() { panic("inline boom") }) })

	close(block)
	hold.Join()
	s.Require().PanicsWithValue("inline boom", func() { h.Join() })
}

func (s *PoolSuite) TestJoinBarrierWaitsForAll() {
	p, err := forkjoin.NewPool(4)
	s.Require().NoError(err)

	var finished atomic.Bool
	slow := p.Spawn(func() {
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
	})
	bad := p.Spawn(func() { panic("first") })

	// The barrier settles every handle before re-panicking the first value
	// in spawn order.
	s.Require().PanicsWithValue("first", func() { forkjoin.Join(bad, slow) })
	s.Require().True(finished.Load())
}

func (s *PoolSuite) TestCountersAccountForEveryTask() {
	p, err := forkjoin.NewPool(4)
	s.Require().NoError(err)

	const tasks = 200
	var total atomic.Int64
	handles := make([]*forkjoin.Handle, 0, tasks)
	for i := 0; i < tasks; i++ {
		handles = append(handles, p.Spawn(func() { total.Add(1) }))
	}
	forkjoin.Join(handles...)

	s.Require().EqualValues(tasks, total.Load())
	s.Require().EqualValues(tasks, p.Spawned()+p.Inlined())
}

func (s *PoolSuite) TestNegativeWorkers() {
	_, err := forkjoin.NewPool(-1)
	s.Require().ErrorIs(err, forkjoin.ErrNegativeWorkers)
}

func (s *PoolSuite) TestWorkersReportsCapacity() {
	bounded, err := forkjoin.NewPool(3)
	s.Require().NoError(err)
	s.Require().Equal(3, bounded.Workers())

	open, err := forkjoin.NewPool(forkjoin.Unlimited)
	s.Require().NoError(err)
	s.Require().Equal(forkjoin.Unlimited, open.Workers())
}

func TestPoolSuite(t *testing.T) {
	suite.Run(t, new(PoolSuite))
}

func TestWorkersForSize(t *testing.T) {
	limit := runtime.GOMAXPROCS(0)
	clamp := func(n int) int {
		w := 1 + n/1_000_000
		if w > limit {
			w = limit
		}
		if w < 1 {
			w = 1
		}

		return w
	}

	tests := []struct {
		name string
		n    int
	}{
		{name: "zero", n: 0},
		{name: "negative", n: -5},
		{name: "just below a million", n: 999_999},
		{name: "one million", n: 1_000_000},
		{name: "ten million", n: 10_000_000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := forkjoin.WorkersForSize(tc.n)
			require.Equal(t, clamp(tc.n), got)
			require.GreaterOrEqual(t, got, 1)
			require.LessOrEqual(t, got, limit)
		})
	}
}
