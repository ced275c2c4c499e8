package quicksort_test

import (
	"math/rand"
	"runtime"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parsort/forkjoin"
	"github.com/katalvlaran/parsort/quicksort"
	"github.com/katalvlaran/parsort/sequence"
)

// engine is the capability every sorting variant exposes.
type engine interface {
	Name() string
	Sort(*sequence.Sequence[int64]) error
}

// allEngines builds one engine of each variant with shared options. The
// bounded engine runs on a CPU-sized pool, the unbounded one on an
// uncapped pool.
func allEngines(t *testing.T, opts ...quicksort.Option) []engine {
	t.Helper()

	boundedPool, err := forkjoin.NewPool(runtime.GOMAXPROCS(0))
	require.NoError(t, err)
	bounded, err := quicksort.NewBounded[int64](boundedPool, opts...)
	require.NoError(t, err)

	openPool, err := forkjoin.NewPool(forkjoin.Unlimited)
	require.NoError(t, err)
	unbounded, err := quicksort.NewUnbounded[int64](openPool, opts...)
	require.NoError(t, err)

	return []engine{quicksort.NewSequential[int64](), bounded, unbounded}
}

func TestEnginesSortScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []int64
		want  []int64
	}{
		{name: "mixed", input: []int64{5, 3, 8, 1, 9, 2}, want: []int64{1, 2, 3, 5, 8, 9}},
		{name: "empty", input: []int64{}, want: []int64{}},
		{name: "single", input: []int64{7}, want: []int64{7}},
		{name: "all equal", input: []int64{2, 2, 2, 2}, want: []int64{2, 2, 2, 2}},
		{name: "already sorted", input: []int64{1, 2, 3, 4, 5, 6}, want: []int64{1, 2, 3, 4, 5, 6}},
		{name: "reverse sorted", input: []int64{6, 5, 4, 3, 2, 1}, want: []int64{1, 2, 3, 4, 5, 6}},
		{name: "duplicates", input: []int64{4, 1, 4, 2, 1, 4}, want: []int64{1, 1, 2, 4, 4, 4}},
		{name: "negatives", input: []int64{0, -3, 7, -3, 2}, want: []int64{-3, -3, 0, 2, 7}},
	}

	// A size threshold of 1 forces the parallel engines off their
	// sequential fallback on even these tiny inputs.
	for _, eng := range allEngines(t, quicksort.WithSizeThreshold(1)) {
		t.Run(eng.Name(), func(t *testing.T) {
			for _, tc := range tests {
				t.Run(tc.name, func(t *testing.T) {
					seq := sequence.FromValues(tc.input...)
					require.NoError(t, eng.Sort(seq))
					require.Equal(t, tc.want, seq.Values())
					require.True(t, seq.IsSorted())
				})
			}
		})
	}
}

func TestCrossEngineEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	sizes := []int{0, 1, 2, 17, 100, 1000, 5000}

	for _, n := range sizes {
		input := make([]int64, n)
		for i := range input {
			input[i] = rng.Int63n(500) // duplicates likely
		}

		want := append([]int64{}, input...)
		slices.Sort(want)

		for _, eng := range allEngines(t, quicksort.WithSizeThreshold(50)) {
			seq := sequence.FromValues(input...)
			require.NoError(t, eng.Sort(seq), "engine %s, n=%d", eng.Name(), n)
			require.Equal(t, want, seq.Values(), "engine %s, n=%d", eng.Name(), n)
		}
	}
}

func TestSortIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	input := make([]int64, 2000)
	for i := range input {
		input[i] = rng.Int63n(100)
	}

	for _, eng := range allEngines(t, quicksort.WithSizeThreshold(10)) {
		t.Run(eng.Name(), func(t *testing.T) {
			seq := sequence.FromValues(input...)
			require.NoError(t, eng.Sort(seq))
			once := seq.Clone()

			require.NoError(t, eng.Sort(seq))
			require.True(t, once.Equal(seq))
		})
	}
}

func TestSortNilSequence(t *testing.T) {
	for _, eng := range allEngines(t) {
		t.Run(eng.Name(), func(t *testing.T) {
			require.ErrorIs(t, eng.Sort(nil), quicksort.ErrNilSequence)
		})
	}
}

func TestConstructorValidation(t *testing.T) {
	pool, err := forkjoin.NewPool(2)
	require.NoError(t, err)

	_, err = quicksort.NewBounded[int64](nil)
	require.ErrorIs(t, err, quicksort.ErrNilPool)
	_, err = quicksort.NewUnbounded[int64](nil)
	require.ErrorIs(t, err, quicksort.ErrNilPool)

	_, err = quicksort.NewBounded[int64](pool, quicksort.WithSizeThreshold(0))
	require.ErrorIs(t, err, quicksort.ErrOptionViolation)
	_, err = quicksort.NewBounded[int64](pool, quicksort.WithDepthLimit(-1))
	require.ErrorIs(t, err, quicksort.ErrOptionViolation)
	_, err = quicksort.NewUnbounded[int64](pool, quicksort.WithSizeThreshold(-7))
	require.ErrorIs(t, err, quicksort.ErrOptionViolation)

	// Valid edge values pass.
	_, err = quicksort.NewBounded[int64](pool, quicksort.WithSizeThreshold(1), quicksort.WithDepthLimit(0))
	require.NoError(t, err)
}
