package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parsort/dataset"
)

func TestUniformDeterministicPerSeed(t *testing.T) {
	a, err := dataset.NewGenerator(42)
	require.NoError(t, err)
	b, err := dataset.NewGenerator(42)
	require.NoError(t, err)

	seqA, err := a.Uniform(500)
	require.NoError(t, err)
	seqB, err := b.Uniform(500)
	require.NoError(t, err)
	require.True(t, seqA.Equal(seqB))

	// The stream advances: a second draw differs from the first.
	seqC, err := a.Uniform(500)
	require.NoError(t, err)
	require.False(t, seqA.Equal(seqC))
}

func TestZeroSeedDerivesFromClock(t *testing.T) {
	g, err := dataset.NewGenerator(0)
	require.NoError(t, err)
	require.NotZero(t, g.Seed())
}

func TestUniformBounds(t *testing.T) {
	g, err := dataset.NewGenerator(7, dataset.WithMaxValue(5))
	require.NoError(t, err)
	require.EqualValues(t, 5, g.MaxValue())

	seq, err := g.Uniform(2000)
	require.NoError(t, err)
	require.Equal(t, 2000, seq.Len())

	hit := make(map[int64]bool)
	for _, v := range seq.Values() {
		require.GreaterOrEqual(t, v, int64(1))
		require.LessOrEqual(t, v, int64(5))
		hit[v] = true
	}
	// 2000 draws over 5 values: every value should appear.
	require.Len(t, hit, 5)
}

func TestUniformEdgeCounts(t *testing.T) {
	g, err := dataset.NewGenerator(1)
	require.NoError(t, err)

	empty, err := g.Uniform(0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())

	_, err = g.Uniform(-1)
	require.ErrorIs(t, err, dataset.ErrNegativeCount)
}

func TestGeneratorOptionViolation(t *testing.T) {
	_, err := dataset.NewGenerator(1, dataset.WithMaxValue(0))
	require.ErrorIs(t, err, dataset.ErrOptionViolation)

	_, err = dataset.NewGenerator(1, dataset.WithMaxValue(-10))
	require.ErrorIs(t, err, dataset.ErrOptionViolation)
}
