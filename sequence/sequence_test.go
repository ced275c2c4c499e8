package sequence_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/parsort/sequence"
)

func TestNew(t *testing.T) {
	s, err := sequence.New[int64](4)
	require.NoError(t, err)
	require.Equal(t, 4, s.Len())
	for i := 0; i < 4; i++ {
		v, err := s.At(i)
		require.NoError(t, err)
		require.Equal(t, int64(0), v)
	}

	empty, err := sequence.New[int64](0)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())

	_, err = sequence.New[int64](-1)
	require.ErrorIs(t, err, sequence.ErrNegativeLength)
}

func TestFromValuesCopies(t *testing.T) {
	src := []int64{3, 1, 2}
	s := sequence.FromValues(src...)
	require.Equal(t, 3, s.Len())

	// Mutating the source must not affect the sequence.
	src[0] = 99
	v, err := s.At(0)
	require.NoError(t, err)
	require.Equal(t, int64(3), v)
}

func TestWrapAdopts(t *testing.T) {
	src := []int64{5, 4}
	s := sequence.Wrap(src)

	// Wrap is a move: the sequence sees the same backing array.
	require.NoError(t, s.Set(0, 7))
	require.Equal(t, int64(7), src[0])
}

func TestAtSetBounds(t *testing.T) {
	s := sequence.FromValues[int64](1, 2, 3)

	tests := []struct {
		name string
		idx  int
	}{
		{name: "negative", idx: -1},
		{name: "at length", idx: 3},
		{name: "far beyond", idx: 42},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.At(tc.idx)
			require.ErrorIs(t, err, sequence.ErrIndexOutOfRange)
			require.ErrorIs(t, s.Set(tc.idx, 0), sequence.ErrIndexOutOfRange)
		})
	}
}

func TestCloneIndependence(t *testing.T) {
	orig := sequence.FromValues[int64](9, 8, 7)
	dup := orig.Clone()
	require.True(t, orig.Equal(dup))

	require.NoError(t, dup.Set(0, 1))
	v, err := orig.At(0)
	require.NoError(t, err)
	require.Equal(t, int64(9), v)

	var nilSeq *sequence.Sequence[int64]
	require.Nil(t, nilSeq.Clone())
}

func TestTakeMovesOwnership(t *testing.T) {
	s := sequence.FromValues[int64](1, 2, 3)
	data := s.Take()
	require.Equal(t, []int64{1, 2, 3}, data)
	require.Equal(t, 0, s.Len())
	require.Nil(t, s.Take())
}

func TestEqualAndMismatch(t *testing.T) {
	a := sequence.FromValues[int64](1, 2, 3)
	b := sequence.FromValues[int64](1, 2, 3)
	require.True(t, a.Equal(b))

	_, diverged := a.Mismatch(b)
	require.False(t, diverged)

	require.NoError(t, b.Set(1, 5))
	idx, diverged := a.Mismatch(b)
	require.True(t, diverged)
	require.Equal(t, 1, idx)
	require.False(t, a.Equal(b))

	// Strict prefix diverges at the shorter length.
	prefix := sequence.FromValues[int64](1, 2)
	idx, diverged = a.Mismatch(prefix)
	require.True(t, diverged)
	require.Equal(t, 2, idx)

	// nil compares as empty.
	var nilSeq *sequence.Sequence[int64]
	require.True(t, nilSeq.Equal(sequence.FromValues[int64]()))
}

func TestIsSorted(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		want   bool
	}{
		{name: "empty", values: nil, want: true},
		{name: "single", values: []int64{7}, want: true},
		{name: "ascending", values: []int64{1, 2, 3}, want: true},
		{name: "equal run", values: []int64{2, 2, 2, 2}, want: true},
		{name: "descending", values: []int64{3, 2, 1}, want: false},
		{name: "dip in middle", values: []int64{1, 5, 4, 9}, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, sequence.FromValues(tc.values...).IsSorted())
		})
	}
}

func TestErrorsAreSentinels(t *testing.T) {
	_, err := sequence.New[int64](-3)
	require.True(t, errors.Is(err, sequence.ErrNegativeLength))

	s := sequence.FromValues[int64](1)
	_, err = s.At(10)
	require.True(t, errors.Is(err, sequence.ErrIndexOutOfRange))
	require.Contains(t, err.Error(), "index 10")
}

func TestString(t *testing.T) {
	require.Equal(t, "[1 2 3]", sequence.FromValues[int64](1, 2, 3).String())
	require.Equal(t, "[]", sequence.FromValues[int64]().String())
}
