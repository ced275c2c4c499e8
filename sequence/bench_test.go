package sequence_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/parsort/sequence"
)

// benchSequence builds a deterministic pseudo-random sequence of length n.
func benchSequence(n int) *sequence.Sequence[int64] {
	rng := rand.New(rand.NewSource(42))
	data := make([]int64, n)
	for i := range data {
		data[i] = rng.Int63n(1_000_000)
	}

	return sequence.Wrap(data)
}

func benchmarkClone(b *testing.B, n int) {
	src := benchSequence(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = src.Clone()
	}
}

func benchmarkEqual(b *testing.B, n int) {
	src := benchSequence(n)
	dup := src.Clone()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = src.Equal(dup)
	}
}

func BenchmarkClone_1e4(b *testing.B) { benchmarkClone(b, 10_000) }
func BenchmarkClone_1e6(b *testing.B) { benchmarkClone(b, 1_000_000) }
func BenchmarkEqual_1e4(b *testing.B) { benchmarkEqual(b, 10_000) }
func BenchmarkEqual_1e6(b *testing.B) { benchmarkEqual(b, 1_000_000) }
