// Package dataset implements Generator construction and dataset draws.
package dataset

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/parsort/sequence"
)

// NewGenerator returns a Generator over an owned random source.
//
//	seed != 0: used verbatim — identical seeds replay identical datasets.
//	seed == 0: derived from the wall clock once, here; Seed() reports it.
//
// Returns ErrOptionViolation for invalid options.
func NewGenerator(seed int64, opts ...Option) (*Generator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		seed:     seed,
		maxValue: o.MaxValue,
	}, nil
}

// Seed reports the effective seed, for logging and replay.
func (g *Generator) Seed() int64 { return g.seed }

// MaxValue reports the inclusive upper bound of generated values.
func (g *Generator) MaxValue() int64 { return g.maxValue }

// Uniform draws a fresh sequence of n values uniform in [1, MaxValue].
// Successive calls advance the generator's stream, so every trial gets
// independent data while the whole run stays replayable from one seed.
// Returns ErrNegativeCount when n < 0.
// Complexity: O(n)
func (g *Generator) Uniform(n int) (*sequence.Sequence[int64], error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	data := make([]int64, n)
	for i := range data {
		data[i] = 1 + g.rng.Int63n(g.maxValue)
	}

	return sequence.Wrap(data), nil
}
