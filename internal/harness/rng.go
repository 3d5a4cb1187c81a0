package harness

import (
	rng "github.com/leesper/go_rng"
)

// RNG is the source of randomness for trial data.
type RNG interface {
	// Int64n returns a value in [0, n). n must be positive.
	Int64n(n int64) int64
}

type uniformRNG struct {
	gen *rng.UniformGenerator
}

// NewRNG returns a uniform generator seeded with seed.
func NewRNG(seed int64) RNG {
	return &uniformRNG{gen: rng.NewUniformGenerator(seed)}
}

func (r *uniformRNG) Int64n(n int64) int64 {
	return r.gen.Int64n(n)
}
