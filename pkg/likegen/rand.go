package likegen

import "math/rand/v2"

// Rand is the random source used by every generation step.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform int in [0, n). n must be > 0.
	IntN(n int) int
}

// NewRand returns a PCG-backed source seeded with seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// IntRange returns a uniform int in [lo, hi] inclusive.
// hi-lo+1 must fit in an int; Bounds.Validate enforces this.
func IntRange(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}
