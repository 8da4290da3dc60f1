package core

import "math/rand/v2"

// RNG provides deterministically seeded randomness for seeding policies.
// Identical seeds reproduce identical initial states.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG from the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int { return r.r.IntN(n) }

// Float64 returns a random float64 in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Source exposes the underlying rand.Rand.
func (r *RNG) Source() *rand.Rand { return r.r }
