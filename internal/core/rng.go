package core

import (
	"math"
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2. Interactive runs use
// NewUnseededRNG; tests inject NewRNG with a fixed seed for reproducibility.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewUnseededRNG creates an RNG seeded from the wall clock. Runs started this
// way are intentionally not reproducible.
func NewUnseededRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Float64 returns a random value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Angle returns a random angle in [0, 2π).
func (r *RNG) Angle() float64 { return r.r.Float64() * 2 * math.Pi }

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
