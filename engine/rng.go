package engine

import "math/rand"

// countingSource counts the values drawn from the wrapped source so that a
// restored RNG can be advanced to exactly the same point.
type countingSource struct {
	src   rand.Source
	draws int64
}

func (c *countingSource) Int63() int64 {
	c.draws++
	return c.src.Int63()
}

func (c *countingSource) Seed(seed int64) {
	c.draws = 0
	c.src.Seed(seed)
}

// RNG wraps math/rand.Rand with deterministic position tracking.
// It is the randomness source for status-effect rolls and satisfies
// state.Picker.
type RNG struct {
	seed int64
	cs   *countingSource
	src  *rand.Rand
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	cs := &countingSource{src: rand.NewSource(seed)}
	return &RNG{
		seed: seed,
		cs:   cs,
		src:  rand.New(cs),
	}
}

// Pick returns a uniformly chosen index in [0, n).
func (r *RNG) Pick(n int) int {
	return r.src.Intn(n)
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of values drawn since creation.
func (r *RNG) Position() int64 {
	return r.cs.draws
}

// RestoreRNG creates an RNG and advances it to the given position.
// This reproduces the exact RNG state for save/load.
func RestoreRNG(seed int64, position int64) *RNG {
	rng := NewRNG(seed)
	for i := int64(0); i < position; i++ {
		rng.cs.Int63()
	}
	return rng
}
