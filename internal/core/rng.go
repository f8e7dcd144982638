package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// FillDensity sets each live cell of g alive with probability density.
// Border padding is left untouched.
func FillDensity(r *RNG, g *Grid, density float64) {
	side := g.Side()
	for y := 1; y <= side; y++ {
		for x := 1; x <= side; x++ {
			g.Put(x, y, r.Chance(density))
		}
	}
}
