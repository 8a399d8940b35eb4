// Package rng provides the seeded randomness source shared by the
// minigame and quest engines.
package rng

import (
	"math/rand"
)

// RNG wraps a rand.Rand so every subsystem draws from one seedable stream.
type RNG struct {
	r *rand.Rand
}

// New creates an RNG from the given seed.
func New(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform int in [0, n).
func (g *RNG) Intn(n int) int {
	return g.r.Intn(n)
}

// IntBetween returns a uniform int in [min, max] inclusive.
func (g *RNG) IntBetween(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.r.Intn(max-min+1)
}

// Float64 returns a uniform float in [0, 1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// FloatBetween returns a uniform float in [min, max).
func (g *RNG) FloatBetween(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + g.r.Float64()*(max-min)
}

// Chance rolls a percentage check: true with the given probability (0-100).
func (g *RNG) Chance(percent int) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return g.r.Intn(100)+1 <= percent
}

// WeightedIndex picks an index from a slice of relative weights using a
// cumulative table and a single uniform draw. Entries with non-positive
// weight are never selected. Returns -1 if no entry is selectable.
func (g *RNG) WeightedIndex(weights []float64) int {
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	draw := g.r.Float64() * total
	var cum float64
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cum += w
		if draw < cum {
			return i
		}
	}

	// Float accumulation can land exactly on total; fall back to the
	// last selectable entry.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}
