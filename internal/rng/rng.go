// Package rng provides the pluggable uniform-randomness source used
// throughout the xcs package. The engine never reaches for the global
// math/rand functions directly — every draw goes through a Source.
package rng

import "math/rand"

// Source is the uniform sampler the engine depends on. It is deliberately
// narrow: just enough to express real-interval draws, integer draws and
// Bernoulli trials, mirroring utils.hpp's random_number/random_uint/random_choice.
type Source interface {
	// Float64Range returns a uniform draw from [min, max).
	Float64Range(min, max float64) float64
	// IntnRange returns a uniform draw from [min, max] (inclusive).
	IntnRange(min, max int) int
	// Bool returns true with probability probTrue.
	Bool(probTrue float64) bool
}

// Default wraps *rand.Rand to satisfy Source. It is not safe for
// concurrent use, matching the engine's single-threaded contract.
type Default struct {
	r *rand.Rand
}

// New returns a Default source seeded deterministically from seed.
// Callers wanting process-global entropy should seed from time.Now().UnixNano().
func New(seed int64) *Default {
	return &Default{r: rand.New(rand.NewSource(seed))}
}

func (d *Default) Float64Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + d.r.Float64()*(max-min)
}

func (d *Default) IntnRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + d.r.Intn(max-min+1)
}

func (d *Default) Bool(probTrue float64) bool {
	return d.Float64Range(0, 1) < probTrue
}
