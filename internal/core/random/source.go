// Package random provides the seedable random source threaded through the
// auction and the stochastic controllers.
package random

import "math/rand/v2"

// Source is the subset of *rand.Rand the simulation draws from.
type Source interface {
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
	// NormFloat64 returns a standard normal sample.
	NormFloat64() float64
}

// New returns a deterministic PCG-backed generator for seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Uniform draws from [lo, hi).
func Uniform(src Source, lo, hi float64) float64 {
	return lo + (hi-lo)*src.Float64()
}

// Normal draws from N(mean, std).
func Normal(src Source, mean, std float64) float64 {
	return mean + std*src.NormFloat64()
}

// Bernoulli returns true with probability p. p outside [0, 1] is clamped.
func Bernoulli(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Float64() < p
}
