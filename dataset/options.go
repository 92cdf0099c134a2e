// SPDX-License-Identifier: MIT
// Package: algorithms/dataset
//
// options.go: functional options for the generators.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • Determinism is explicit: seeding via WithSeed or WithRand.

package dataset

import "math/rand"

// Option customizes a generator call.
type Option func(*config)

// WithSeed seeds a fresh RNG. Seed 0 selects defaultSeed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand uses r for all draws. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("dataset: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithRange draws values from the half-open interval [lo, hi).
// Panics if hi <= lo, or if the width hi-lo does not fit in an int.
func WithRange(lo, hi int) Option {
	if hi <= lo {
		panic("dataset: WithRange(hi<=lo)")
	}
	if hi-lo <= 0 {
		panic("dataset: WithRange width overflows int")
	}
	return func(c *config) {
		c.lo, c.hi = lo, hi
	}
}
