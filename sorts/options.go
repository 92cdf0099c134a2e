// SPDX-License-Identifier: MIT
// Package: algorithms/sorts
//
// options.go: functional options for the randomized sorts.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Seed policy: seed == 0 means defaultSeed; never time-based.

package sorts

import "math/rand"

const defaultSeed int64 = 1

// BogoOption customizes Bogo.
type BogoOption func(*bogoConfig)

type bogoConfig struct {
	rng         *rand.Rand
	maxShuffles int // 0 = unlimited
}

// WithSeed seeds a fresh RNG. Seed 0 selects the default seed.
func WithSeed(seed int64) BogoOption {
	return func(c *bogoConfig) {
		if seed == 0 {
			seed = defaultSeed
		}
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand shuffles with r. Panics on nil.
func WithRand(r *rand.Rand) BogoOption {
	if r == nil {
		panic("sorts: WithRand(nil)")
	}
	return func(c *bogoConfig) {
		c.rng = r
	}
}

// WithMaxShuffles bounds the number of shuffles. Panics if n <= 0.
func WithMaxShuffles(n int) BogoOption {
	if n <= 0 {
		panic("sorts: WithMaxShuffles(n<=0)")
	}
	return func(c *bogoConfig) {
		c.maxShuffles = n
	}
}

func newBogoConfig(opts ...BogoOption) bogoConfig {
	var cfg bogoConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return cfg
}
