package dataset

import "math/rand"

// Deterministic defaults.
const (
	defaultSeed int64 = 1
	defaultLo         = 0
	defaultHi         = 1000
)

// config aggregates generator knobs after options are applied.
type config struct {
	rng    *rand.Rand
	lo, hi int
}

// newConfig applies opts over the defaults, last wins.
func newConfig(opts ...Option) config {
	cfg := config{lo: defaultLo, hi: defaultHi}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	return cfg
}

// rngFromSeed returns a deterministic *rand.Rand; seed 0 means defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// width is hi-lo, positive by WithRange's validation.
func (c *config) width() int {
	return c.hi - c.lo
}

// draw returns one value in [c.lo, c.hi).
func (c *config) draw() int {
	return c.lo + c.rng.Intn(c.width())
}

// distinct returns k distinct values from [c.lo, c.hi), 1 <= k <= width.
//
// Narrow ranges (width <= 2k) take a prefix of a permutation, wide ranges
// sample with rejection; either way memory is O(k), never O(width).
func (c *config) distinct(k int) []int {
	w := c.width()
	if w <= 2*k {
		pool := c.rng.Perm(w)[:k]
		for i := range pool {
			pool[i] += c.lo
		}
		return pool
	}

	// At most half the range is taken, so each draw is fresh with p >= 1/2.
	pool := make([]int, 0, k)
	seen := make(map[int]struct{}, k)
	for len(pool) < k {
		v := c.draw()
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		pool = append(pool, v)
	}
	return pool
}
