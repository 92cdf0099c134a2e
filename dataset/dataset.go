package dataset

import "math/rand"

// Random returns n values drawn uniformly from the configured range
// (default [0, 1000)). n <= 0 yields an empty, non-nil slice.
//
// Complexity: O(n).
func Random(n int, opts ...Option) []int {
	cfg := newConfig(opts...)
	out := make([]int, max(n, 0))
	for i := range out {
		out[i] = cfg.draw()
	}
	return out
}

// Sorted returns 0, 1, …, n-1.
func Sorted(n int) []int {
	out := make([]int, max(n, 0))
	for i := range out {
		out[i] = i
	}
	return out
}

// Reversed returns n-1, …, 1, 0.
func Reversed(n int) []int {
	out := make([]int, max(n, 0))
	for i := range out {
		out[i] = len(out) - 1 - i
	}
	return out
}

// FewUnique returns n values, each one of k distinct values taken from the
// configured range. k is clamped to [1, hi-lo].
//
// Complexity: O(n + k) expected time, O(n + k) space for any range width.
func FewUnique(n, k int, opts ...Option) []int {
	cfg := newConfig(opts...)
	k = min(max(k, 1), cfg.width())

	// k distinct pool values, then n picks from the pool.
	pool := cfg.distinct(k)

	out := make([]int, max(n, 0))
	for i := range out {
		out[i] = pool[cfg.rng.Intn(k)]
	}
	return out
}

// Shuffle permutes a in place (Fisher–Yates). A nil rng uses the default
// deterministic stream.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](a []T, rng *rand.Rand) {
	if len(a) <= 1 {
		return
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
