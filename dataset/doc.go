// Package dataset generates deterministic integer inputs for tests,
// benchmarks and the algos CLI.
//
// 🚀 Generators:
//
//   - Random(n): n draws from [lo, hi).
//   - Sorted(n): 0, 1, …, n-1.
//   - Reversed(n): n-1, …, 1, 0.
//   - FewUnique(n, k): n draws from k distinct values (stress for quicksort).
//   - Shuffle(a, rng): in-place Fisher–Yates.
//
// ⚙️ Options (functional, validated at construction):
//
//	dataset.Random(1000, dataset.WithSeed(42), dataset.WithRange(-50, 50))
//
// Determinism:
//
//   - Seed policy: seed == 0 means the default seed 1. No time-based sources.
//   - A *rand.Rand passed through WithRand is consumed, not copied.
//     math/rand.Rand is not goroutine-safe; give each goroutine its own.
package dataset
