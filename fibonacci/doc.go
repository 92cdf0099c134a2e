// Package fibonacci computes the nth Fibonacci number with four independent
// strategies that trade time, space and precision against each other.
//
// 🚀 Indexing convention (used by every strategy):
//
//	F(0) = 0, F(1) = 1, F(2) = 1, F(n) = F(n-1) + F(n-2).
//
// ✨ Strategies:
//
//   - Recursive: direct self-referential recursion, no caching. O(φⁿ) time.
//     Pedagogical baseline; impractical beyond roughly n = 40.
//   - Iterative: single forward sweep over the two previous terms.
//     O(n) time, O(1) space. The reference result every other strategy
//     is checked against.
//   - Memoized: recursion threaded through memo.Memoize with a fresh,
//     caller-scoped cache per top-level call. O(n) time and space.
//   - Analytic: Binet's closed form in float64, rounded. O(1).
//     Exact up to AnalyticSafeMax (70); from 71 to MaxIndex the result
//     silently drifts from the true integer. The drift is an accepted
//     property of double precision, not an error.
//
// ⚙️ Extras:
//
//   - Sequence(i): non-failing uint64 generator (saturating), consumed by
//     search.Fibonacci.
//   - Big(n): exact *big.Int via fast doubling, for any n ≥ 0.
//   - Strategies / ByName: named strategy table for CLIs and tests.
//   - NewShared: concurrency-safe memo built on memo.Shared.
//
// Errors:
//
//   - ErrNegativeIndex: n < 0.
//   - ErrIndexOutOfRange: n > MaxIndex (F(94) overflows uint64).
//
// Both are wrapped with the calling strategy's name; match with errors.Is.
package fibonacci
