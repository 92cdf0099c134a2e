// SPDX-License-Identifier: MIT

package fibonacci

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algorithms/memo"
)

const (
	// MaxIndex is the largest n whose F(n) fits in uint64:
	// F(93) = 12200160415121876738.
	MaxIndex = 93

	// AnalyticSafeMax is the largest n for which Analytic is exact in float64.
	AnalyticSafeMax = 70
)

var (
	sqrt5 = math.Sqrt(5)
	phi   = (1 + sqrt5) / 2
	psi   = (1 - sqrt5) / 2 // -1/φ
)

// checkIndex validates n for the named strategy.
func checkIndex(method string, n int) error {
	if n < 0 {
		return fmt.Errorf("%s: n=%d: %w", method, n, ErrNegativeIndex)
	}
	if n > MaxIndex {
		return fmt.Errorf("%s: n=%d: %w", method, n, ErrIndexOutOfRange)
	}
	return nil
}

// Recursive returns F(n) by naive recursion.
//
// Complexity: O(φⁿ) time, O(n) stack.
func Recursive(n int) (uint64, error) {
	if err := checkIndex("Recursive", n); err != nil {
		return 0, err
	}
	return recursive(n), nil
}

func recursive(n int) uint64 {
	if n < 2 {
		return uint64(n)
	}
	return recursive(n-1) + recursive(n-2)
}

// Iterative returns F(n) by a forward sweep. It is the reference strategy.
//
// Complexity: O(n) time, O(1) space.
func Iterative(n int) (uint64, error) {
	if err := checkIndex("Iterative", n); err != nil {
		return 0, err
	}
	return iterate(n), nil
}

// iterate assumes 0 <= n <= MaxIndex.
func iterate(n int) uint64 {
	var a, b uint64 = 0, 1
	for i := 0; i < n; i++ {
		a, b = b, a+b
	}
	return a
}

// Memoized returns F(n) through memo.Memoize with a fresh cache per call.
//
// Complexity: O(n) time, O(n) space.
func Memoized(n int) (uint64, error) {
	v, _, err := MemoizedCache(n)
	return v, err
}

// MemoizedCache is Memoized that also hands back the cache it filled, which
// holds exactly the keys 0..n on success.
func MemoizedCache(n int) (uint64, memo.Cache[int, uint64], error) {
	if err := checkIndex("Memoized", n); err != nil {
		return 0, nil, err
	}
	c := memo.NewCache[int, uint64]()
	v, err := memo.Memoize(c, fibStep, n)
	if err != nil {
		return 0, nil, err
	}
	return v, c, nil
}

// fibStep is the recursive relation, resolving both sub-indices through c.
// The n-1 branch fills every key below n, so the n-2 lookup is always a hit
// and each key is computed once.
func fibStep(c memo.Cache[int, uint64], n int) (uint64, error) {
	// Base cases F(0)=0, F(1)=1
	if n < 2 {
		return uint64(n), nil
	}
	a, err := memo.Memoize(c, fibStep, n-1)
	if err != nil {
		return 0, err
	}
	b, err := memo.Memoize(c, fibStep, n-2)
	if err != nil {
		return 0, err
	}
	return a + b, nil
}

// Analytic returns round((φⁿ − ψⁿ)/√5) with ψ = −1/φ, in float64.
//
// The result is exact for n <= AnalyticSafeMax. For AnalyticSafeMax < n <=
// MaxIndex it is the nearest representable approximation and may differ from
// F(n) in the low digits; no error is reported for that drift.
//
// Complexity: O(1).
func Analytic(n int) (uint64, error) {
	if err := checkIndex("Analytic", n); err != nil {
		return 0, err
	}
	fn := float64(n)
	// |ψⁿ| < 1/2 for n >= 0, so rounding removes it up to float error.
	return uint64(math.Round((math.Pow(phi, fn) - math.Pow(psi, fn)) / sqrt5)), nil
}
