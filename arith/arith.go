// SPDX-License-Identifier: MIT

package arith

import (
	"fmt"
	"math"
	"math/bits"
)

// Integer is any built-in integer type.
type Integer interface {
	Signed | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Signed is any built-in signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// maxFactorial is the largest n with n! <= math.MaxUint64.
const maxFactorial = 20

// GCD returns the greatest common divisor of |a| and |b| by Euclid's
// algorithm. GCD(0, 0) is 0.
//
// Euclid runs on the signed operands and the sign is dropped at the end, so
// a minimum signed operand is exact: GCD(math.MinInt64, 6) == 2. The only
// unrepresentable result is |MinInt| itself. GCD(math.MinInt64, 0) and
// GCD(math.MinInt64, math.MinInt64) return math.MinInt64.
//
// Complexity: O(log min(|a|, |b|)).
func GCD[T Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return absInt(a)
}

// GCDOf folds GCD over nums. It returns ErrEmpty for no arguments.
func GCDOf[T Integer](nums ...T) (T, error) {
	if len(nums) == 0 {
		return 0, ErrEmpty
	}
	g := absInt(nums[0])
	for _, v := range nums[1:] {
		g = GCD(g, v)
	}
	return g, nil
}

func absInt[T Integer](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Factorial returns n!.
//
// Errors:
//   - ErrNegative if n < 0.
//   - ErrOverflow if n > 20.
func Factorial(n int) (uint64, error) {
	switch {
	case n < 0:
		return 0, fmt.Errorf("Factorial(%d): %w", n, ErrNegative)
	case n > maxFactorial:
		return 0, fmt.Errorf("Factorial(%d): %w", n, ErrOverflow)
	}
	f := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		f *= i
	}
	return f, nil
}

// MustFactorial is Factorial that panics on error.
func MustFactorial(n int) uint64 {
	f, err := Factorial(n)
	if err != nil {
		panic(err)
	}
	return f
}

// IsPerfect reports whether n equals the sum of its proper divisors.
// Non-positive n is never perfect.
//
// The test uses the Euclid–Euler theorem: an even n is perfect exactly when
// n = 2^k·(2^(k+1)-1) with 2^(k+1)-1 prime. Odd perfect numbers are known not
// to exist below 10^1500, so every odd int64 is rejected.
//
// Complexity: O(n^¼), the trial division of the odd part.
func IsPerfect(n int64) bool {
	if n < 2 || n%2 != 0 {
		return false
	}
	k := bits.TrailingZeros64(uint64(n))
	odd := n >> k
	// 2^(k+1)-1 must fit in int64.
	if k+1 >= 63 || odd != int64(1)<<(k+1)-1 {
		return false
	}
	return isPrime(odd)
}

// isPrime is trial division by 2 and odd d up to √m.
func isPrime(m int64) bool {
	if m < 2 {
		return false
	}
	if m%2 == 0 {
		return m == 2
	}
	// d <= m/d is d*d <= m without overflow.
	for d := int64(3); d <= m/d; d += 2 {
		if m%d == 0 {
			return false
		}
	}
	return true
}

// Power returns base**exp by binary exponentiation.
//
// Errors:
//   - ErrNegative if exp < 0.
//   - ErrOverflow if the result does not fit in int64.
func Power(base, exp int64) (int64, error) {
	if exp < 0 {
		return 0, fmt.Errorf("Power(%d, %d): %w", base, exp, ErrNegative)
	}
	result := int64(1)
	for {
		if exp&1 == 1 {
			r, ok := mulInt64(result, base)
			if !ok {
				return 0, fmt.Errorf("Power: %w", ErrOverflow)
			}
			result = r
		}
		exp >>= 1
		if exp == 0 {
			return result, nil
		}
		b, ok := mulInt64(base, base)
		if !ok {
			return 0, fmt.Errorf("Power: %w", ErrOverflow)
		}
		base = b
	}
}

// mulInt64 returns a*b and whether it did not overflow.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || c/b != a {
		return c, false
	}
	return c, true
}

// Floor returns the greatest integer <= x. x must lie within the int range.
func Floor(x float64) int {
	return int(math.Floor(x))
}

// Ceil returns the least integer >= x. x must lie within the int range.
func Ceil(x float64) int {
	return int(math.Ceil(x))
}

// AbsMax returns the element of a with the largest absolute value; the
// first one wins ties. ok is false for an empty slice.
func AbsMax[T Signed](a []T) (v T, ok bool) {
	return absPick(a, func(x, best uint64) bool { return x > best })
}

// AbsMin returns the element of a with the smallest absolute value; the
// first one wins ties. ok is false for an empty slice.
func AbsMin[T Signed](a []T) (v T, ok bool) {
	return absPick(a, func(x, best uint64) bool { return x < best })
}

func absPick[T Signed](a []T, better func(x, best uint64) bool) (T, bool) {
	if len(a) == 0 {
		return 0, false
	}
	best := a[0]
	for _, v := range a[1:] {
		if better(magnitude(v), magnitude(best)) {
			best = v
		}
	}
	return best, true
}

// magnitude returns |v| as uint64, exact for the minimum signed value.
func magnitude[T Signed](v T) uint64 {
	if v < 0 {
		return uint64(-(int64(v) + 1)) + 1
	}
	return uint64(v)
}
