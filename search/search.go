package search

import (
	"cmp"
	"math"

	"github.com/katalvlaran/algorithms/fibonacci"
)

// Binary returns the leftmost index of target in sorted a.
//
// Complexity: O(log n).
func Binary[T cmp.Ordered](a []T, target T) (int, bool) {
	return binaryIn(a, target, 0, len(a))
}

// binaryIn searches the half-open window a[lo:hi] for the leftmost target.
func binaryIn[T cmp.Ordered](a []T, target T, lo, hi int) (int, bool) {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if a[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(a) && a[lo] == target {
		return lo, true
	}
	return -1, false
}

// Linear scans a front to back.
func Linear[T comparable](a []T, target T) (int, bool) {
	for i, v := range a {
		if v == target {
			return i, true
		}
	}
	return -1, false
}

// Jump skips ahead in blocks of ⌊√n⌋ until a block may hold target, then
// scans that block.
//
// Complexity: O(√n).
func Jump[T cmp.Ordered](a []T, target T) (int, bool) {
	n := len(a)
	if n == 0 {
		return -1, false
	}
	step := max(int(math.Sqrt(float64(n))), 1)

	// Find the first block whose last element is >= target
	prev, end := 0, step
	for a[min(end, n)-1] < target {
		prev = end
		if prev >= n {
			return -1, false
		}
		end += step
	}

	// Linear scan inside that block
	for i := prev; i < min(end, n); i++ {
		if a[i] == target {
			return i, true
		}
		if a[i] > target {
			break
		}
	}
	return -1, false
}

// Exponential doubles a bound from index 1 until a[bound] >= target, then
// binary-searches [bound/2, bound].
//
// Complexity: O(log i) where i is the index of target.
func Exponential[T cmp.Ordered](a []T, target T) (int, bool) {
	n := len(a)
	if n == 0 {
		return -1, false
	}
	if a[0] >= target {
		if a[0] == target {
			return 0, true
		}
		return -1, false
	}
	bound := 1
	for bound < n && a[bound] < target {
		bound *= 2
	}
	return binaryIn(a, target, bound/2, min(bound+1, n))
}

// Struzik is Exponential under the name of its first description
// (Struzik, 1983).
func Struzik[T cmp.Ordered](a []T, target T) (int, bool) {
	return Exponential(a, target)
}

// Ternary narrows [lo, hi] to one of three parts per round.
//
// Complexity: O(log₃ n) rounds of two probes each.
func Ternary[T cmp.Ordered](a []T, target T) (int, bool) {
	lo, hi := 0, len(a)-1
	for lo <= hi {
		third := (hi - lo) / 3
		m1, m2 := lo+third, hi-third
		switch {
		case a[m1] == target:
			return m1, true
		case a[m2] == target:
			return m2, true
		case target < a[m1]:
			hi = m1 - 1
		case target > a[m2]:
			lo = m2 + 1
		default:
			lo, hi = m1+1, m2-1
		}
	}
	return -1, false
}

// Fibonacci splits the range at Fibonacci offsets taken from
// fibonacci.Sequence.
//
// With F(k) the smallest Fibonacci number >= n (k >= 2), each round probes
// offset+F(k-2): a smaller probe drops k by 1 and advances offset, a larger
// one drops k by 2.
//
// Each round shrinks the range by a factor of about φ.
//
// Complexity: O(log n).
func Fibonacci[T cmp.Ordered](a []T, target T) (int, bool) {
	n := len(a)
	if n == 0 {
		return -1, false
	}

	// Smallest F(k) >= n; F(k-1) and F(k-2) are the two split sizes.
	k := 2
	for fibonacci.Sequence(k) < uint64(n) {
		k++
	}

	// offset is the last index known to hold a value < target.
	offset := -1
	for fibonacci.Sequence(k) > 1 {
		// Probe F(k-2) past offset, clamped to the last index.
		i := min(offset+int(fibonacci.Sequence(k-2)), n-1)
		switch {
		case a[i] < target:
			// Keep the right part of size F(k-1).
			k--
			offset = i
		case a[i] > target:
			// Keep the left part of size F(k-2).
			k -= 2
		default:
			return i, true
		}
	}

	// One candidate may remain just past offset.
	if fibonacci.Sequence(k-1) == 1 && offset+1 < n && a[offset+1] == target {
		return offset + 1, true
	}
	return -1, false
}
