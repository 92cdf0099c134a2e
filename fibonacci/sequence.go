package fibonacci

import (
	"fmt"
	"math"
	"math/big"
)

// Sequence returns F(i) and never fails: i < 0 yields 0 and i > MaxIndex
// saturates at math.MaxUint64. Search code uses it as a monotone generator.
//
// Complexity: O(min(i, MaxIndex)).
func Sequence(i int) uint64 {
	switch {
	case i < 0:
		return 0
	case i > MaxIndex:
		return math.MaxUint64
	}
	return iterate(i)
}

// Big returns the exact F(n) for any n >= 0 by fast doubling:
//
//	F(2k)   = F(k)·(2·F(k+1) − F(k))
//	F(2k+1) = F(k)² + F(k+1)²
//
// Complexity: O(log n) big-integer multiplications.
func Big(n int) (*big.Int, error) {
	if n < 0 {
		return nil, fmt.Errorf("Big: n=%d: %w", n, ErrNegativeIndex)
	}

	// Walk the bits of n from the top; after each step k is the prefix read so far.
	a, b := big.NewInt(0), big.NewInt(1) // F(k), F(k+1) with k = 0
	for bit := highBit(n); bit >= 0; bit-- {
		// Double: k -> 2k. Fresh c and d keep a and b unaliased.
		c := new(big.Int).Lsh(b, 1)
		c.Sub(c, a).Mul(c, a) // F(2k)
		d := new(big.Int).Mul(a, a)
		d.Add(d, new(big.Int).Mul(b, b)) // F(2k+1)
		// Set bit: k -> 2k+1, so shift the pair by one.
		if n>>uint(bit)&1 == 1 {
			a, b = d, c.Add(c, d)
		} else {
			a, b = c, d
		}
	}

	return a, nil
}

// highBit returns the index of the most significant set bit, or -1 for 0.
func highBit(n int) int {
	h := -1
	for n > 0 {
		h++
		n >>= 1
	}
	return h
}
