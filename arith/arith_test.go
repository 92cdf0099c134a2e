package arith_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/algorithms/arith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	assert.Equal(t, 6, arith.GCD(48, 18))
	assert.Equal(t, 6, arith.GCD(-48, 18))
	assert.Equal(t, uint(1), arith.GCD[uint](21, 110))
	assert.Equal(t, 7, arith.GCD(0, 7))
	assert.Equal(t, 0, arith.GCD(0, 0))
}

func TestGCD_MinInt(t *testing.T) {
	assert.Equal(t, int64(2), arith.GCD(int64(math.MinInt64), 6))
	assert.Equal(t, int64(2), arith.GCD(6, int64(math.MinInt64)))
	assert.Equal(t, int64(1<<62), arith.GCD(int64(math.MinInt64), 1<<62))
	assert.Equal(t, int8(4), arith.GCD(int8(math.MinInt8), 12))

	// |MinInt64| does not fit in int64; the minimum comes back unchanged.
	assert.Equal(t, int64(math.MinInt64), arith.GCD(int64(math.MinInt64), 0))
	assert.Equal(t, int64(math.MinInt64), arith.GCD(int64(math.MinInt64), int64(math.MinInt64)))

	g, err := arith.GCDOf(int64(math.MinInt64), 10, -4)
	require.NoError(t, err)
	assert.Equal(t, int64(2), g)
}

func TestGCDOf(t *testing.T) {
	cases := []struct {
		in   []uint64
		want uint64
	}{
		{[]uint64{1, 2, 3, 4, 5}, 1},
		{[]uint64{2, 4, 6, 8, 10}, 2},
		{[]uint64{3, 6, 9, 12, 15}, 3},
		{[]uint64{10}, 10},
		{[]uint64{21, 110}, 1},
	}
	for _, c := range cases {
		got, err := arith.GCDOf(c.in...)
		require.NoError(t, err)
		assert.Equalf(t, c.want, got, "GCDOf(%v)", c.in)
	}

	_, err := arith.GCDOf[int]()
	assert.ErrorIs(t, err, arith.ErrEmpty)
}

func TestFactorial(t *testing.T) {
	for n, want := range map[int]uint64{0: 1, 1: 1, 2: 2, 3: 6, 5: 120, 8: 40320, 10: 3_628_800, 20: 2432902008176640000} {
		got, err := arith.Factorial(n)
		require.NoError(t, err)
		assert.Equalf(t, want, got, "%d!", n)
	}

	_, err := arith.Factorial(-1)
	assert.ErrorIs(t, err, arith.ErrNegative)
	_, err = arith.Factorial(21)
	assert.ErrorIs(t, err, arith.ErrOverflow)

	assert.Equal(t, uint64(720), arith.MustFactorial(6))
	assert.Panics(t, func() { arith.MustFactorial(-3) })
}

func TestIsPerfect(t *testing.T) {
	cases := map[int64]bool{
		-1: false, 0: false, 1: false, 2: false, 3: false, 4: false, 5: false,
		6: true, 7: false, 27: false, 28: true, 496: true, 8128: true,
		33550336: true, 33550337: false,
		120: false, 2096128: false, 8589869056: true, 137438691328: true,
		2305843008139952128: true, 1 << 62: false,
		math.MaxInt64: false, math.MaxInt64 - 1: false,
	}
	for n, want := range cases {
		assert.Equalf(t, want, arith.IsPerfect(n), "IsPerfect(%d)", n)
	}
}

// TestIsPerfect_MatchesDivisorSum compares against a direct sum of proper
// divisors over a small range.
func TestIsPerfect_MatchesDivisorSum(t *testing.T) {
	for n := int64(1); n <= 10000; n++ {
		sum := int64(0)
		for d := int64(1); d < n; d++ {
			if n%d == 0 {
				sum += d
			}
		}
		require.Equalf(t, sum == n, arith.IsPerfect(n), "IsPerfect(%d)", n)
	}
}

func TestPower(t *testing.T) {
	cases := []struct{ base, exp, want int64 }{
		{2, 2, 4}, {2, 3, 8}, {2, 4, 16}, {2, 8, 256}, {2, 16, 65536},
		{3, 5, 243}, {5, 3, 125}, {10, 4, 10000}, {1, 2, 1}, {1, 50, 1},
		{7, 0, 1}, {0, 0, 1}, {-2, 3, -8}, {-1, 1001, -1}, {2, 62, 1 << 62},
	}
	for _, c := range cases {
		got, err := arith.Power(c.base, c.exp)
		require.NoError(t, err)
		assert.Equalf(t, c.want, got, "%d**%d", c.base, c.exp)
	}

	_, err := arith.Power(2, -1)
	assert.ErrorIs(t, err, arith.ErrNegative)
	_, err = arith.Power(2, 63)
	assert.ErrorIs(t, err, arith.ErrOverflow)
	_, err = arith.Power(10, 19)
	assert.ErrorIs(t, err, arith.ErrOverflow)
}

func TestFloorCeil(t *testing.T) {
	cases := []struct {
		x           float64
		floor, ceil int
	}{
		{1.5, 1, 2}, {-1.5, -2, -1}, {3, 3, 3}, {-3, -3, -3},
		{0, 0, 0}, {0.0001, 0, 1}, {-0.0001, -1, 0},
		{math.Pi, 3, 4}, {-math.Pi, -4, -3},
	}
	for _, c := range cases {
		assert.Equalf(t, c.floor, arith.Floor(c.x), "Floor(%v)", c.x)
		assert.Equalf(t, c.ceil, arith.Ceil(c.x), "Ceil(%v)", c.x)
	}
}

func TestAbsExtrema(t *testing.T) {
	v, ok := arith.AbsMax([]int{-3, 2, 1, -10, 10})
	assert.True(t, ok)
	assert.Equal(t, -10, v, "first wins ties")

	v, ok = arith.AbsMin([]int{-3, 2, -1, 1, 5})
	assert.True(t, ok)
	assert.Equal(t, -1, v)

	v8, ok := arith.AbsMax([]int8{127, -128})
	assert.True(t, ok)
	assert.Equal(t, int8(-128), v8)

	_, ok = arith.AbsMax([]int64{})
	assert.False(t, ok)
	_, ok = arith.AbsMin[int32](nil)
	assert.False(t, ok)
}
