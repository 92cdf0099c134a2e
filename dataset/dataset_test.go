package dataset_test

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/algorithms/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandom_DeterministicAndInRange(t *testing.T) {
	a := dataset.Random(500, dataset.WithSeed(7), dataset.WithRange(-10, 10))
	b := dataset.Random(500, dataset.WithSeed(7), dataset.WithRange(-10, 10))
	require.Len(t, a, 500)
	assert.Equal(t, a, b, "same seed must give same data")
	for _, v := range a {
		assert.GreaterOrEqual(t, v, -10)
		assert.Less(t, v, 10)
	}
}

func TestRandom_SeedZeroIsDefault(t *testing.T) {
	assert.Equal(t, dataset.Random(64), dataset.Random(64, dataset.WithSeed(0)))
	assert.Equal(t, dataset.Random(64, dataset.WithSeed(1)), dataset.Random(64, dataset.WithSeed(0)))
}

func TestRandom_WithRand(t *testing.T) {
	a := dataset.Random(32, dataset.WithRand(rand.New(rand.NewSource(99))))
	b := dataset.Random(32, dataset.WithSeed(99))
	assert.Equal(t, a, b)
}

func TestSortedReversed(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, dataset.Sorted(4))
	assert.Equal(t, []int{3, 2, 1, 0}, dataset.Reversed(4))
	assert.Empty(t, dataset.Sorted(-1))
	assert.NotNil(t, dataset.Reversed(0))
}

func TestFewUnique(t *testing.T) {
	a := dataset.FewUnique(1000, 3, dataset.WithSeed(5), dataset.WithRange(100, 200))
	require.Len(t, a, 1000)
	distinct := map[int]struct{}{}
	for _, v := range a {
		distinct[v] = struct{}{}
		assert.GreaterOrEqual(t, v, 100)
		assert.Less(t, v, 200)
	}
	assert.LessOrEqual(t, len(distinct), 3)

	// k is clamped to the width of the range.
	b := dataset.FewUnique(50, 10, dataset.WithRange(0, 2))
	for _, v := range b {
		assert.Contains(t, []int{0, 1}, v)
	}
}

func TestShuffle_IsPermutation(t *testing.T) {
	a := dataset.Sorted(100)
	dataset.Shuffle(a, rand.New(rand.NewSource(3)))
	assert.NotEqual(t, dataset.Sorted(100), a)
	b := slices.Clone(a)
	slices.Sort(b)
	assert.Equal(t, dataset.Sorted(100), b)

	// nil rng uses the deterministic default.
	x, y := dataset.Sorted(20), dataset.Sorted(20)
	dataset.Shuffle(x, nil)
	dataset.Shuffle(y, nil)
	assert.Equal(t, x, y)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { dataset.WithRand(nil) })
	assert.Panics(t, func() { dataset.WithRange(5, 5) })

	// Widths that overflow int are rejected by the option, not the generator.
	assert.Panics(t, func() { dataset.WithRange(math.MinInt, math.MaxInt) })
	assert.Panics(t, func() { dataset.WithRange(-1, math.MaxInt) })
	assert.Panics(t, func() { dataset.WithRange(math.MinInt, 1) })
	assert.NotPanics(t, func() { dataset.WithRange(0, math.MaxInt) })
	assert.NotPanics(t, func() { dataset.WithRange(math.MinInt, -1) })
}

// TestWideRanges checks generators stay in range on the widest valid ranges
// without allocating proportionally to the width.
func TestWideRanges(t *testing.T) {
	lo, hi := -1<<62, 1<<62-1
	assert.NotPanics(t, func() {
		for _, v := range dataset.Random(64, dataset.WithRange(lo, hi)) {
			assert.GreaterOrEqual(t, v, lo)
			assert.Less(t, v, hi)
		}
	})

	var a []int
	require.NotPanics(t, func() {
		a = dataset.FewUnique(200, 2, dataset.WithSeed(9), dataset.WithRange(lo, hi))
	})
	require.Len(t, a, 200)
	distinct := map[int]struct{}{}
	for _, v := range a {
		distinct[v] = struct{}{}
		assert.GreaterOrEqual(t, v, lo)
		assert.Less(t, v, hi)
	}
	assert.Len(t, distinct, 2)

	b := dataset.FewUnique(100, 5, dataset.WithRange(0, 1<<40))
	require.Len(t, b, 100)
	for _, v := range b {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 1<<40)
	}
}

// TestFewUnique_FullRange checks k equal to the width yields every value.
func TestFewUnique_FullRange(t *testing.T) {
	a := dataset.FewUnique(2000, 10, dataset.WithSeed(3), dataset.WithRange(-5, 5))
	distinct := map[int]struct{}{}
	for _, v := range a {
		distinct[v] = struct{}{}
	}
	assert.Len(t, distinct, 10)
}
