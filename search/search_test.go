package search_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/algorithms/dataset"
	"github.com/katalvlaran/algorithms/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intSearch func([]int, int) (int, bool)

// sortedSearches lists every search that requires sorted input.
var sortedSearches = map[string]intSearch{
	"Binary":      search.Binary[int],
	"Jump":        search.Jump[int],
	"Exponential": search.Exponential[int],
	"Struzik":     search.Struzik[int],
	"Ternary":     search.Ternary[int],
	"Fibonacci":   search.Fibonacci[int],
	"Linear":      search.Linear[int],
}

// TestOneToTen pins every element of 1..10 and both out-of-range misses.
func TestOneToTen(t *testing.T) {
	arr := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	for name, fn := range sortedSearches {
		for i, v := range arr {
			idx, ok := fn(arr, v)
			assert.Truef(t, ok, "%s(%d)", name, v)
			assert.Equalf(t, i, idx, "%s(%d)", name, v)
		}
		for _, miss := range []int{0, 11} {
			idx, ok := fn(arr, miss)
			assert.Falsef(t, ok, "%s(%d)", name, miss)
			assert.Equal(t, -1, idx)
		}
	}
}

// TestEmptyAndSingle covers the degenerate inputs.
func TestEmptyAndSingle(t *testing.T) {
	for name, fn := range sortedSearches {
		idx, ok := fn(nil, 3)
		assert.Falsef(t, ok, "%s(nil)", name)
		assert.Equal(t, -1, idx)

		idx, ok = fn([]int{3}, 3)
		assert.Truef(t, ok, "%s([3])", name)
		assert.Equal(t, 0, idx)

		_, ok = fn([]int{3}, 4)
		assert.Falsef(t, ok, "%s([3],4)", name)
	}
}

// TestAgreesWithMembership checks every search against a map on random data
// with duplicates.
func TestAgreesWithMembership(t *testing.T) {
	for _, n := range []int{2, 7, 64, 333} {
		a := dataset.Random(n, dataset.WithSeed(int64(n)), dataset.WithRange(0, n))
		slices.Sort(a)
		for target := -1; target <= n; target++ {
			want := slices.Contains(a, target)
			for name, fn := range sortedSearches {
				idx, ok := fn(a, target)
				require.Equalf(t, want, ok, "%s n=%d target=%d", name, n, target)
				if ok {
					require.Equal(t, target, a[idx])
				} else {
					require.Equal(t, -1, idx)
				}
			}
		}
	}
}

// TestLeftmost checks Binary and Exponential return the first duplicate.
func TestLeftmost(t *testing.T) {
	a := []int{1, 2, 2, 2, 2, 3, 3, 9}
	idx, ok := search.Binary(a, 2)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	idx, ok = search.Exponential(a, 3)
	assert.True(t, ok)
	assert.Equal(t, 5, idx)
}

// TestStringsAndFloats exercises other ordered element types.
func TestStringsAndFloats(t *testing.T) {
	words := []string{"ant", "bee", "cat", "dog", "eel"}
	idx, ok := search.Ternary(words, "dog")
	assert.True(t, ok)
	assert.Equal(t, 3, idx)

	idx, ok = search.Linear([]string{"x", "y"}, "y")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	fl := []float64{-2.5, 0, 1.25, 8}
	idx, ok = search.Fibonacci(fl, 1.25)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}
