// SPDX-License-Identifier: MIT

package sorts

import "cmp"

// IsSorted reports whether a is in ascending order.
func IsSorted[T cmp.Ordered](a []T) bool {
	for i := 1; i < len(a); i++ {
		if a[i] < a[i-1] {
			return false
		}
	}
	return true
}

// Bubble repeatedly swaps adjacent inversions; a pass without swaps ends it.
func Bubble[T cmp.Ordered](a []T) {
	for end := len(a) - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			if a[i] > a[i+1] {
				a[i], a[i+1] = a[i+1], a[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// CocktailShaker is Bubble alternating direction, shrinking both ends.
func CocktailShaker[T cmp.Ordered](a []T) {
	lo, hi := 0, len(a)-1
	for lo < hi {
		swapped := false
		for i := lo; i < hi; i++ {
			if a[i] > a[i+1] {
				a[i], a[i+1] = a[i+1], a[i]
				swapped = true
			}
		}
		hi--
		for i := hi; i > lo; i-- {
			if a[i-1] > a[i] {
				a[i-1], a[i] = a[i], a[i-1]
				swapped = true
			}
		}
		lo++
		if !swapped {
			return
		}
	}
}

// Gnome walks forward while ordered and steps back after each swap.
func Gnome[T cmp.Ordered](a []T) {
	for i := 1; i < len(a); {
		if i == 0 || a[i-1] <= a[i] {
			i++
			continue
		}
		a[i-1], a[i] = a[i], a[i-1]
		i--
	}
}

// Comb is Bubble over a gap that shrinks by 1.3 each pass down to 1.
func Comb[T cmp.Ordered](a []T) {
	gap := len(a)
	for sorted := false; !sorted; {
		gap = gap * 10 / 13
		if gap <= 1 {
			gap = 1
			sorted = true
		}
		for i := 0; i+gap < len(a); i++ {
			if a[i] > a[i+gap] {
				a[i], a[i+gap] = a[i+gap], a[i]
				sorted = false
			}
		}
	}
}

// Insertion grows a sorted prefix by shifting each new element into place.
func Insertion[T cmp.Ordered](a []T) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i
		for ; j > 0 && a[j-1] > v; j-- {
			a[j] = a[j-1]
		}
		a[j] = v
	}
}

// Shell is gapped insertion sort with gaps n/2, n/4, …, 1.
func Shell[T cmp.Ordered](a []T) {
	for gap := len(a) / 2; gap > 0; gap /= 2 {
		for i := gap; i < len(a); i++ {
			v := a[i]
			j := i
			for ; j >= gap && a[j-gap] > v; j -= gap {
				a[j] = a[j-gap]
			}
			a[j] = v
		}
	}
}

// Selection swaps the minimum of the unsorted suffix into place.
func Selection[T cmp.Ordered](a []T) {
	for i := 0; i < len(a)-1; i++ {
		m := i
		for j := i + 1; j < len(a); j++ {
			if a[j] < a[m] {
				m = j
			}
		}
		a[i], a[m] = a[m], a[i]
	}
}

// Cycle rotates each permutation cycle into place with the minimum number of
// writes, and returns that number.
//
// An element's final position is start plus the count of smaller elements
// after it. Equal elements are placed after any equal value already there,
// so duplicates are handled. Each write puts one element in its final slot.
//
// Complexity: O(n²) comparisons, at most n writes. Not stable.
func Cycle[T cmp.Ordered](a []T) int {
	writes := 0
	for start := 0; start < len(a)-1; start++ {
		item := a[start]

		// Final position of item
		pos := start
		for _, v := range a[start+1:] {
			if v < item {
				pos++
			}
		}
		if pos == start {
			continue // already in place
		}

		// Skip past duplicates, then place item and pick up the evictee
		for item == a[pos] {
			pos++
		}
		a[pos], item = item, a[pos]
		writes++

		// Rotate the rest of the cycle until it closes back at start
		for pos != start {
			pos = start
			for _, v := range a[start+1:] {
				if v < item {
					pos++
				}
			}
			for item == a[pos] {
				pos++
			}
			a[pos], item = item, a[pos]
			writes++
		}
	}
	return writes
}

// Stooge sorts the first two thirds, the last two thirds, then the first two
// thirds again.
func Stooge[T cmp.Ordered](a []T) {
	if len(a) > 1 {
		stooge(a, 0, len(a)-1)
	}
}

func stooge[T cmp.Ordered](a []T, lo, hi int) {
	if a[lo] > a[hi] {
		a[lo], a[hi] = a[hi], a[lo]
	}
	if hi-lo+1 > 2 {
		t := (hi - lo + 1) / 3
		stooge(a, lo, hi-t)
		stooge(a, lo+t, hi)
		stooge(a, lo, hi-t)
	}
}

// Wiggle reorders a in one pass so that a[0] <= a[1] >= a[2] <= a[3] …
// It is not a total sort.
func Wiggle[T cmp.Ordered](a []T) {
	for i := 1; i < len(a); i++ {
		if (i%2 == 1) == (a[i-1] > a[i]) {
			a[i-1], a[i] = a[i], a[i-1]
		}
	}
}
