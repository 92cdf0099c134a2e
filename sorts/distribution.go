package sorts

import "slices"

// Counting sorts non-negative ints by tallying each value.
// It returns ErrNegativeValue if any value is negative.
//
// Complexity: O(n + max) time and space.
func Counting(a []int) error {
	if len(a) == 0 {
		return nil
	}
	hi, err := nonNegativeMax(a)
	if err != nil {
		return err
	}
	counts := make([]int, hi+1)
	for _, v := range a {
		counts[v]++
	}
	i := 0
	for v, c := range counts {
		for ; c > 0; c-- {
			a[i] = v
			i++
		}
	}
	return nil
}

// Bead ("gravity sort") drops beads down max(a) rods; row heights after the
// fall are the sorted values. It returns ErrNegativeValue for negative input.
//
// Complexity: O(n·max) time, O(max) extra space.
func Bead(a []int) error {
	if len(a) == 0 {
		return nil
	}
	hi, err := nonNegativeMax(a)
	if err != nil {
		return err
	}
	// rods[j] is the number of beads on rod j, i.e. rows with value > j.
	rods := make([]int, hi)
	for _, v := range a {
		for j := 0; j < v; j++ {
			rods[j]++
		}
	}
	// After the fall the bottom row is longest; row r (0 = top) holds one
	// bead for every rod carrying more than n-1-r beads.
	n := len(a)
	for r := 0; r < n; r++ {
		v := 0
		for _, c := range rods {
			if c >= n-r {
				v++
			}
		}
		a[r] = v
	}
	return nil
}

// Bucket sorts float64 values in [0, 1) by scattering them into len(a)
// buckets and insertion-sorting each. It returns ErrOutOfRange, leaving a
// untouched, if any value is outside [0, 1) or NaN.
//
// Complexity: O(n) expected for uniform input, O(n²) worst.
func Bucket(a []float64) error {
	for _, v := range a {
		if !(v >= 0 && v < 1) {
			return ErrOutOfRange
		}
	}
	n := len(a)
	buckets := make([][]float64, n)
	for _, v := range a {
		i := int(v * float64(n))
		buckets[i] = append(buckets[i], v)
	}
	gather(a, buckets)
	return nil
}

// BucketInts distributes ints into len(a) buckets over [min, max].
//
// Complexity: O(n) expected for uniform input, O(n²) worst.
func BucketInts(a []int) {
	n := len(a)
	if n < 2 {
		return
	}
	lo, hi := slices.Min(a), slices.Max(a)
	if lo == hi {
		return
	}
	// Differences are taken in uint64 so the full int range cannot overflow.
	size := uint64(hi-lo)/uint64(n) + 1
	buckets := make([][]int, n)
	for _, v := range a {
		i := uint64(v-lo) / size
		buckets[i] = append(buckets[i], v)
	}
	gather(a, buckets)
}

// gather insertion-sorts each bucket and concatenates them back into a.
func gather[T float64 | int](a []T, buckets [][]T) {
	i := 0
	for _, b := range buckets {
		Insertion(b)
		i += copy(a[i:], b)
	}
}

// nonNegativeMax returns max(a) or ErrNegativeValue.
func nonNegativeMax(a []int) (int, error) {
	hi := 0
	for _, v := range a {
		if v < 0 {
			return 0, ErrNegativeValue
		}
		hi = max(hi, v)
	}
	return hi, nil
}
