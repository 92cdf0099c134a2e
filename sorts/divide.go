// SPDX-License-Identifier: MIT

package sorts

import "cmp"

// Quick partitions around the last element (Lomuto), recursing into the
// smaller side and looping on the larger so stack depth stays O(log n).
func Quick[T cmp.Ordered](a []T) {
	lo, hi := 0, len(a)-1
	for lo < hi {
		p := lomuto(a, lo, hi)
		if p-lo < hi-p {
			quick(a, lo, p-1)
			lo = p + 1
		} else {
			quick(a, p+1, hi)
			hi = p - 1
		}
	}
}

func quick[T cmp.Ordered](a []T, lo, hi int) {
	if lo < hi {
		Quick(a[lo : hi+1])
	}
}

// lomuto places a[hi] at its final index within [lo, hi] and returns it.
func lomuto[T cmp.Ordered](a []T, lo, hi int) int {
	pivot := a[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if a[j] < pivot {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[hi] = a[hi], a[i]
	return i
}

// Merge is a stable top-down merge sort using one scratch buffer of len(a).
func Merge[T cmp.Ordered](a []T) {
	if len(a) < 2 {
		return
	}
	mergeSort(a, make([]T, len(a)))
}

func mergeSort[T cmp.Ordered](a, buf []T) {
	if len(a) < 2 {
		return
	}
	mid := len(a) / 2
	mergeSort(a[:mid], buf[:mid])
	mergeSort(a[mid:], buf[mid:])
	if a[mid-1] <= a[mid] {
		return
	}
	copy(buf, a)
	i, j, k := 0, mid, 0
	for i < mid && j < len(a) {
		if buf[j] < buf[i] {
			a[k] = buf[j]
			j++
		} else {
			a[k] = buf[i]
			i++
		}
		k++
	}
	k += copy(a[k:], buf[i:mid])
	copy(a[k:], buf[j:len(a)])
}

// Heap sorts a ascending under less: it builds a max-heap and repeatedly
// moves the root behind the shrinking heap.
func Heap[T any](a []T, less func(x, y T) bool) {
	n := len(a)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(a, i, n, less)
	}
	for end := n - 1; end > 0; end-- {
		a[0], a[end] = a[end], a[0]
		siftDown(a, 0, end, less)
	}
}

// HeapOrdered is Heap with the natural ascending order.
func HeapOrdered[T cmp.Ordered](a []T) {
	Heap(a, cmp.Less[T])
}

// siftDown restores the max-heap property for the subtree at root in a[:n].
func siftDown[T any](a []T, root, n int, less func(x, y T) bool) {
	for {
		child := 2*root + 1
		if child >= n {
			return
		}
		if child+1 < n && less(a[child], a[child+1]) {
			child++
		}
		if !less(a[root], a[child]) {
			return
		}
		a[root], a[child] = a[child], a[root]
		root = child
	}
}

// Bitonic runs the bitonic sorting network. len(a) must be 0 or a power of
// two; otherwise ErrNotPowerOfTwo is returned and a is untouched.
func Bitonic[T cmp.Ordered](a []T) error {
	n := len(a)
	if n&(n-1) != 0 {
		return ErrNotPowerOfTwo
	}
	for k := 2; k <= n; k <<= 1 {
		for j := k >> 1; j > 0; j >>= 1 {
			for i := 0; i < n; i++ {
				l := i ^ j
				if l <= i {
					continue
				}
				ascending := i&k == 0
				if (a[i] > a[l]) == ascending {
					a[i], a[l] = a[l], a[i]
				}
			}
		}
	}
	return nil
}
