// Package hof provides higher-order helpers over Go iterators.
package hof

import (
	"iter"
	"slices"
)

// Reductions yields init followed by every intermediate result of folding f
// over seq, lazily. For seq = x1, x2, … it yields init, f(init, x1),
// f(f(init, x1), x2), …
func Reductions[T, A any](seq iter.Seq[T], init A, f func(A, T) A) iter.Seq[A] {
	return func(yield func(A) bool) {
		acc := init
		if !yield(acc) {
			return
		}
		for v := range seq {
			acc = f(acc, v)
			if !yield(acc) {
				return
			}
		}
	}
}

// ReductionsOf is Reductions over a slice, collected. The result always has
// len(s)+1 elements.
func ReductionsOf[T, A any](s []T, init A, f func(A, T) A) []A {
	out := make([]A, 0, len(s)+1)
	return slices.AppendSeq(out, Reductions(slices.Values(s), init, f))
}
