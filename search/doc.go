// Package search implements classic lookups over slices.
//
// Every function returns (index, found). On a miss the index is -1; an empty
// slice always misses. All searches except Linear require the input sorted in
// ascending order; on unsorted input the result is unspecified but the call
// never panics.
//
//	Binary       O(log n)   halving.
//	Linear       O(n)       any comparable element type.
//	Jump         O(√n)      blocks of ⌊√n⌋, then a linear scan.
//	Exponential  O(log i)   doubling bound, then binary within it.
//	Struzik      O(log i)   alias of Exponential.
//	Ternary      O(log₃ n)  two probes per round.
//	Fibonacci    O(log n)   probes at Fibonacci offsets; additions only.
//
// With duplicate keys, Binary and Exponential return the leftmost match; the
// others return some matching index.
package search
