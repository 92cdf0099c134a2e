// Package algorithms is a library of classic algorithms built around one
// reusable engine: a generic memoizer that recursive pure functions thread
// their own sub-calls through.
//
// 🚀 What is inside?
//
//	A pure-Go, generics-first collection that brings together:
//		• Memoization: caller-owned Cache + Memoize, and a sharded,
//		  singleflight-coalesced Shared table for concurrent callers
//		• Fibonacci: recursive, iterative, memoized and Binet strategies,
//		  plus exact big.Int and a saturating sequence generator
//		• Sorting: in-place sorts from bubble through bitonic to bogo
//		• Searching: binary, linear, jump, exponential, ternary, Fibonacci
//		• Strings: predicates, case transforms, Jaro–Winkler, and substring
//		  search via brute force, KMP, Rabin–Karp and the Z-function
//		• Arithmetic: GCD, factorial, perfect numbers, power, floor/ceil
//		• Morse code: table-injected codec over the ITU alphabet
//
// ✨ Conventions:
//
//   - Algorithms never panic on valid input; they return package sentinels
//     (match with errors.Is). Option constructors panic on nonsense values.
//   - Randomness is explicit and deterministic (seed 0 means seed 1).
//   - Only memo.Shared is safe for concurrent use; everything else is a
//     pure function over caller-owned data.
//
// Packages:
//
//	memo/       Cache, Memoize, MemoizeComputer, Shared
//	fibonacci/  the four strategies, Sequence, Big, Shared
//	sorts/      in-place sorts over cmp.Ordered slices
//	search/     (index, found) lookups
//	strutil/    string predicates, transforms and Jaro–Winkler
//	strsearch/  substring search and word counts
//	arith/      integer helpers
//	morse/      Morse codec
//	hof/        Reductions over iter.Seq
//	dataset/    deterministic benchmark inputs
//	cmd/algos/  CLI driver
//
//	go get github.com/katalvlaran/algorithms
package algorithms
