// Package sorts implements classic sorting algorithms in place over slices.
//
// 🚀 Families:
//
//   - Exchange / insertion: Bubble, CocktailShaker, Gnome, Comb, Insertion,
//     Shell, Selection, Cycle, Stooge.
//   - Divide & conquer: Quick (Lomuto), Merge (top-down), Heap, Bitonic.
//   - Distribution (restricted domains): Bucket, BucketInts, Counting, Bead.
//   - Curiosities: Wiggle (alternating order, not a total sort), Bogo.
//
// ✨ Conventions:
//
//   - Every function sorts ascending and mutates its argument.
//   - Algorithms never panic on valid slices; domain violations return a
//     sentinel error and leave the input unmodified.
//   - Bogo is randomized but deterministic: seed 0 means seed 1 and no
//     time-based source is used. It can be bounded with WithMaxShuffles.
//
// Complexity summary (n = len(a)):
//
//	Bubble, Cocktail, Gnome, Insertion, Selection  O(n²)
//	Shell (n/2 gaps)                                O(n²) worst
//	Comb (shrink 1.3)                               O(n²) worst, fast in practice
//	Cycle                                           O(n²), minimal writes
//	Stooge                                          O(n^2.71)
//	Quick                                           O(n log n) avg, O(n²) worst
//	Merge                                           O(n log n), O(n) scratch
//	Heap                                            O(n log n), O(1) extra
//	Bitonic                                         O(n log² n), len must be 2^k
//	Counting, Bucket                                O(n + k)
//	Bead                                            O(n·max)
//	Bogo                                            O(n·n!) expected
package sorts
