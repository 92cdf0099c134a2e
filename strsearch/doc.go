// Package strsearch finds a pattern inside a text.
//
// All positions are byte offsets and matching is byte-exact, so UTF-8 input
// works as long as callers treat results as byte indices. Occurrences may
// overlap. An empty pattern matches at every offset 0..len(text); the
// single-result functions report offset 0.
//
//	BruteForce   first match, O(n·m).
//	Naive        every match, O(n·m).
//	KMP          first match / containment, O(n+m) via FailureTable.
//	RabinKarp    rolling hash (base 256, mod 1000003), verified on hash hit.
//	ZFunction    Z array; ZOccurrences counts matches, O(n+m).
//	WordOccurrences  word → count over ASCII-whitespace-separated words.
package strsearch
