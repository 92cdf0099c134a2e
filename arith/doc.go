// Package arith provides elementary integer and rounding helpers: GCD,
// factorial, perfect numbers, integer power, floor/ceil and absolute extrema.
//
// Errors are sentinels (ErrNegative, ErrOverflow, ErrEmpty); functions never
// panic except MustFactorial, which exists for callers that treat a negative
// argument as a programming error.
package arith
