// Package strutil holds small string predicates and transforms plus the
// Jaro–Winkler similarity.
//
// Case folding here is ASCII-only unless a function says otherwise; other
// runes pass through unchanged. JaroWinkler works on runes and is
// case-sensitive.
package strutil
