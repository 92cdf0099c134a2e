package strsearch

import "strings"

// BruteForce returns the first offset of pattern in text, or -1.
func BruteForce(text, pattern string) int {
	m := len(pattern)
	for i := 0; i+m <= len(text); i++ {
		if text[i:i+m] == pattern {
			return i
		}
	}
	return -1
}

// Naive returns every offset where pattern occurs in text, comparing byte by
// byte. The result is empty, never nil.
func Naive(text, pattern string) []int {
	out := []int{}
	m := len(pattern)
	for i := 0; i+m <= len(text); i++ {
		j := 0
		for j < m && text[i+j] == pattern[j] {
			j++
		}
		if j == m {
			out = append(out, i)
		}
	}
	return out
}

// WordOccurrences counts words separated by ASCII whitespace.
func WordOccurrences(text string) map[string]int {
	counts := make(map[string]int)
	for _, w := range strings.FieldsFunc(text, isASCIISpace) {
		counts[w]++
	}
	return counts
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
