package strsearch

// ZFunction returns the Z array of s: z[i] is the length of the longest
// common prefix of s and s[i:]. z[0] is 0 by convention.
//
// Complexity: O(len(s)).
func ZFunction(s string) []int {
	z := make([]int, len(s))
	l, r := 0, 0 // s[l:r] is the rightmost window matching a prefix
	for i := 1; i < len(s); i++ {
		if i < r {
			z[i] = min(r-i, z[i-l])
		}
		for i+z[i] < len(s) && s[z[i]] == s[i+z[i]] {
			z[i]++
		}
		if i+z[i] > r {
			l, r = i, i+z[i]
		}
	}
	return z
}

// ZOccurrences counts the offsets of pattern in text using the Z array of
// pattern+text: a text offset matches when its Z value reaches len(pattern).
func ZOccurrences(text, pattern string) int {
	m := len(pattern)
	if m == 0 {
		return len(text) + 1
	}
	count := 0
	for _, v := range ZFunction(pattern + text)[m:] {
		if v >= m {
			count++
		}
	}
	return count
}
