package strsearch

// FailureTable returns the KMP prefix function of p: t[i] is the length of
// the longest proper prefix of p[:i+1] that is also its suffix.
func FailureTable(p string) []int {
	t := make([]int, len(p))
	k := 0
	for i := 1; i < len(p); i++ {
		for k > 0 && p[i] != p[k] {
			k = t[k-1]
		}
		if p[i] == p[k] {
			k++
		}
		t[i] = k
	}
	return t
}

// KMPIndex returns the first offset of pattern in text, or -1.
//
// Complexity: O(len(text) + len(pattern)).
func KMPIndex(text, pattern string) int {
	m := len(pattern)
	if m == 0 {
		return 0
	}
	fail := FailureTable(pattern)
	j := 0
	for i := 0; i < len(text); i++ {
		for j > 0 && text[i] != pattern[j] {
			j = fail[j-1]
		}
		if text[i] == pattern[j] {
			j++
		}
		if j == m {
			return i - m + 1
		}
	}
	return -1
}

// KMPContains reports whether pattern occurs in text.
func KMPContains(text, pattern string) bool {
	return KMPIndex(text, pattern) >= 0
}
