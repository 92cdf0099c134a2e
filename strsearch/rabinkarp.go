package strsearch

// Rolling-hash parameters.
const (
	rkBase    = 256
	rkModulus = 1000003
)

// RabinKarp returns the first offset of pattern in text, or -1.
func RabinKarp(text, pattern string) int {
	idx := -1
	rabinKarp(text, pattern, func(i int) bool {
		idx = i
		return false
	})
	return idx
}

// RabinKarpAll returns every offset of pattern in text. The result is empty,
// never nil.
func RabinKarpAll(text, pattern string) []int {
	out := []int{}
	rabinKarp(text, pattern, func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}

// rabinKarp calls yield for each verified match until yield returns false.
//
// Complexity: O(n+m) expected, O(n·m) with adversarial collisions.
func rabinKarp(text, pattern string, yield func(int) bool) {
	n, m := len(text), len(pattern)
	if m > n {
		return
	}
	if m == 0 {
		for i := 0; i <= n && yield(i); i++ {
		}
		return
	}

	// high = base^(m-1) mod p, the weight of the byte leaving the window.
	var ph, th, high uint64 = 0, 0, 1
	for i := 0; i < m; i++ {
		ph = (ph*rkBase + uint64(pattern[i])) % rkModulus
		th = (th*rkBase + uint64(text[i])) % rkModulus
		if i > 0 {
			high = high * rkBase % rkModulus
		}
	}

	for i := 0; ; i++ {
		if th == ph && text[i:i+m] == pattern {
			if !yield(i) {
				return
			}
		}
		if i+m >= n {
			return
		}
		th = (th + rkModulus - uint64(text[i])*high%rkModulus) % rkModulus
		th = (th*rkBase + uint64(text[i+m])) % rkModulus
	}
}
