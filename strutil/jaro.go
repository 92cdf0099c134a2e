package strutil

// Jaro–Winkler parameters.
const (
	winklerPrefixCap = 4
	winklerScaling   = 0.1
)

// JaroWinkler returns the Jaro–Winkler similarity of a and b in [0, 1]:
// 1 for identical strings (including two empty ones), 0 when either is empty
// or no runes match.
//
// Runes match when equal and no farther apart than max(len)/2 − 1. The Jaro
// score is boosted by 0.1 per rune of common prefix, up to four.
//
// Complexity: O(|a|·window) time, O(|a|+|b|) space.
func JaroWinkler(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	j := jaro(ra, rb)

	prefix := 0
	for prefix < min(len(ra), len(rb), winklerPrefixCap) && ra[prefix] == rb[prefix] {
		prefix++
	}
	return j + float64(prefix)*winklerScaling*(1-j)
}

func jaro(a, b []rune) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	window := max(max(len(a), len(b))/2-1, 0)
	matchedA := make([]bool, len(a))
	matchedB := make([]bool, len(b))
	matches := 0
	for i, r := range a {
		lo, hi := max(0, i-window), min(len(b), i+window+1)
		for k := lo; k < hi; k++ {
			if !matchedB[k] && b[k] == r {
				matchedA[i], matchedB[k] = true, true
				matches++
				break
			}
		}
	}
	if matches == 0 {
		return 0
	}

	// Half the matched runes that appear in a different order.
	transpositions, k := 0, 0
	for i, r := range a {
		if !matchedA[i] {
			continue
		}
		for !matchedB[k] {
			k++
		}
		if r != b[k] {
			transpositions++
		}
		k++
	}
	transpositions /= 2

	m := float64(matches)
	return (m/float64(len(a)) + m/float64(len(b)) + (m-float64(transpositions))/m) / 3
}
