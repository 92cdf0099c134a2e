package strutil

import (
	"slices"
	"strings"
	"unicode"
)

// IsAnagram reports whether a and b hold the same runes, ignoring spaces and
// ASCII case.
func IsAnagram(a, b string) bool {
	return slices.Equal(anagramKey(a), anagramKey(b))
}

func anagramKey(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r != ' ' {
			out = append(out, toLowerASCII(r))
		}
	}
	slices.Sort(out)
	return out
}

// IsPalindrome reports whether the letters and digits of s read the same in
// both directions, ignoring case.
func IsPalindrome(s string) bool {
	rs := make([]rune, 0, len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			rs = append(rs, unicode.ToLower(r))
		}
	}
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		if rs[i] != rs[j] {
			return false
		}
	}
	return true
}

// IsPangram reports whether s contains every ASCII letter a–z in either case.
func IsPangram(s string) bool {
	var seen uint32
	for _, r := range s {
		r = toLowerASCII(r)
		if r >= 'a' && r <= 'z' {
			seen |= 1 << (r - 'a')
		}
	}
	return seen == 1<<26-1
}

// Capitalize upper-cases the first rune of s if it is an ASCII lowercase letter.
func Capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

// SwapCase inverts the case of ASCII letters.
func SwapCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z':
			return r - 'A' + 'a'
		}
		return r
	}, s)
}

// RemoveDuplicates keeps the first occurrence of each whitespace-separated
// word, joined by single spaces.
func RemoveDuplicates(s string) string {
	words := strings.Fields(s)
	seen := make(map[string]struct{}, len(words))
	out := words[:0]
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

// ReverseWords reverses the order of the single-space-separated parts of s.
// Runs of spaces yield empty parts, so spacing is mirrored, not collapsed.
func ReverseWords(s string) string {
	parts := strings.Split(s, " ")
	slices.Reverse(parts)
	return strings.Join(parts, " ")
}

func toLowerASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}
