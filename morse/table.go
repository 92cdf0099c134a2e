package morse

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"
)

var (
	// ErrDuplicateCode indicates two runes share one code in a table.
	ErrDuplicateCode = errors.New("morse: duplicate code")

	// ErrInvalidCode indicates an empty code or one containing whitespace.
	ErrInvalidCode = errors.New("morse: invalid code")
)

// Table is an immutable, bidirectional rune ↔ code mapping.
type Table struct {
	enc map[rune]string
	dec map[string]rune
}

// NewTable copies m into a Table. Codes must be non-empty, free of
// whitespace and unique.
func NewTable(m map[rune]string) (*Table, error) {
	t := &Table{
		enc: make(map[rune]string, len(m)),
		dec: make(map[string]rune, len(m)),
	}
	for r, code := range m {
		if code == "" || strings.ContainsFunc(code, unicode.IsSpace) {
			return nil, fmt.Errorf("%w: %q for %q", ErrInvalidCode, code, r)
		}
		if prev, ok := t.dec[code]; ok {
			return nil, fmt.Errorf("%w: %q for %q and %q", ErrDuplicateCode, code, prev, r)
		}
		t.enc[r] = code
		t.dec[code] = r
	}
	return t, nil
}

// Code returns the code for r.
func (t *Table) Code(r rune) (string, bool) {
	c, ok := t.enc[r]
	return c, ok
}

// Rune returns the rune for code.
func (t *Table) Rune(code string) (rune, bool) {
	r, ok := t.dec[code]
	return r, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.enc)
}

// International returns the shared ITU table.
var International = sync.OnceValue(func() *Table {
	t, err := NewTable(map[rune]string{
		'a': ".-", 'b': "-...", 'c': "-.-.", 'd': "-..", 'e': ".",
		'f': "..-.", 'g': "--.", 'h': "....", 'i': "..", 'j': ".---",
		'k': "-.-", 'l': ".-..", 'm': "--", 'n': "-.", 'o': "---",
		'p': ".--.", 'q': "--.-", 'r': ".-.", 's': "...", 't': "-",
		'u': "..-", 'v': "...-", 'w': ".--", 'x': "-..-", 'y': "-.--",
		'z': "--..",

		'1': ".----", '2': "..---", '3': "...--", '4': "....-", '5': ".....",
		'6': "-....", '7': "--...", '8': "---..", '9': "----.", '0': "-----",

		'.': ".-.-.-", ',': "--..--", '?': "..--..", '\'': ".----.",
		'!': "-.-.--", '/': "-..-.", '(': "-.--.", ')': "-.--.-",
		'&': ".-...", ':': "---...", ';': "-.-.-.", '=': "-...-",
		'+': ".-.-.", '-': "-....-", '_': "..--.-", '"': ".-..-.",
		'$': "...-..-", '@': ".--.-.", '¿': "..-.-", '¡': "--...-",
	})
	if err != nil {
		panic(err)
	}
	return t
})
