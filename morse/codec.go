package morse

import (
	"strings"
	"sync"
	"unicode"
)

const defaultWordSeparator = "/"

// Option customizes a Codec.
type Option func(*Codec)

// WithTable sets the code table. Panics on nil.
func WithTable(t *Table) Option {
	if t == nil {
		panic("morse: WithTable(nil)")
	}
	return func(c *Codec) {
		c.table = t
	}
}

// WithWordSeparator sets the token placed between words. Panics if sep is
// empty or contains whitespace.
func WithWordSeparator(sep string) Option {
	if sep == "" || strings.ContainsFunc(sep, unicode.IsSpace) {
		panic("morse: WithWordSeparator(empty or whitespace)")
	}
	return func(c *Codec) {
		c.sep = sep
	}
}

// Codec translates between text and Morse code. It is immutable and safe for
// concurrent use.
type Codec struct {
	table *Table
	sep   string
}

// NewCodec returns a Codec over the International table unless overridden.
func NewCodec(opts ...Option) *Codec {
	c := &Codec{sep: defaultWordSeparator}
	for _, opt := range opts {
		opt(c)
	}
	if c.table == nil {
		c.table = International()
	}
	return c
}

// Encode lowercases text and encodes it word by word; words are the parts
// between single spaces.
func (c *Codec) Encode(text string) string {
	var b strings.Builder
	for i, word := range strings.Split(strings.ToLower(text), " ") {
		if i > 0 {
			b.WriteString(" " + c.sep + " ")
		}
		j := 0
		for _, r := range word {
			if j > 0 {
				b.WriteByte(' ')
			}
			if code, ok := c.table.Code(r); ok {
				b.WriteString(code)
			} else {
				b.WriteRune(r)
			}
			j++
		}
	}
	return b.String()
}

// Decode splits code on whitespace and maps each token back: the word
// separator becomes a space, known codes become their rune, anything else
// passes through.
func (c *Codec) Decode(code string) string {
	var b strings.Builder
	for _, tok := range strings.Fields(code) {
		if tok == c.sep {
			b.WriteByte(' ')
			continue
		}
		if r, ok := c.table.Rune(tok); ok {
			b.WriteRune(r)
		} else {
			b.WriteString(tok)
		}
	}
	return b.String()
}

var defaultCodec = sync.OnceValue(func() *Codec { return NewCodec() })

// Encode encodes text with the International table.
func Encode(text string) string {
	return defaultCodec().Encode(text)
}

// Decode decodes code with the International table.
func Decode(code string) string {
	return defaultCodec().Decode(code)
}
