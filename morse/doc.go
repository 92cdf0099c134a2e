// Package morse encodes and decodes text as Morse code.
//
// Wire format:
//
//   - Letters of a word are separated by a single space.
//   - Words are separated by " / " (the separator token is configurable).
//   - Runes missing from the table pass through verbatim, both ways.
//
// The International table (ITU letters, digits and punctuation, plus ¿ and ¡)
// is built once on first use and is immutable afterwards; Codec receives it,
// or any other Table, through WithTable.
//
//	c := morse.NewCodec()
//	code := c.Encode("SOS")   // "... --- ..."
//	text := c.Decode(code)    // "sos"
//
// Encoding lowercases its input, so Decode(Encode(s)) == strings.ToLower(s)
// for any s whose word breaks are single spaces and whose unknown runes are
// not whitespace.
package morse
