package token

import (
	"strings"
	"unicode"
)

// Tokenize splits text into lowercase word tokens. Letters from any script
// count as word characters; digits, punctuation and symbols separate tokens,
// so page numbers and footnote markers never become tokens. Order follows
// the input, left to right.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}
