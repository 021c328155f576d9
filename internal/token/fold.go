package token

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldAccents decomposes s and removes combining diacritical marks, leaving
// base letters intact: "liberación" becomes "liberacion", "año" becomes
// "ano". Idempotent.
func FoldAccents(s string) string {
	result, _, _ := transform.String(stripAccents, s)
	return result
}
