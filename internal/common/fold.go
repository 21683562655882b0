package common

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldChain strips combining marks so "Classificação" and "Classificacao"
// compare equal.
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normalizes hand-entered text for comparison: trimmed, accents
// removed, lower-cased. The original spelling is never altered, only the
// comparison key.
func Fold(s string) string {
	folded, _, err := transform.String(foldChain, strings.TrimSpace(s))
	if err != nil {
		// transform only fails on invalid UTF-8; fall back to the raw text.
		folded = strings.TrimSpace(s)
	}
	return strings.ToLower(folded)
}
