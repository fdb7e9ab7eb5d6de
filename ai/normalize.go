package ai

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize reduces text to its canonical form: lowercase, no diacritics,
// no punctuation and single spaces between words.
// Normalize(Normalize(s)) == Normalize(s) for every s.
func Normalize(text string) string {
	text = strings.ToLower(text)

	// Transformers are stateful, one chain per call keeps Normalize safe for concurrent use.
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Remove(runes.Predicate(unicode.IsPunct)),
		norm.NFC,
	)
	stripped, _, err := transform.String(t, text)
	if err != nil {
		stripped = text
	}
	return strings.Join(strings.Fields(stripped), " ")
}

// Tokenize splits an already normalized text on whitespace.
func Tokenize(normalized string) []string {
	return strings.Fields(normalized)
}
