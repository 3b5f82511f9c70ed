package namematch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds a player name to a comparable form: diacritics stripped, lower-cased,
// punctuation removed, "LAST, FIRST" reordered to "first last", whitespace collapsed.
func Normalize(name string) string {
	folded, _, err := transform.String(foldChain(), name)
	if err != nil {
		folded = name
	}
	folded = strings.ToLower(folded)

	if last, first, ok := strings.Cut(folded, ","); ok {
		folded = first + " " + last
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r == '.' || r == '\'' || r == '’':
			// dropped so "O'Neal" and "ONeal" compare equal
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// foldChain is built per call; transform chains are stateful and not safe for concurrent use.
func foldChain() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

func tokens(normalized string) []string {
	return strings.Fields(normalized)
}
