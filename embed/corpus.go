package embed

import (
	"strings"
	"unicode"
)

// phraseJoiner glues the words of a detected phrase into one vocabulary term.
const phraseJoiner = "_"

// Tokenize lowercases text and splits it into word tokens. Punctuation acts
// as a separator except for underscores and internal apostrophes, so phrase
// terms like "machine_learning" survive a round trip.
func Tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	runes := []rune(text)
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToLower(r))
		case r == '_':
			b.WriteRune(r)
		case r == '\'' && i > 0 && i < len(runes)-1 &&
			unicode.IsLetter(runes[i-1]) && unicode.IsLetter(runes[i+1]):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Fields(b.String())
}
