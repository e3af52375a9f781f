package service

import (
	"regexp"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// combining diacritical marks block, U+0300..U+036F
var diacritics = runes.Predicate(func(r rune) bool { return r >= 0x300 && r <= 0x36f })

// Slugify derives a URL slug from a category name: lowercase, whitespace runs
// become a single hyphen and accents are stripped ("Cartão de Crédito" ->
// "cartao-de-credito"). Other punctuation is kept as-is.
func Slugify(name string) string {
	s := whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
	t := transform.Chain(norm.NFD, runes.Remove(diacritics))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
