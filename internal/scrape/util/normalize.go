package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// NameFromSlug builds a display name from a URL slug: "-" and "." separate
// words, each word gets an upper-case first letter.
func NameFromSlug(slug string) string {
	slug = strings.NewReplacer("-", " ", ".", " ").Replace(slug)

	words := strings.Fields(slug)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}
