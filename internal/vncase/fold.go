package vncase

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the lowercase form of s with all diacritics removed.
// đ has no decomposition and is mapped to d explicitly.
func Fold(s string) string {
	if isASCIILower(s) {
		return s
	}

	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(foldRune),
		norm.NFC,
	)
	out, _, err := transform.String(t, ToLower(s))
	if err != nil {
		return ToLower(s)
	}
	return out
}

func foldRune(r rune) rune {
	switch r {
	case 'đ', 'Đ':
		return 'd'
	}
	return r
}

// isASCIILower reports whether s needs no folding.
func isASCIILower(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || (c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
