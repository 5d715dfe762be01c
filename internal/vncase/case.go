// Package vncase provides Vietnamese case conversion and folding.
//
// Vietnamese letters stack a vowel quality mark (ă, â, ê, ô, ơ, ư) and a tone
// mark (grave, hook, tilde, acute, dot below) on the same base letter, and
// text arrives in both precomposed (NFC) and decomposed (NFD) form.
// Fold reduces all of these to a lowercase ASCII skeleton so that "Mười",
// "mươi" and "MUOI" compare equal whatever their normal form.
//
// All functions are safe for concurrent use.
package vncase

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// ToLower returns s composed to NFC and lowercased with Vietnamese rules.
func ToLower(s string) string {
	// A Caser carries state and must not be shared between goroutines.
	return cases.Lower(language.Vietnamese).String(norm.NFC.String(s))
}
