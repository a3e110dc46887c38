package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// extended holds the alphabet letters that fall outside plain A-Z and must
// survive normalization instead of being decomposed away.
var extended = map[rune]bool{
	'Å': true, 'Ä': true, 'Ö': true, 'É': true,
}

// IsAlphabet reports whether r is part of the fixed alphabet {A-Z, Å, Ä, Ö, É}.
func IsAlphabet(r rune) bool {
	if r >= 'A' && r <= 'Z' {
		return true
	}
	return extended[r]
}

// Fold uppercases s and strips it down to the fixed alphabet {A-Z, Å, Ä, Ö,
// É}, dropping everything else (spaces, digits, punctuation). Unlike a
// blanket NFD-decompose-and-drop-combining-marks pass, the four extended
// letters are special-cased so they are preserved rather than collapsed to
// their bare Latin base letter.
func Fold(s string) string {
	var result strings.Builder
	result.Grow(len(s))

	for _, r := range s {
		u := unicode.ToUpper(r)
		if IsAlphabet(u) {
			result.WriteRune(u)
			continue
		}
		// Decompose anything else (plain Latin diacritics beyond the
		// extended set) to its base letter and keep that if it lands
		// back in the alphabet.
		decomposed := norm.NFD.String(string(u))
		for _, d := range decomposed {
			if unicode.Is(unicode.Mn, d) {
				continue
			}
			du := unicode.ToUpper(d)
			if IsAlphabet(du) {
				result.WriteRune(du)
			}
		}
	}

	return result.String()
}

// StripBlockGlyph trims leading/trailing BLOCK glyphs, whitespace, and
// newlines from a raw dictionary line before folding — mirrors the
// original's `strip(f"\n■ ")` trim of a placement's text.
func StripBlockGlyph(s string) string {
	return strings.Trim(s, "■ \n\r\t")
}
