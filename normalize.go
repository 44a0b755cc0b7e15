package fuzzyindex

import (
	"unicode"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// boundarySentinel frames every normalized string so that grams anchored at
// the first or last character are distinguishable from interior grams.
// U+0001 is neither a letter nor a digit and survives NFKD unchanged, so it
// can never collide with filtered content.
const boundarySentinel uint16 = 0x0001

// appendNormalized appends the canonical comparison form of src to dst and
// returns the extended slice: NFKD decomposition, lowercase under lang, then
// letters and digits only, framed by one sentinel at each end. The result is
// UTF-16 code units so that eight of them pack exactly into a segment.
//
// Combining marks, punctuation, and whitespace are dropped, not replaced.
// Empty input yields the two adjacent sentinels.
func appendNormalized(dst []uint16, src string, lang language.Tag) []uint16 {
	dst = append(dst, boundarySentinel)
	if src != "" {
		// Decompose before filtering so compatibility-equivalent characters
		// collapse first. A Caser is stateful, so build one per call.
		folded := cases.Lower(lang).String(norm.NFKD.String(src))
		for _, r := range folded {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				continue
			}
			dst = appendUTF16(dst, r)
		}
	}
	return append(dst, boundarySentinel)
}

// appendUTF16 appends r as one code unit, or a surrogate pair for runes
// outside the BMP.
func appendUTF16(dst []uint16, r rune) []uint16 {
	if r < 0x10000 {
		return append(dst, uint16(r))
	}
	hi, lo := utf16.EncodeRune(r)
	return append(dst, uint16(hi), uint16(lo))
}

// normalizedKey converts a normalized buffer into the string used as the
// exact-table key. Two inputs that normalize identically share one key,
// which is what makes duplicate detection case- and format-insensitive.
func normalizedKey(units []uint16) string {
	return string(utf16.Decode(units))
}
