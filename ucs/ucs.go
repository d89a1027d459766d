// Package ucs converts between UTF-8 and the fixed-width encodings the
// PhysicsFS API traffics in: UCS-4 (UTF-32 code points), UCS-2 (UTF-16
// code units) and Latin-1.
package ucs

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// FromUCS4 converts a sequence of UCS-4 code points to UTF-8. Invalid
// code points become the Unicode replacement character.
func FromUCS4(src []uint32) string {
	var b strings.Builder
	b.Grow(len(src))
	for _, cp := range src {
		r := rune(cp)
		if !utf8.ValidRune(r) {
			r = utf8.RuneError
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToUCS4 converts a UTF-8 string to UCS-4 code points. Invalid UTF-8
// bytes decode as the Unicode replacement character.
func ToUCS4(s string) []uint32 {
	out := make([]uint32, 0, len(s))
	for _, r := range s {
		out = append(out, uint32(r))
	}
	return out
}

// FromUCS2 converts a UCS-2/UTF-16 code unit sequence to UTF-8. Unpaired
// surrogates become the Unicode replacement character.
func FromUCS2(src []uint16) string {
	return string(utf16.Decode(src))
}

// ToUCS2 converts a UTF-8 string to UTF-16 code units, using surrogate
// pairs for code points outside the BMP.
func ToUCS2(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// FromLatin1 converts ISO 8859-1 bytes to UTF-8.
func FromLatin1(src []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(src)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
