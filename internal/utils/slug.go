package utils

import (
	"strings"
	"unicode"
)

// vietnameseBase maps accented Vietnamese letters to their unaccented base.
var vietnameseBase = buildFoldTable(map[rune]string{
	'a': "àáạảãâầấậẩẫăằắặẳẵ",
	'e': "èéẹẻẽêềếệểễ",
	'i': "ìíịỉĩ",
	'o': "òóọỏõôồốộổỗơờớợởỡ",
	'u': "ùúụủũưừứựửữ",
	'y': "ỳýỵỷỹ",
	'd': "đ",
})

func buildFoldTable(groups map[rune]string) map[rune]rune {
	table := make(map[rune]rune)
	for base, variants := range groups {
		for _, r := range variants {
			table[r] = base
		}
	}
	return table
}

// Slugify turns text into a URL slug: lower-cased, Vietnamese accents folded
// to ASCII, anything outside [0-9a-z-] and whitespace dropped, whitespace
// runs replaced by a single "-" and leading dashes trimmed.
//
//	Slugify("Đặc sản Hà Nội!") == "dac-san-ha-noi"
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	inSpace := false
	for _, r := range strings.ToLower(text) {
		if base, ok := vietnameseBase[r]; ok {
			r = base
		}

		switch {
		case unicode.IsSpace(r):
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r == '-':
			b.WriteRune(r)
			inSpace = false
		}
	}

	return strings.TrimLeft(b.String(), "-")
}
