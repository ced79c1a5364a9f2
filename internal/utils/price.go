package utils

import (
	"strconv"
	"strings"
)

// FormatPrice renders price with "," as the thousands separator.
//
//	FormatPrice(1234567) == "1,234,567"
func FormatPrice(price int64) string {
	digits := strconv.FormatInt(price, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	return b.String()
}

// ParsePrice reverses [FormatPrice]: separators are removed and the rest is
// parsed as a float.
func ParsePrice(price string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(price), ",", ""), 64)
}
