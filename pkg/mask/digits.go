package mask

import (
	"math"
	"strconv"
	"strings"
)

// Digits strips every character that is not an ASCII digit. A result that
// would be empty is returned as "0".
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}

// DigitsFloat stringifies v in its shortest form and extracts its digits.
// 123.45 yields "12345".
func DigitsFloat(v float64) string {
	return Digits(numberString(v))
}

// numberString renders v the way a display layer prints a bare number:
// plain notation between 1e-7 and 1e21, exponent notation outside.
func numberString(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	if v == 0 {
		return "0"
	}
	if abs := math.Abs(v); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		exp = strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + exp
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
