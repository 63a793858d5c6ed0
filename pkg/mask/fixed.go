package mask

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FixedPoint reads digits as an integer, divides it by 10^precision and
// renders the quotient with exactly precision fractional digits ("5" at
// precision 2 is "0.05").
//
// The division is float64. Past roughly 15 significant digits the output
// carries binary rounding noise. Rendering stops at MaxPrecision digits,
// but the divisor is not capped, so a precision of 25 still shifts by 10^25.
func FixedPoint(digits string, precision int) string {
	n, _ := strconv.ParseFloat(Digits(digits), 64)
	return toFixed(n/math.Pow10(max(precision, 0)), clampPrecision(precision))
}

// toFixed renders the exact binary value of v with places fractional
// digits, rounding half away from zero. A negative v keeps its sign even
// when it rounds to zero; -0 does not.
func toFixed(v float64, places int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) >= 1e21 {
		return numberString(v)
	}
	// 1074 fractional digits hold any float64 exactly.
	exact, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', 1074, 64))
	if err != nil {
		return strconv.FormatFloat(v, 'f', places, 64)
	}
	return keepSign(exact.StringFixed(int32(places)), v < 0)
}

func keepSign(s string, negative bool) string {
	if negative && !strings.HasPrefix(s, "-") {
		return "-" + s
	}
	return s
}
