package mask

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Format masks raw input, such as the live contents of a text field. The
// digits of input are read as an already-scaled run: "123456" at precision 2
// is 1,234.56. Any '-' anywhere makes the result negative. Input without
// digits formats as zero.
func Format(input string, cfg Config) string {
	negative := strings.Contains(input, "-")
	fixed := FixedPoint(Digits(input), cfg.Precision)
	integer, fraction, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(cfg.Prefix)
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(GroupThousands(integer, cfg.Thousands))
	if fraction != "" {
		b.WriteString(cfg.Decimal)
		b.WriteString(fraction)
	}
	b.WriteString(cfg.Suffix)
	return b.String()
}

// FormatFloat masks the true value v: 1234.5 at precision 2 is 1,234.50.
func FormatFloat(v float64, cfg Config) string {
	return Format(toFixed(v, clampPrecision(cfg.Precision)), cfg)
}

// FormatDecimal masks the true value d.
func FormatDecimal(d decimal.Decimal, cfg Config) string {
	return Format(keepSign(d.StringFixed(int32(clampPrecision(cfg.Precision))), d.Sign() < 0), cfg)
}

// Unformat recovers the number behind a masked string. Prefix, suffix and
// separators are discarded; only the digits, the precision and the presence
// of '-' matter.
func Unformat(masked string, precision int) float64 {
	sign := 1.0
	if strings.Contains(masked, "-") {
		sign = -1
	}
	v, _ := strconv.ParseFloat(FixedPoint(Digits(masked), precision), 64)
	return v * sign
}
