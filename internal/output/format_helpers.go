package output

import (
	"strconv"

	"github.com/rpgo/money-mask/pkg/mask"
	"github.com/shopspring/decimal"
)

// FormatValue renders a recovered value with precision fractional digits.
func FormatValue(v float64, precision int) string {
	precision = max(0, min(precision, mask.MaxPrecision))
	return decimal.NewFromFloat(v).StringFixed(int32(precision))
}

func caretString(c *int) string {
	if c == nil {
		return ""
	}
	return strconv.Itoa(*c)
}
