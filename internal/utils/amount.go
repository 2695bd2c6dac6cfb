package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-entered currency amount. Thousands
// separators (commas, underscores, spaces) are tolerated; the decimal
// point is a dot. e.g. "1,500,000" -> 1500000, "150.50" -> 150.50.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer(",", "", "_", "", " ", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("amount is empty")
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q", s)
	}
	return d, nil
}

// FormatAmount renders an amount with two decimal places and thousands
// grouping, prefixed by the currency symbol: FormatAmount(d, "Rp") ->
// "Rp 1,500,000.00". Negative amounts keep the sign ahead of the digits.
func FormatAmount(d decimal.Decimal, symbol string) string {
	fixed := d.Abs().StringFixed(2)

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i:]
	}

	grouped := groupThousands(intPart)

	sign := ""
	if d.IsNegative() {
		sign = "-"
	}

	if symbol == "" {
		return sign + grouped + fracPart
	}
	return fmt.Sprintf("%s %s%s%s", symbol, sign, grouped, fracPart)
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
