package output

import (
	"strconv"

	dec "github.com/rpgo/rothtrad/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with thousands separators.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return dec.NewMoneyFromDecimal(amount).Format() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatShare renders a fraction (0.25) as a percentage ("25.00%").
func FormatShare(fraction decimal.Decimal) string { return FormatPercentage(dec.ToPercent(fraction)) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

func yearOrDash(y *int) string {
	if y == nil {
		return "-"
	}
	return intToString(*y)
}
