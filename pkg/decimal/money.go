package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Format renders the amount as US currency with thousands separators, e.g. "-$1,234.50".
func (m Money) Format() string {
	s := m.Decimal.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if m.Decimal.Round(2).IsNegative() {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(whole) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(whole[:lead])
	for i := lead; i < len(whole); i += 3 {
		b.WriteByte(',')
		b.WriteString(whole[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// FromPercent converts a percentage (7 for 7%) into a fraction (0.07).
func FromPercent(p decimal.Decimal) decimal.Decimal {
	return p.Div(hundred)
}

// ToPercent converts a fraction (0.07) into a percentage (7).
func ToPercent(f decimal.Decimal) decimal.Decimal {
	return f.Mul(hundred)
}

// GrowthFactor returns (1 + rate)^periods. Periods below one yield 1.
func GrowthFactor(rate decimal.Decimal, periods int) decimal.Decimal {
	if periods <= 0 {
		return one
	}
	return one.Add(rate).Pow(decimal.NewFromInt(int64(periods)))
}
