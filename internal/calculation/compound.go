package calculation

import (
	"github.com/shopspring/decimal"
)

// Compound advances a principal series through yearly interest. Each step adds
// the principal's change since the previous step to the running balance and then
// applies one period of growth:
//
//	E[0] = P[0] * (1 + r)
//	E[i] = (E[i-1] + (P[i] - P[i-1])) * (1 + r)
//
// rate is a fraction. With a zero rate the result equals the principal series.
func Compound(principal []decimal.Decimal, rate decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, len(principal))
	if len(principal) == 0 {
		return out
	}
	growth := decimal.NewFromInt(1).Add(rate)
	out[0] = principal[0].Mul(growth)
	for i := 1; i < len(principal); i++ {
		delta := principal[i].Sub(principal[i-1])
		out[i] = out[i-1].Add(delta).Mul(growth)
	}
	return out
}

// Drawdown projects a balance that loses a fixed withdrawal each period. The
// recurrence runs in place on the balance series, so each step's delta cancels
// the previous balance and only the remaining principal earns one period:
//
//	E[k] = (start - withdrawal*k) * (1 + r), k = 1..periods
//
// Balances are allowed to go negative.
func Drawdown(start, withdrawal, rate decimal.Decimal, periods int) []decimal.Decimal {
	if periods <= 0 {
		return nil
	}
	growth := decimal.NewFromInt(1).Add(rate)
	out := make([]decimal.Decimal, periods)
	for k := 1; k <= periods; k++ {
		out[k-1] = start.Sub(withdrawal.Mul(decimal.NewFromInt(int64(k)))).Mul(growth)
	}
	return out
}

// cumulative returns the running sums of values.
func cumulative(values []decimal.Decimal) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	sum := decimal.Zero
	for i, v := range values {
		sum = sum.Add(v)
		out[i] = sum
	}
	return out
}
