package output

import (
	"github.com/rpgo/rothtrad/internal/domain"
	"github.com/shopspring/decimal"
)

// Account preference labels.
const (
	PreferTraditional = "traditional"
	PreferRoth        = "roth"
	PreferNeutral     = "neutral"
)

// Recommendation encapsulates which account type came out ahead.
type Recommendation struct {
	Preferred     string          `json:"preferred"`
	NetAdvantage  decimal.Decimal `json:"net_advantage"`
	BreakEvenYear *int            `json:"break_even_year,omitempty"`
	// Share of the saved tax (with interest) consumed by distribution taxes, in percent.
	PercentageConsumed decimal.Decimal `json:"percentage_consumed"`
}

// AnalyzeProjection compares the tax saved by traditional contributions with the
// tax paid when they are withdrawn. A projection without a drawdown phase has no
// withdrawal tax, so any saving favors the traditional account.
func AnalyzeProjection(p *domain.Projection) Recommendation {
	if p == nil || p.Accumulation == nil {
		return Recommendation{Preferred: PreferNeutral}
	}
	saved := p.Accumulation.Final().TotalSavedTaxInvestedPlusInterest
	paid := decimal.Zero
	var breakEven *int
	if c := p.Comparison; c != nil {
		saved, paid, breakEven = c.TaxSavedWithInterest, c.TaxDuringDistributions, c.BreakEvenYear
	}
	net := saved.Sub(paid)

	rec := Recommendation{NetAdvantage: net, BreakEvenYear: breakEven}
	switch {
	case net.IsPositive():
		rec.Preferred = PreferTraditional
	case net.IsNegative():
		rec.Preferred = PreferRoth
	default:
		rec.Preferred = PreferNeutral
	}
	if !saved.IsZero() {
		rec.PercentageConsumed = paid.Div(saved).Mul(hundred)
	}
	return rec
}
