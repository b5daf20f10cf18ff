package calculation

import (
	"github.com/rpgo/rothtrad/internal/domain"
	dec "github.com/rpgo/rothtrad/pkg/decimal"
	"github.com/shopspring/decimal"
)

// BuildDistribution runs the contribution phase described by p.Accumulation and
// then the drawdown that follows it.
func BuildDistribution(p domain.DistributionParams) (*domain.DistributionSchedule, error) {
	if err := ValidateDistributionParams(p); err != nil {
		return nil, err
	}
	acc, err := BuildAccumulation(p.Accumulation)
	if err != nil {
		return nil, err
	}
	return BuildDistributionFrom(acc, p.DistributionSettings)
}

// BuildDistributionFrom continues an existing accumulation schedule into the
// drawdown phase. acc is read, never modified.
func BuildDistributionFrom(acc *domain.AccumulationSchedule, s domain.DistributionSettings) (*domain.DistributionSchedule, error) {
	var probs problems
	checkDistribution(&probs, "distribution.", s)
	if err := probs.err(); err != nil {
		return nil, err
	}
	table, err := NewBracketTable(acc.Params.TaxBrackets)
	if err != nil {
		return nil, err
	}

	final := acc.Final()
	trad, roth := final.TraditionalBalance, final.RothBalance
	tradPct := splitShare(trad, roth, acc.Params.TraditionalPercent)

	sched := &domain.DistributionSchedule{
		Params:              domain.DistributionParams{Accumulation: acc.Params, DistributionSettings: s},
		AccumulationYears:   final.Year,
		TerminalTraditional: trad,
		TerminalRoth:        roth,
		TraditionalPct:      tradPct,
		RothPct:             decimal.NewFromInt(1).Sub(tradPct),
	}
	sched.Rows = drawdown(sched, table, dec.FromPercent(acc.Params.InflationRate))
	return sched, nil
}

// splitShare returns the traditional share of the combined terminal balance. When
// both balances are zero there is nothing to apportion, so the configured
// contribution split is used instead.
func splitShare(trad, roth, traditionalPercent decimal.Decimal) decimal.Decimal {
	total := trad.Add(roth)
	if total.IsZero() {
		return dec.FromPercent(traditionalPercent)
	}
	return trad.Div(total)
}

func drawdown(s *domain.DistributionSchedule, table *BracketTable, inflation decimal.Decimal) []domain.DistributionYearRow {
	n := s.Params.Years
	rate := dec.FromPercent(s.Params.RetirementInterestRate)
	tradDraw := s.Params.YearlyDistribution.Mul(s.TraditionalPct)
	rothDraw := s.Params.YearlyDistribution.Mul(s.RothPct)

	tradBalances := Drawdown(s.TerminalTraditional, tradDraw, rate, n)
	rothBalances := Drawdown(s.TerminalRoth, rothDraw, rate, n)

	rows := make([]domain.DistributionYearRow, n)
	totalTrad, totalRoth, totalTax := decimal.Zero, decimal.Zero, decimal.Zero
	for k := 1; k <= n; k++ {
		year := s.AccumulationYears + k
		tax := table.Tax(tradDraw, inflation, year)
		totalTrad = totalTrad.Add(tradDraw)
		totalRoth = totalRoth.Add(rothDraw)
		totalTax = totalTax.Add(tax)
		rows[k-1] = domain.DistributionYearRow{
			Year:                         year,
			RothDistribution:             rothDraw,
			TotalRothDistribution:        totalRoth,
			RothBalance:                  rothBalances[k-1],
			TraditionalDistribution:      tradDraw,
			TotalTraditionalDistribution: totalTrad,
			TraditionalBalance:           tradBalances[k-1],
			DistributionTaxes:            tax,
			TotalDistributionTaxes:       totalTax,
		}
	}
	return rows
}

// Compare contrasts the tax saved (with growth) during accumulation against the
// tax paid on traditional withdrawals.
func Compare(acc *domain.AccumulationSchedule, dist *domain.DistributionSchedule) *domain.TaxComparison {
	saved := acc.Final().TotalSavedTaxInvestedPlusInterest
	paid := dist.Final().TotalDistributionTaxes
	c := &domain.TaxComparison{
		TaxSavedWithInterest:   saved,
		TaxDuringDistributions: paid,
		NetAdvantage:           saved.Sub(paid),
	}
	for _, r := range dist.Rows {
		if r.TotalDistributionTaxes.GreaterThan(saved) {
			y := r.Year
			c.BreakEvenYear = &y
			break
		}
	}
	return c
}
