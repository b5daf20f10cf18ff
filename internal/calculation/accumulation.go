package calculation

import (
	"github.com/rpgo/rothtrad/internal/domain"
	dec "github.com/rpgo/rothtrad/pkg/decimal"
	"github.com/shopspring/decimal"
)

// BuildAccumulation validates p and produces the contribution-phase schedule,
// one row per year 1..p.Years.
func BuildAccumulation(p domain.AccumulationParams) (*domain.AccumulationSchedule, error) {
	if err := ValidateAccumulationParams(p); err != nil {
		return nil, err
	}
	table, err := NewBracketTable(p.TaxBrackets)
	if err != nil {
		return nil, err
	}
	return &domain.AccumulationSchedule{Params: p, Rows: accumulate(p, table)}, nil
}

// accumulate runs the contribution scan over validated inputs.
func accumulate(p domain.AccumulationParams, table *BracketTable) []domain.YearRow {
	n := p.Years
	inflation := dec.FromPercent(p.InflationRate)
	interest := dec.FromPercent(p.InterestRate)
	tp := dec.FromPercent(p.TraditionalPercent)
	rothShare := decimal.NewFromInt(1).Sub(tp)
	deferred := p.YearlyContribution.Mul(tp) // excluded from taxable income, not inflated

	contributions := make([]decimal.Decimal, n)
	deductions := make([]decimal.Decimal, n)
	for i := 0; i < n; i++ {
		factor := dec.GrowthFactor(inflation, i+1)
		contributions[i] = p.YearlyContribution.Mul(factor)
		deductions[i] = p.StandardDeduction.Mul(factor)
	}
	totals := cumulative(contributions)
	// The split is applied after compounding the undivided total.
	combined := Compound(totals, interest)

	rows := make([]domain.YearRow, n)
	saved := make([]decimal.Decimal, n)
	for i := 0; i < n; i++ {
		year := i + 1
		gross := p.GrossIncome.Add(p.YearlyRaise.Mul(decimal.NewFromInt(int64(year)))).Sub(deductions[i])
		taxable := gross.Sub(deferred)
		taxNone := table.Tax(gross, inflation, year)
		taxAfter := table.Tax(taxable, inflation, year)
		saved[i] = taxNone.Sub(taxAfter)

		rows[i] = domain.YearRow{
			Year:               year,
			Contribution:       contributions[i],
			TotalContributions: totals[i],
			TraditionalBalance: combined[i].Mul(tp),
			RothBalance:        combined[i].Mul(rothShare),
			StandardDeduction:  deductions[i],
			GrossIncome:        gross,
			TaxableIncome:      taxable,
			TaxWithNoDeduction: taxNone,
			TaxAfterDeductions: taxAfter,
			SavedTax:           saved[i],
		}
	}

	savedTotals := cumulative(saved)
	savedGrown := Compound(savedTotals, interest)
	for i := range rows {
		r := &rows[i]
		r.TotalSavedTaxInvested = savedTotals[i]
		r.TotalSavedTaxInvestedPlusInterest = savedGrown[i]
		r.TotalInvestment = r.TraditionalBalance.Add(r.RothBalance).Add(savedGrown[i])
	}
	return rows
}
