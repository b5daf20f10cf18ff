package output

import (
	"fmt"

	"github.com/rpgo/rothtrad/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Contributions, standard deduction and bracket bounds grow with inflation every year",
	"Taxable income subtracts the traditional share of the uninflated yearly contribution",
	"Tax saved by traditional contributions is reinvested at the investment rate",
	"Withdrawals are fixed (not inflation adjusted) and split by terminal balance share",
	"Only traditional withdrawals are taxed; balances may go negative when depleted",
}

// GenerateAssumptions creates a dynamic assumptions list from the projection inputs,
// followed by the fixed model rules in DefaultAssumptions.
func GenerateAssumptions(p *domain.Projection) []string {
	if p == nil || p.Accumulation == nil {
		return DefaultAssumptions
	}
	a := p.Accumulation.Params
	out := []string{
		fmt.Sprintf("Contribution phase: %d years, %s%% traditional / %s%% Roth",
			a.Years, a.TraditionalPercent.StringFixed(1), hundred.Sub(a.TraditionalPercent).StringFixed(1)),
		fmt.Sprintf("Investment growth: %s%% annually", a.InterestRate.StringFixed(2)),
		fmt.Sprintf("Inflation: %s%% annually (contributions, deduction and bracket bounds)", a.InflationRate.StringFixed(2)),
		fmt.Sprintf("Starting income %s, raise %s per year, standard deduction %s",
			FormatCurrency(a.GrossIncome), FormatCurrency(a.YearlyRaise), FormatCurrency(a.StandardDeduction)),
		fmt.Sprintf("Tax brackets: %d progressive bands", len(a.TaxBrackets)),
	}
	if p.Distribution != nil {
		d := p.Distribution.Params
		out = append(out,
			fmt.Sprintf("Distribution phase: %d years of %s, growth %s%% annually",
				d.Years, FormatCurrency(d.YearlyDistribution), d.RetirementInterestRate.StringFixed(2)),
		)
	}
	return append(out, DefaultAssumptions...)
}

func assumptionsFor(p *domain.Projection) []string {
	if len(p.Assumptions) > 0 {
		return p.Assumptions
	}
	return GenerateAssumptions(p)
}
