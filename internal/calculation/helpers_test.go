package calculation

import (
	"testing"

	"github.com/rpgo/rothtrad/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func ptr(v float64) *decimal.Decimal {
	x := decimal.NewFromFloat(v)
	return &x
}

// flatBrackets is a single unbounded 10% bracket.
func flatBrackets() []domain.TaxBracket {
	return []domain.TaxBracket{{Min: decimal.Zero, Rate: d(10)}}
}

// scenarioA is the one-year, no-contribution baseline.
func scenarioA() domain.AccumulationParams {
	return domain.AccumulationParams{
		Years:              1,
		GrossIncome:        d(50000),
		YearlyRaise:        decimal.Zero,
		YearlyContribution: decimal.Zero,
		TraditionalPercent: decimal.Zero,
		InterestRate:       decimal.Zero,
		StandardDeduction:  decimal.Zero,
		InflationRate:      decimal.Zero,
		TaxBrackets:        flatBrackets(),
	}
}

// defaultParams mirrors the interactive calculator's initial values.
func defaultParams() domain.DistributionParams {
	return domain.DistributionParams{
		Accumulation: domain.AccumulationParams{
			Years:              30,
			GrossIncome:        d(50000),
			YearlyRaise:        d(3000),
			YearlyContribution: d(23000),
			TraditionalPercent: d(50),
			InterestRate:       d(7),
			StandardDeduction:  d(14600),
			InflationRate:      d(3),
			TaxBrackets:        DefaultTaxBrackets(),
		},
		DistributionSettings: domain.DistributionSettings{
			Years:                  30,
			YearlyDistribution:     d(100000),
			RetirementInterestRate: d(4),
		},
	}
}

func assertDecimal(t *testing.T, want, got decimal.Decimal) {
	t.Helper()
	assert.True(t, want.Equal(got), "want %s, got %s", want.String(), got.String())
}

func assertClose(t *testing.T, want, got decimal.Decimal, tolerance float64) {
	t.Helper()
	difference := want.Sub(got).Abs()
	assert.True(t, difference.LessThanOrEqual(d(tolerance)),
		"expected %s, got %s (difference: %s)", want.StringFixed(4), got.StringFixed(4), difference.String())
}
