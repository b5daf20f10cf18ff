package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulationScenarioNoContribution(t *testing.T) {
	s, err := BuildAccumulation(scenarioA())
	require.NoError(t, err)
	require.Len(t, s.Rows, 1)

	r := s.Rows[0]
	assert.Equal(t, 1, r.Year)
	assert.True(t, r.Contribution.IsZero())
	assert.True(t, r.TraditionalBalance.IsZero())
	assert.True(t, r.RothBalance.IsZero())
	assertDecimal(t, d(50000), r.GrossIncome)
	assertDecimal(t, d(50000), r.TaxableIncome)
	assertDecimal(t, d(5000), r.TaxWithNoDeduction)
	assertDecimal(t, d(5000), r.TaxAfterDeductions)
	assert.True(t, r.SavedTax.IsZero())
	assert.True(t, r.TotalInvestment.IsZero())
}

func TestAccumulationScenarioFullTraditional(t *testing.T) {
	p := scenarioA()
	p.TraditionalPercent = d(100)
	p.YearlyContribution = d(10000)

	s, err := BuildAccumulation(p)
	require.NoError(t, err)
	r := s.Final()

	assertDecimal(t, d(10000), r.TraditionalBalance)
	assert.True(t, r.RothBalance.IsZero())
	assertDecimal(t, d(40000), r.TaxableIncome)
	assertDecimal(t, d(5000), r.TaxWithNoDeduction)
	assertDecimal(t, d(4000), r.TaxAfterDeductions)
	assertDecimal(t, d(1000), r.SavedTax)
	assertDecimal(t, d(1000), r.TotalSavedTaxInvested)
	assertDecimal(t, d(1000), r.TotalSavedTaxInvestedPlusInterest)
	assertDecimal(t, d(11000), r.TotalInvestment)
}

func TestAccumulationCompoundsCombinedBalance(t *testing.T) {
	p := scenarioA()
	p.Years = 2
	p.YearlyContribution = d(1000)
	p.TraditionalPercent = d(50)
	p.InterestRate = d(10)

	s, err := BuildAccumulation(p)
	require.NoError(t, err)
	require.Len(t, s.Rows, 2)

	assertDecimal(t, d(550), s.Rows[0].TraditionalBalance)
	assertDecimal(t, d(550), s.Rows[0].RothBalance)
	assertDecimal(t, d(1155), s.Rows[1].TraditionalBalance) // (1100 + 1000) * 1.1 / 2
	assertDecimal(t, d(1155), s.Rows[1].RothBalance)
	assertDecimal(t, d(2000), s.Rows[1].TotalContributions)
}

func TestAccumulationInflationIndexing(t *testing.T) {
	p := scenarioA()
	p.Years = 2
	p.YearlyContribution = d(1000)
	p.StandardDeduction = d(10000)
	p.YearlyRaise = d(500)
	p.InflationRate = d(10)

	s, err := BuildAccumulation(p)
	require.NoError(t, err)

	// The first year is already indexed once.
	assertDecimal(t, d(1100), s.Rows[0].Contribution)
	assertDecimal(t, d(1210), s.Rows[1].Contribution)
	assertDecimal(t, d(2310), s.Rows[1].TotalContributions)
	assertDecimal(t, d(11000), s.Rows[0].StandardDeduction)
	assertDecimal(t, d(12100), s.Rows[1].StandardDeduction)
	// gross = 50000 + y*500 - deduction
	assertDecimal(t, d(39500), s.Rows[0].GrossIncome)
	assertDecimal(t, d(38900), s.Rows[1].GrossIncome)
}

func TestAccumulationTaxableUsesUninflatedContribution(t *testing.T) {
	p := scenarioA()
	p.Years = 3
	p.YearlyContribution = d(10000)
	p.TraditionalPercent = d(40)
	p.InflationRate = d(5)

	s, err := BuildAccumulation(p)
	require.NoError(t, err)
	for _, r := range s.Rows {
		assertDecimal(t, r.GrossIncome.Sub(d(4000)), r.TaxableIncome)
	}
}

// TestAccumulationSplitPreservesCombined checks traditional + Roth equals the
// undivided compounded series for any split.
func TestAccumulationSplitPreservesCombined(t *testing.T) {
	base := defaultParams().Accumulation
	base.TraditionalPercent = decimal.Zero
	reference, err := BuildAccumulation(base)
	require.NoError(t, err)

	for _, tp := range []float64{0, 1, 25, 33, 50, 87.5, 100} {
		p := base
		p.TraditionalPercent = d(tp)
		s, err := BuildAccumulation(p)
		require.NoError(t, err)
		for i, r := range s.Rows {
			assertDecimal(t, reference.Rows[i].RothBalance, r.CombinedBalance())
		}
	}
}

func TestAccumulationSavedTaxNonNegative(t *testing.T) {
	base := defaultParams().Accumulation
	for _, tp := range []float64{1, 50, 100} {
		p := base
		p.TraditionalPercent = d(tp)
		s, err := BuildAccumulation(p)
		require.NoError(t, err)
		for _, r := range s.Rows {
			assert.False(t, r.SavedTax.IsNegative(), "tp=%v year=%d saved=%s", tp, r.Year, r.SavedTax)
		}
		assert.True(t, s.Final().TotalSavedTaxInvested.IsPositive())
	}
}

func TestAccumulationNetWorth(t *testing.T) {
	s, err := BuildAccumulation(defaultParams().Accumulation)
	require.NoError(t, err)
	require.Len(t, s.Rows, 30)
	for i, r := range s.Rows {
		assert.Equal(t, i+1, r.Year)
		want := r.TraditionalBalance.Add(r.RothBalance).Add(r.TotalSavedTaxInvestedPlusInterest)
		assertDecimal(t, want, r.TotalInvestment)
		if i > 0 {
			assert.True(t, r.TotalContributions.GreaterThan(s.Rows[i-1].TotalContributions))
		}
	}
}

func TestAccumulationZeroContributionIsFlat(t *testing.T) {
	p := defaultParams().Accumulation
	p.YearlyContribution = decimal.Zero
	s, err := BuildAccumulation(p)
	require.NoError(t, err)
	for _, r := range s.Rows {
		assert.True(t, r.CombinedBalance().IsZero())
		assert.True(t, r.SavedTax.IsZero())
	}
}

func TestAccumulationDisplayAndSummary(t *testing.T) {
	s, err := BuildAccumulation(defaultParams().Accumulation)
	require.NoError(t, err)

	display := s.Display()
	require.Len(t, display, len(s.Rows))
	assert.Equal(t, 30, display[29].Year)
	assertDecimal(t, s.Rows[29].TotalInvestment, display[29].TotalInvestment)

	sum := s.Summary()
	assert.Equal(t, 30, sum.Year)
	assertDecimal(t, s.Final().TotalSavedTaxInvested, sum.TotalSavedTaxInvested)
	assertDecimal(t, s.Final().RothBalance, sum.RothBalance)
}

func TestBuildAccumulationRejectsInvalid(t *testing.T) {
	p := scenarioA()
	p.Years = 0
	p.TraditionalPercent = d(140)

	s, err := BuildAccumulation(p)
	assert.Nil(t, s)
	require.ErrorIs(t, err, ErrInvalidParameters)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 2)
}
