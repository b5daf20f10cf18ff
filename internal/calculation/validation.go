package calculation

import (
	"fmt"

	"github.com/rpgo/rothtrad/internal/domain"
	"github.com/shopspring/decimal"
)

var maxPercent = decimal.NewFromInt(100)

// ValidateAccumulationParams checks the contribution-phase inputs and reports every
// problem at once.
func ValidateAccumulationParams(p domain.AccumulationParams) error {
	var probs problems
	checkAccumulation(&probs, "", p)
	return probs.err()
}

// ValidateDistributionParams checks the drawdown inputs together with the
// accumulation phase they continue from.
func ValidateDistributionParams(p domain.DistributionParams) error {
	var probs problems
	checkAccumulation(&probs, "", p.Accumulation)
	checkDistribution(&probs, "distribution.", p.DistributionSettings)
	return probs.err()
}

// ValidateBrackets checks a bracket table in isolation.
func ValidateBrackets(records []domain.TaxBracket) error {
	var probs problems
	checkBrackets(&probs, "tax_brackets", records)
	return probs.err()
}

func checkAccumulation(probs *problems, prefix string, p domain.AccumulationParams) {
	if p.Years < 1 {
		probs.add(prefix+"years", "must be at least 1, got %d", p.Years)
	}
	nonNegative(probs, prefix+"gross_income", p.GrossIncome)
	nonNegative(probs, prefix+"yearly_raise", p.YearlyRaise)
	nonNegative(probs, prefix+"yearly_contribution", p.YearlyContribution)
	nonNegative(probs, prefix+"standard_deduction", p.StandardDeduction)
	nonNegative(probs, prefix+"interest_rate", p.InterestRate)
	nonNegative(probs, prefix+"inflation_rate", p.InflationRate)
	if p.TraditionalPercent.IsNegative() || p.TraditionalPercent.GreaterThan(maxPercent) {
		probs.add(prefix+"traditional_percent", "must be between 0 and 100, got %s", p.TraditionalPercent)
	}
	checkBrackets(probs, prefix+"tax_brackets", p.TaxBrackets)
}

func checkDistribution(probs *problems, prefix string, s domain.DistributionSettings) {
	if s.Years < 1 {
		probs.add(prefix+"years", "must be at least 1, got %d", s.Years)
	}
	nonNegative(probs, prefix+"yearly_distribution", s.YearlyDistribution)
	nonNegative(probs, prefix+"retirement_interest_rate", s.RetirementInterestRate)
}

// checkBrackets enforces the table shape: ascending, contiguous, exactly one
// unbounded bracket and it is last.
func checkBrackets(probs *problems, field string, records []domain.TaxBracket) {
	if len(records) == 0 {
		probs.addBracket(field, "at least one bracket is required")
		return
	}
	last := len(records) - 1
	for i, b := range records {
		f := fmt.Sprintf("%s[%d]", field, i)
		if b.Min.IsNegative() {
			probs.addBracket(f+".min", "must not be negative, got %s", b.Min)
		}
		if b.Rate.IsNegative() || b.Rate.GreaterThan(maxPercent) {
			probs.addBracket(f+".rate", "must be between 0 and 100, got %s", b.Rate)
		}
		switch {
		case i == last && b.Max != nil:
			probs.addBracket(f+".max", "the last bracket must be unbounded")
		case i < last && b.Max == nil:
			probs.addBracket(f+".max", "only the last bracket may be unbounded")
		case b.Max != nil && b.Max.LessThanOrEqual(b.Min):
			probs.addBracket(f+".max", "must exceed min %s, got %s", b.Min, *b.Max)
		}
		if i > 0 {
			prev := records[i-1]
			if prev.Max != nil && !prev.Max.Equal(b.Min) {
				probs.addBracket(f+".min", "must equal the previous bracket's max %s, got %s", *prev.Max, b.Min)
			}
		}
	}
}

func nonNegative(probs *problems, field string, v decimal.Decimal) {
	if v.IsNegative() {
		probs.add(field, "must not be negative, got %s", v)
	}
}
