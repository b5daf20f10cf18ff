package server

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/rpgo/rothtrad/internal/calculation"
	"github.com/rpgo/rothtrad/internal/domain"
)

// Query keys accepted by the projection endpoints.
const (
	qYears                  = "years"
	qSalary                 = "salary"
	qYearlyRaise            = "yearly_raise"
	qYearlyContribution     = "yearly_contribution"
	qTraditionalPercent     = "traditional_contribution"
	qInterestRate           = "investment_interest_rate"
	qStandardDeduction      = "standard_deduction"
	qInflation              = "inflation"
	qDistributionYears      = "distribution_years"
	qYearlyDistribution     = "yearly_distributions"
	qRetirementInterestRate = "retirement_interest_rate"
	qYear                   = "year"
	qFormat                 = "format"
)

// queryParser reads optional values from a query string, collecting every
// malformed one.
type queryParser struct {
	q    url.Values
	errs []calculation.FieldError
}

func (p *queryParser) setInt(key string, dst *int) {
	v := p.q.Get(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.errs = append(p.errs, calculation.FieldError{Field: key, Reason: "must be an integer"})
		return
	}
	*dst = n
}

func (p *queryParser) setDec(key string, dst *decimal.Decimal) {
	v := p.q.Get(key)
	if v == "" {
		return
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		p.errs = append(p.errs, calculation.FieldError{Field: key, Reason: "must be a number"})
		return
	}
	*dst = d
}

func (p *queryParser) err() error {
	if len(p.errs) == 0 {
		return nil
	}
	return &calculation.ValidationError{Problems: p.errs}
}

// accumulationParams overlays query values on the configured defaults.
func accumulationParams(q url.Values, defaults domain.AccumulationParams) (domain.AccumulationParams, error) {
	p := defaults
	p.TaxBrackets = append([]domain.TaxBracket(nil), defaults.TaxBrackets...)
	qp := &queryParser{q: q}
	overlayAccumulation(qp, &p)
	return p, qp.err()
}

func overlayAccumulation(qp *queryParser, p *domain.AccumulationParams) {
	qp.setInt(qYears, &p.Years)
	qp.setDec(qSalary, &p.GrossIncome)
	qp.setDec(qYearlyRaise, &p.YearlyRaise)
	qp.setDec(qYearlyContribution, &p.YearlyContribution)
	qp.setDec(qTraditionalPercent, &p.TraditionalPercent)
	qp.setDec(qInterestRate, &p.InterestRate)
	qp.setDec(qStandardDeduction, &p.StandardDeduction)
	qp.setDec(qInflation, &p.InflationRate)
}

// distributionParams overlays query values on the configured defaults.
func distributionParams(q url.Values, cfg *domain.Configuration) (domain.DistributionParams, error) {
	p := cfg.DistributionParams()
	p.Accumulation.TaxBrackets = append([]domain.TaxBracket(nil), cfg.Contribution.TaxBrackets...)
	qp := &queryParser{q: q}
	overlayAccumulation(qp, &p.Accumulation)
	qp.setInt(qDistributionYears, &p.Years)
	qp.setDec(qYearlyDistribution, &p.YearlyDistribution)
	qp.setDec(qRetirementInterestRate, &p.RetirementInterestRate)
	return p, qp.err()
}
