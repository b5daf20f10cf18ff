package cmd

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/rothtrad/internal/domain"
)

// paramFlags holds parameter overrides. Only flags the user set are applied.
type paramFlags struct {
	years              int
	grossIncome        string
	yearlyRaise        string
	yearlyContribution string
	traditionalPercent string
	interestRate       string
	standardDeduction  string
	inflationRate      string

	distributionYears      int
	yearlyDistribution     string
	retirementInterestRate string
}

func (f *paramFlags) registerAccumulation(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.years, "years", 0, "contribution years")
	fs.StringVar(&f.grossIncome, "gross-income", "", "starting gross income")
	fs.StringVar(&f.yearlyRaise, "yearly-raise", "", "flat raise added each year")
	fs.StringVar(&f.yearlyContribution, "yearly-contribution", "", "yearly 401k contribution before inflation")
	fs.StringVar(&f.traditionalPercent, "traditional-percent", "", "share of the contribution going to the traditional account (0-100)")
	fs.StringVar(&f.interestRate, "interest-rate", "", "investment growth during contributions, percent")
	fs.StringVar(&f.standardDeduction, "standard-deduction", "", "standard deduction before inflation")
	fs.StringVar(&f.inflationRate, "inflation-rate", "", "yearly inflation, percent")
}

func (f *paramFlags) registerDistribution(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.distributionYears, "distribution-years", 0, "distribution years")
	fs.StringVar(&f.yearlyDistribution, "yearly-distribution", "", "fixed yearly withdrawal across both accounts")
	fs.StringVar(&f.retirementInterestRate, "retirement-interest-rate", "", "investment growth during distributions, percent")
}

// apply copies every flag the user changed onto cfg.
func (f *paramFlags) apply(cmd *cobra.Command, cfg *domain.Configuration) error {
	var errs []error
	changed := cmd.Flags().Changed
	setDec := func(name, raw string, dst *decimal.Decimal) {
		if !changed(name) {
			return
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("--%s: %q is not a number", name, raw))
			return
		}
		*dst = d
	}
	c := &cfg.Contribution
	if changed("years") {
		c.Years = f.years
	}
	setDec("gross-income", f.grossIncome, &c.GrossIncome)
	setDec("yearly-raise", f.yearlyRaise, &c.YearlyRaise)
	setDec("yearly-contribution", f.yearlyContribution, &c.YearlyContribution)
	setDec("traditional-percent", f.traditionalPercent, &c.TraditionalPercent)
	setDec("interest-rate", f.interestRate, &c.InterestRate)
	setDec("standard-deduction", f.standardDeduction, &c.StandardDeduction)
	setDec("inflation-rate", f.inflationRate, &c.InflationRate)

	d := &cfg.Distribution
	if changed("distribution-years") {
		d.Years = f.distributionYears
	}
	setDec("yearly-distribution", f.yearlyDistribution, &d.YearlyDistribution)
	setDec("retirement-interest-rate", f.retirementInterestRate, &d.RetirementInterestRate)
	return errors.Join(errs...)
}
