package domain

import (
	"github.com/shopspring/decimal"
)

// YearRow is one year of the contribution (accumulation) phase.
type YearRow struct {
	Year int `json:"year"`

	// Contributions
	Contribution       decimal.Decimal `json:"contribution"`        // Inflation-adjusted 401k contribution for the year
	TotalContributions decimal.Decimal `json:"total_contributions"` // Running sum of contributions

	// Balances (end of year)
	TraditionalBalance decimal.Decimal `json:"traditional_balance"`
	RothBalance        decimal.Decimal `json:"roth_balance"`

	// Income and tax
	StandardDeduction  decimal.Decimal `json:"standard_deduction"`
	GrossIncome        decimal.Decimal `json:"gross_income"` // Income after the standard deduction, before the 401k deduction
	TaxableIncome      decimal.Decimal `json:"taxable_income"`
	TaxWithNoDeduction decimal.Decimal `json:"tax_with_no_401k_deduction"`
	TaxAfterDeductions decimal.Decimal `json:"tax_after_deductions"`
	SavedTax           decimal.Decimal `json:"saved_tax"`

	// Saved tax reinvested
	TotalSavedTaxInvested             decimal.Decimal `json:"total_saved_tax_invested"`
	TotalSavedTaxInvestedPlusInterest decimal.Decimal `json:"total_saved_tax_invested_plus_interest"`

	TotalInvestment decimal.Decimal `json:"total_investment"` // Traditional + Roth + saved tax with interest
}

// CombinedBalance returns the undivided compounded contribution balance.
func (r YearRow) CombinedBalance() decimal.Decimal {
	return r.TraditionalBalance.Add(r.RothBalance)
}

// DistributionYearRow is one year of the drawdown phase.
type DistributionYearRow struct {
	Year int `json:"year"`

	RothDistribution      decimal.Decimal `json:"roth_distribution"`
	TotalRothDistribution decimal.Decimal `json:"total_roth_distribution"`
	RothBalance           decimal.Decimal `json:"roth_balance"`

	TraditionalDistribution      decimal.Decimal `json:"traditional_distribution"`
	TotalTraditionalDistribution decimal.Decimal `json:"total_traditional_distribution"`
	TraditionalBalance           decimal.Decimal `json:"traditional_balance"`

	DistributionTaxes      decimal.Decimal `json:"distribution_taxes"` // Tax on the traditional withdrawal only
	TotalDistributionTaxes decimal.Decimal `json:"total_distribution_taxes"`
}

// AccumulationSchedule is the ordered result of the contribution phase.
// Schedules may be shared through the engine cache and must be treated as read-only.
type AccumulationSchedule struct {
	Params AccumulationParams `json:"params"`
	Rows   []YearRow          `json:"rows"`
}

// Final returns the last simulated year.
func (s *AccumulationSchedule) Final() YearRow {
	if len(s.Rows) == 0 {
		return YearRow{}
	}
	return s.Rows[len(s.Rows)-1]
}

// Clone returns a copy whose rows and tax brackets are independent of the receiver's.
func (s *AccumulationSchedule) Clone() *AccumulationSchedule {
	c := *s
	c.Rows = append([]YearRow(nil), s.Rows...)
	c.Params.TaxBrackets = CloneBrackets(s.Params.TaxBrackets)
	return &c
}

// AccumulationDisplayRow is the condensed per-year view used for charts and tables.
type AccumulationDisplayRow struct {
	Year                              int             `json:"year"`
	RothBalance                       decimal.Decimal `json:"roth_balance"`
	TraditionalBalance                decimal.Decimal `json:"traditional_balance"`
	TotalSavedTaxInvestedPlusInterest decimal.Decimal `json:"total_saved_tax_invested_plus_interest"`
	TotalInvestment                   decimal.Decimal `json:"total_investment"`
}

// Display projects every row onto the condensed display columns.
func (s *AccumulationSchedule) Display() []AccumulationDisplayRow {
	out := make([]AccumulationDisplayRow, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = AccumulationDisplayRow{
			Year:                              r.Year,
			RothBalance:                       r.RothBalance,
			TraditionalBalance:                r.TraditionalBalance,
			TotalSavedTaxInvestedPlusInterest: r.TotalSavedTaxInvestedPlusInterest,
			TotalInvestment:                   r.TotalInvestment,
		}
	}
	return out
}

// FinalContributionSummary holds the single-value results of the contribution phase.
type FinalContributionSummary struct {
	Year                              int             `json:"year"`
	RothBalance                       decimal.Decimal `json:"roth_balance"`
	TraditionalBalance                decimal.Decimal `json:"traditional_balance"`
	TotalSavedTaxInvested             decimal.Decimal `json:"total_saved_tax_invested"`
	TotalSavedTaxInvestedPlusInterest decimal.Decimal `json:"total_saved_tax_invested_plus_interest"`
	TotalInvestment                   decimal.Decimal `json:"total_investment"`
}

// Summary returns the final-year totals.
func (s *AccumulationSchedule) Summary() FinalContributionSummary {
	f := s.Final()
	return FinalContributionSummary{
		Year:                              f.Year,
		RothBalance:                       f.RothBalance,
		TraditionalBalance:                f.TraditionalBalance,
		TotalSavedTaxInvested:             f.TotalSavedTaxInvested,
		TotalSavedTaxInvestedPlusInterest: f.TotalSavedTaxInvestedPlusInterest,
		TotalInvestment:                   f.TotalInvestment,
	}
}

// DistributionSchedule is the ordered result of the drawdown phase.
type DistributionSchedule struct {
	Params DistributionParams `json:"params"`

	// Handoff from the accumulation phase
	AccumulationYears   int             `json:"accumulation_years"`
	TerminalTraditional decimal.Decimal `json:"terminal_traditional"`
	TerminalRoth        decimal.Decimal `json:"terminal_roth"`
	TraditionalPct      decimal.Decimal `json:"traditional_pct"` // Share of each distribution taken from the traditional account
	RothPct             decimal.Decimal `json:"roth_pct"`

	Rows []DistributionYearRow `json:"rows"`
}

// Final returns the last drawdown year.
func (s *DistributionSchedule) Final() DistributionYearRow {
	if len(s.Rows) == 0 {
		return DistributionYearRow{}
	}
	return s.Rows[len(s.Rows)-1]
}

// Clone returns a copy whose rows and tax brackets are independent of the receiver's.
func (s *DistributionSchedule) Clone() *DistributionSchedule {
	c := *s
	c.Rows = append([]DistributionYearRow(nil), s.Rows...)
	c.Params.Accumulation.TaxBrackets = CloneBrackets(s.Params.Accumulation.TaxBrackets)
	return &c
}

// FinalDistributionSummary holds the single-value results of the drawdown phase.
type FinalDistributionSummary struct {
	Year                         int             `json:"year"`
	TotalRothDistribution        decimal.Decimal `json:"total_roth_distribution"`
	RothBalance                  decimal.Decimal `json:"roth_balance"`
	TotalTraditionalDistribution decimal.Decimal `json:"total_traditional_distribution"`
	TraditionalBalance           decimal.Decimal `json:"traditional_balance"`
	TotalDistributionTaxes       decimal.Decimal `json:"total_distribution_taxes"`
	TraditionalDepletionYear     *int            `json:"traditional_depletion_year,omitempty"`
	RothDepletionYear            *int            `json:"roth_depletion_year,omitempty"`
}

// Summary returns the final drawdown-year totals plus depletion years, if any.
func (s *DistributionSchedule) Summary() FinalDistributionSummary {
	f := s.Final()
	sum := FinalDistributionSummary{
		Year:                         f.Year,
		TotalRothDistribution:        f.TotalRothDistribution,
		RothBalance:                  f.RothBalance,
		TotalTraditionalDistribution: f.TotalTraditionalDistribution,
		TraditionalBalance:           f.TraditionalBalance,
		TotalDistributionTaxes:       f.TotalDistributionTaxes,
	}
	for _, r := range s.Rows {
		if sum.TraditionalDepletionYear == nil && r.TraditionalBalance.IsNegative() {
			y := r.Year
			sum.TraditionalDepletionYear = &y
		}
		if sum.RothDepletionYear == nil && r.RothBalance.IsNegative() {
			y := r.Year
			sum.RothDepletionYear = &y
		}
	}
	return sum
}

// TaxComparison contrasts the tax saved by traditional contributions with the tax paid on their withdrawal.
type TaxComparison struct {
	TaxSavedWithInterest   decimal.Decimal `json:"tax_saved_with_interest"`
	TaxDuringDistributions decimal.Decimal `json:"tax_during_distributions"`
	NetAdvantage           decimal.Decimal `json:"net_advantage"`              // Saved minus paid; negative means the deduction cost more than it saved
	BreakEvenYear          *int            `json:"break_even_year,omitempty"` // First drawdown year whose cumulative tax exceeds the saving
}

// Projection bundles the outputs of a full run. Distribution and Comparison are nil
// when only the contribution phase was requested.
type Projection struct {
	Accumulation *AccumulationSchedule `json:"accumulation"`
	Distribution *DistributionSchedule `json:"distribution,omitempty"`
	Comparison   *TaxComparison        `json:"comparison,omitempty"`
	Assumptions  []string              `json:"assumptions,omitempty"`
}
