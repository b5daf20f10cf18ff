package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TaxBracket is a bracket record as supplied by the user or a config file.
// Rates are percentages; a nil Max marks the unbounded top bracket.
type TaxBracket struct {
	Min  decimal.Decimal  `yaml:"min" json:"min" toml:"min"`                            // Lower bound of the band
	Max  *decimal.Decimal `yaml:"max,omitempty" json:"max,omitempty" toml:"max,omitempty"` // Upper bound; omit for "anything above"
	Rate decimal.Decimal  `yaml:"rate" json:"rate" toml:"rate"`                         // Marginal rate in percent (22 for 22%)
}

// Unbounded reports whether the bracket has no upper bound.
func (b TaxBracket) Unbounded() bool { return b.Max == nil }

// CloneBrackets copies brackets, including each upper bound.
func CloneBrackets(brackets []TaxBracket) []TaxBracket {
	if brackets == nil {
		return nil
	}
	out := make([]TaxBracket, len(brackets))
	for i, b := range brackets {
		out[i] = b
		if b.Max != nil {
			m := *b.Max
			out[i].Max = &m
		}
	}
	return out
}

// AccumulationParams holds every input of the contribution phase.
// Percent fields are expressed as percentages and converted inside the calculation engine.
type AccumulationParams struct {
	Years              int             `yaml:"years" json:"years" toml:"years"`
	GrossIncome        decimal.Decimal `yaml:"gross_income" json:"gross_income" toml:"gross_income"`
	YearlyRaise        decimal.Decimal `yaml:"yearly_raise" json:"yearly_raise" toml:"yearly_raise"`
	YearlyContribution decimal.Decimal `yaml:"yearly_contribution" json:"yearly_contribution" toml:"yearly_contribution"`
	TraditionalPercent decimal.Decimal `yaml:"traditional_percent" json:"traditional_percent" toml:"traditional_percent"` // 0-100, remainder goes to Roth
	InterestRate       decimal.Decimal `yaml:"interest_rate" json:"interest_rate" toml:"interest_rate"`                   // Investment growth, percent
	StandardDeduction  decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction" toml:"standard_deduction"`
	InflationRate      decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate" toml:"inflation_rate"` // Applies to contribution, deduction and brackets
	TaxBrackets        []TaxBracket    `yaml:"tax_brackets" json:"tax_brackets" toml:"tax_brackets"`
}

// DistributionSettings holds the drawdown-only inputs as they appear in configuration.
type DistributionSettings struct {
	Years                  int             `yaml:"years" json:"years" toml:"years"`
	YearlyDistribution     decimal.Decimal `yaml:"yearly_distribution" json:"yearly_distribution" toml:"yearly_distribution"`
	RetirementInterestRate decimal.Decimal `yaml:"retirement_interest_rate" json:"retirement_interest_rate" toml:"retirement_interest_rate"` // Growth during drawdown, percent
}

// DistributionParams couples the drawdown settings with the accumulation phase they continue from.
// Inflation is shared with the accumulation phase.
type DistributionParams struct {
	Accumulation AccumulationParams `json:"accumulation"`
	DistributionSettings
}

// Key returns a canonical string identifying the parameter tuple.
// Numerically equal decimals produce the same key regardless of trailing zeros.
func (p AccumulationParams) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "acc:%d|%s|%s|%s|%s|%s|%s|%s", p.Years,
		canon(p.GrossIncome), canon(p.YearlyRaise), canon(p.YearlyContribution),
		canon(p.TraditionalPercent), canon(p.InterestRate), canon(p.StandardDeduction),
		canon(p.InflationRate))
	for _, br := range p.TaxBrackets {
		upper := "inf"
		if br.Max != nil {
			upper = canon(*br.Max)
		}
		fmt.Fprintf(&b, "|[%s,%s,%s]", canon(br.Min), upper, canon(br.Rate))
	}
	return b.String()
}

// Key returns a canonical string identifying the full distribution tuple.
func (p DistributionParams) Key() string {
	return fmt.Sprintf("%s|dist:%d|%s|%s", p.Accumulation.Key(), p.Years,
		canon(p.YearlyDistribution), canon(p.RetirementInterestRate))
}

func canon(d decimal.Decimal) string {
	// String() already strips trailing zeros; "-0" cannot occur for decimals.
	return d.String()
}

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	Addr         string        `yaml:"addr" json:"addr" toml:"addr"`
	CacheSize    int           `yaml:"cache_size" json:"cache_size" toml:"cache_size"` // Memoized schedules per phase; 0 disables caching
	ReadTimeout  time.Duration `yaml:"read_timeout" json:"read_timeout" toml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" json:"write_timeout" toml:"write_timeout"`
}

// Configuration represents the complete input configuration
type Configuration struct {
	LogLevel     string               `yaml:"log_level" json:"log_level" toml:"log_level"`
	Contribution AccumulationParams   `yaml:"contribution" json:"contribution" toml:"contribution"`
	Distribution DistributionSettings `yaml:"distribution" json:"distribution" toml:"distribution"`
	Server       ServerConfig         `yaml:"server" json:"server" toml:"server"`
}

// DistributionParams assembles the distribution tuple described by the configuration.
func (c *Configuration) DistributionParams() DistributionParams {
	return DistributionParams{Accumulation: c.Contribution, DistributionSettings: c.Distribution}
}
