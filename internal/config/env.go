package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rpgo/rothtrad/internal/domain"
	"github.com/shopspring/decimal"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "ROTHTRAD_"

// loadEnvFile populates the process environment from the dotenv file, if any.
// Variables already set in the environment win.
func (ip *InputParser) loadEnvFile() error {
	if ip.EnvFile == "" {
		return nil
	}
	if err := godotenv.Load(ip.EnvFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", ip.EnvFile, err)
	}
	return nil
}

// ApplyEnvOverrides overwrites config fields from ROTHTRAD_* variables that are
// set and non-empty. Every malformed value is reported.
func ApplyEnvOverrides(config *domain.Configuration) error {
	o := overrides{}

	o.setStr(&config.LogLevel, "LOG_LEVEL")

	c := &config.Contribution
	o.setInt(&c.Years, "YEARS")
	o.setDec(&c.GrossIncome, "GROSS_INCOME")
	o.setDec(&c.YearlyRaise, "YEARLY_RAISE")
	o.setDec(&c.YearlyContribution, "YEARLY_CONTRIBUTION")
	o.setDec(&c.TraditionalPercent, "TRADITIONAL_PERCENT")
	o.setDec(&c.InterestRate, "INTEREST_RATE")
	o.setDec(&c.StandardDeduction, "STANDARD_DEDUCTION")
	o.setDec(&c.InflationRate, "INFLATION_RATE")

	d := &config.Distribution
	o.setInt(&d.Years, "DISTRIBUTION_YEARS")
	o.setDec(&d.YearlyDistribution, "YEARLY_DISTRIBUTION")
	o.setDec(&d.RetirementInterestRate, "RETIREMENT_INTEREST_RATE")

	s := &config.Server
	o.setStr(&s.Addr, "SERVER_ADDR")
	o.setInt(&s.CacheSize, "CACHE_SIZE")
	o.setDuration(&s.ReadTimeout, "READ_TIMEOUT")
	o.setDuration(&s.WriteTimeout, "WRITE_TIMEOUT")

	return errors.Join(o.errs...)
}

// overrides applies typed environment values, collecting parse failures.
type overrides struct {
	errs []error
}

func (o *overrides) lookup(key string) (string, string, bool) {
	name := EnvPrefix + key
	v := os.Getenv(name)
	return name, v, v != ""
}

func (o *overrides) setStr(dst *string, key string) {
	if _, v, ok := o.lookup(key); ok {
		*dst = v
	}
}

func (o *overrides) setInt(dst *int, key string) {
	name, v, ok := o.lookup(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		o.errs = append(o.errs, fmt.Errorf("%s=%q: %w", name, v, err))
		return
	}
	*dst = n
}

func (o *overrides) setDec(dst *decimal.Decimal, key string) {
	name, v, ok := o.lookup(key)
	if !ok {
		return
	}
	n, err := decimal.NewFromString(v)
	if err != nil {
		o.errs = append(o.errs, fmt.Errorf("%s=%q: %w", name, v, err))
		return
	}
	*dst = n
}

func (o *overrides) setDuration(dst *time.Duration, key string) {
	name, v, ok := o.lookup(key)
	if !ok {
		return
	}
	n, err := time.ParseDuration(v)
	if err != nil {
		o.errs = append(o.errs, fmt.Errorf("%s=%q: %w", name, v, err))
		return
	}
	*dst = n
}
