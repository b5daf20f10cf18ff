package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rpgo/rothtrad/internal/calculation"
	"github.com/rpgo/rothtrad/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Supported configuration file formats.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

var validLogLevels = map[string]bool{"": true, "debug": true, "info": true, "warn": true, "error": true}

// InputParser handles parsing of input configuration files
type InputParser struct {
	// EnvFile is the dotenv file read by Load. A missing file is not an error.
	EnvFile string
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{EnvFile: ".env"}
}

// DefaultConfiguration returns the values the calculator starts with when no
// file or environment overrides are given.
func DefaultConfiguration() *domain.Configuration {
	return &domain.Configuration{
		LogLevel: "info",
		Contribution: domain.AccumulationParams{
			Years:              30,
			GrossIncome:        decimal.NewFromInt(50000),
			YearlyRaise:        decimal.NewFromInt(3000),
			YearlyContribution: decimal.NewFromInt(23000),
			TraditionalPercent: decimal.NewFromInt(50),
			InterestRate:       decimal.NewFromInt(7),
			StandardDeduction:  decimal.NewFromInt(14600),
			InflationRate:      decimal.NewFromInt(3),
			TaxBrackets:        calculation.DefaultTaxBrackets(),
		},
		Distribution: domain.DistributionSettings{
			Years:                  30,
			YearlyDistribution:     decimal.NewFromInt(100000),
			RetirementInterestRate: decimal.NewFromInt(4),
		},
		Server: domain.ServerConfig{
			Addr:         ":8080",
			CacheSize:    calculation.DefaultCacheSize,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
	}
}

// FormatFromPath picks the configuration format from the file extension.
func FormatFromPath(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported configuration format for %s (use .yaml, .yml, .toml or .json)", filename)
	}
}

// LoadFromFile loads configuration from a YAML, TOML or JSON file on top of the
// defaults and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	config, err := ip.decodeFile(filename)
	if err != nil {
		return nil, err
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Load builds the effective configuration: defaults, then filename when it is
// not empty, then the dotenv file and ROTHTRAD_* environment variables.
func (ip *InputParser) Load(filename string) (*domain.Configuration, error) {
	config := DefaultConfiguration()
	if filename != "" {
		var err error
		if config, err = ip.decodeFile(filename); err != nil {
			return nil, err
		}
	}

	if err := ip.loadEnvFile(); err != nil {
		return nil, err
	}
	if err := ApplyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("invalid environment override: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

func (ip *InputParser) decodeFile(filename string) (*domain.Configuration, error) {
	format, err := FormatFromPath(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config := DefaultConfiguration()
	defaults := config.Contribution.TaxBrackets
	// Decoders may reuse a slice's backing array; start empty so a file's
	// brackets never inherit default fields.
	config.Contribution.TaxBrackets = nil

	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if len(config.Contribution.TaxBrackets) == 0 {
		config.Contribution.TaxBrackets = defaults
	}
	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	var errs []error

	if err := calculation.ValidateDistributionParams(config.DistributionParams()); err != nil {
		errs = append(errs, err)
	}

	if !validLogLevels[strings.ToLower(config.LogLevel)] {
		errs = append(errs, fmt.Errorf("log_level must be one of debug, info, warn, error; got %q", config.LogLevel))
	}
	if config.Server.CacheSize < 0 {
		errs = append(errs, fmt.Errorf("server.cache_size cannot be negative"))
	}
	if config.Server.ReadTimeout < 0 || config.Server.WriteTimeout < 0 {
		errs = append(errs, fmt.Errorf("server timeouts cannot be negative"))
	}

	return errors.Join(errs...)
}

// SaveConfiguration writes config to filename in the format implied by its extension.
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	format, err := FormatFromPath(filename)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatTOML:
		var b strings.Builder
		if err := toml.NewEncoder(&b).Encode(config); err != nil {
			return fmt.Errorf("failed to encode TOML: %w", err)
		}
		data = []byte(b.String())
	case FormatJSON:
		if data, err = json.MarshalIndent(config, "", "  "); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	default:
		if data, err = yaml.Marshal(config); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
	}

	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration for documentation
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	config := DefaultConfiguration()
	config.LogLevel = "info"
	config.Contribution.Years = 25
	config.Contribution.GrossIncome = decimal.NewFromInt(85000)
	config.Contribution.TraditionalPercent = decimal.NewFromInt(60)
	config.Distribution.Years = 25
	config.Distribution.YearlyDistribution = decimal.NewFromInt(90000)
	return config
}
