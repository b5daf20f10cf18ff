// Package cmd implements the rothtrad command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/rothtrad/internal/calculation"
	"github.com/rpgo/rothtrad/internal/config"
	"github.com/rpgo/rothtrad/internal/domain"
	"github.com/rpgo/rothtrad/internal/output"
)

// app carries state shared by every subcommand after the config is loaded.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string
	format    string
	output    string

	cfg    *domain.Configuration
	engine *calculation.Engine
	logger *slog.Logger
}

// Execute runs the root command against os.Args.
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "rothtrad",
		Short: "Compare Traditional and Roth 401k contributions",
		Long: `rothtrad projects a 401k through a contribution phase and a distribution
phase and compares the tax saved by traditional (pre-tax) contributions with
the tax paid when those dollars are withdrawn.

Inputs come from a YAML, TOML or JSON config file, ROTHTRAD_* environment
variables (optionally from .env) and command-line flags, in increasing order
of precedence.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (.yaml, .yml, .toml or .json); built-in defaults when empty")
	pf.StringVar(&a.logLevel, "log-level", "", "log level override: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	pf.StringVarP(&a.format, "format", "f", "console", "output format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	pf.StringVarP(&a.output, "output", "o", "", `output destination: file path, "auto" for a timestamped report, empty for stdout`)

	root.AddCommand(
		newAccumulateCmd(a),
		newCompareCmd(a),
		newBracketsCmd(a),
		newServeCmd(a),
		newInitConfigCmd(a),
	)
	return root
}

func (a *app) load(cmd *cobra.Command, args []string) error {
	if cmd.Annotations["skipConfig"] == "true" {
		return nil
	}
	cfg, err := config.NewInputParser().Load(a.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, a.logFormat)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.engine = calculation.NewEngineWithCache(cfg.Server.CacheSize)
	a.engine.SetLogger(calculation.NewSlogLogger(logger))
	logger.Debug("configuration loaded", slog.String("file", a.cfgFile), slog.String("log_level", cfg.LogLevel))
	return nil
}

// render writes p to stdout, a named file or a timestamped report.
func (a *app) render(cmd *cobra.Command, p *domain.Projection) error {
	p.Assumptions = output.GenerateAssumptions(p)
	switch a.output {
	case "":
		if a.format == "all" {
			return fmt.Errorf(`format "all" requires --output auto`)
		}
		return output.Render(cmd.OutOrStdout(), p, a.format)
	case "auto":
		files, err := output.GenerateReport(p, a.format, "")
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", f)
		}
		return nil
	default:
		f, err := os.Create(a.output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		if err := output.Render(f, p, a.format); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close output file: %w", err)
		}
		a.logger.Info("report written", slog.String("file", a.output), slog.String("format", a.format))
		return nil
	}
}
