package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rpgo/rothtrad/internal/calculation"
	"github.com/rpgo/rothtrad/internal/output"
	dec "github.com/rpgo/rothtrad/pkg/decimal"
)

var headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)

func newBracketsCmd(a *app) *cobra.Command {
	var year int
	var inflation string
	cmd := &cobra.Command{
		Use:   "brackets",
		Short: "Show the tax brackets indexed for inflation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if year < 0 {
				return fmt.Errorf("--year must not be negative")
			}
			rate := a.cfg.Contribution.InflationRate
			if cmd.Flags().Changed("inflation-rate") {
				if err := rate.UnmarshalText([]byte(inflation)); err != nil {
					return fmt.Errorf("--inflation-rate: %w", err)
				}
			}
			table, err := calculation.NewBracketTable(a.cfg.Contribution.TaxBrackets)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("TAX BRACKETS, YEAR %d (%s%% INFLATION)", year, rate.StringFixed(2))))
			fmt.Fprintf(out, "%16s %16s %8s\n", "From", "To", "Rate")
			fmt.Fprintln(out, strings.Repeat("-", 42))
			for _, b := range table.Inflated(dec.FromPercent(rate), year).Records() {
				upper := "and above"
				if b.Max != nil {
					upper = output.FormatCurrency(*b.Max)
				}
				fmt.Fprintf(out, "%16s %16s %8s\n", output.FormatCurrency(b.Min), upper, output.FormatPercentage(b.Rate))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "years of inflation to apply")
	cmd.Flags().StringVar(&inflation, "inflation-rate", "", "yearly inflation, percent (defaults to the configured rate)")
	return cmd
}
