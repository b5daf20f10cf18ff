package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/rothtrad/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06B6D4")).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#374151")).
			Padding(0, 2)

	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
)

// ConsoleVerboseFormatter renders the full year-by-year console report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(p *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, titleStyle.Render("401K TRADITIONAL VS ROTH ANALYSIS"))
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, sectionStyle.Render("KEY ASSUMPTIONS:"))
	for _, a := range assumptionsFor(p) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	writeAccumulationTable(&buf, p.Accumulation)
	if p.Distribution != nil {
		writeDistributionTable(&buf, p.Distribution)
	}
	writeComparison(&buf, p)
	return buf.Bytes(), nil
}

func writeAccumulationTable(buf *bytes.Buffer, s *domain.AccumulationSchedule) {
	fmt.Fprintln(buf, sectionStyle.Render("CONTRIBUTION PHASE"))
	fmt.Fprintf(buf, "%-5s %14s %14s %14s %12s %12s %10s %16s %16s\n",
		"Year", "Contribution", "Traditional", "Roth", "Taxable", "Tax", "Saved", "Saved+Interest", "Total")
	fmt.Fprintln(buf, strings.Repeat("-", 123))
	for _, r := range s.Rows {
		fmt.Fprintf(buf, "%-5d %14s %14s %14s %12s %12s %10s %16s %16s\n",
			r.Year,
			FormatCurrency(r.Contribution),
			FormatCurrency(r.TraditionalBalance),
			FormatCurrency(r.RothBalance),
			FormatCurrency(r.TaxableIncome),
			FormatCurrency(r.TaxAfterDeductions),
			FormatCurrency(r.SavedTax),
			FormatCurrency(r.TotalSavedTaxInvestedPlusInterest),
			FormatCurrency(r.TotalInvestment),
		)
	}
	fmt.Fprintln(buf)

	sum := s.Summary()
	lines := []string{
		fmt.Sprintf("Traditional balance:           %s", FormatCurrency(sum.TraditionalBalance)),
		fmt.Sprintf("Roth balance:                  %s", FormatCurrency(sum.RothBalance)),
		fmt.Sprintf("Tax saved (invested):          %s", FormatCurrency(sum.TotalSavedTaxInvested)),
		fmt.Sprintf("Tax saved with interest:       %s", FormatCurrency(sum.TotalSavedTaxInvestedPlusInterest)),
		fmt.Sprintf("Total investment:              %s", FormatCurrency(sum.TotalInvestment)),
	}
	fmt.Fprintln(buf, panelStyle.Render(strings.Join(lines, "\n")))
	fmt.Fprintln(buf)
}

func writeDistributionTable(buf *bytes.Buffer, s *domain.DistributionSchedule) {
	fmt.Fprintln(buf, sectionStyle.Render("DISTRIBUTION PHASE"))
	fmt.Fprintf(buf, "Terminal balances: Traditional %s (%s), Roth %s (%s)\n",
		FormatCurrency(s.TerminalTraditional), FormatShare(s.TraditionalPct),
		FormatCurrency(s.TerminalRoth), FormatShare(s.RothPct))
	fmt.Fprintf(buf, "%-5s %14s %16s %14s %16s %12s %14s\n",
		"Year", "Traditional", "Trad Balance", "Roth", "Roth Balance", "Tax", "Total Tax")
	fmt.Fprintln(buf, strings.Repeat("-", 97))
	for _, r := range s.Rows {
		fmt.Fprintf(buf, "%-5d %14s %16s %14s %16s %12s %14s\n",
			r.Year,
			FormatCurrency(r.TraditionalDistribution),
			FormatCurrency(r.TraditionalBalance),
			FormatCurrency(r.RothDistribution),
			FormatCurrency(r.RothBalance),
			FormatCurrency(r.DistributionTaxes),
			FormatCurrency(r.TotalDistributionTaxes),
		)
	}
	fmt.Fprintln(buf)

	sum := s.Summary()
	if sum.TraditionalDepletionYear != nil {
		fmt.Fprintf(buf, "Traditional account depleted in year %d\n", *sum.TraditionalDepletionYear)
	}
	if sum.RothDepletionYear != nil {
		fmt.Fprintf(buf, "Roth account depleted in year %d\n", *sum.RothDepletionYear)
	}
}

func writeComparison(buf *bytes.Buffer, p *domain.Projection) {
	rec := AnalyzeProjection(p)
	fmt.Fprintln(buf, sectionStyle.Render("TAX COMPARISON"))
	if c := p.Comparison; c != nil {
		fmt.Fprintf(buf, "Tax saved with interest:   %s\n", FormatCurrency(c.TaxSavedWithInterest))
		fmt.Fprintf(buf, "Tax during distributions:  %s\n", FormatCurrency(c.TaxDuringDistributions))
	}
	net := FormatCurrency(rec.NetAdvantage)
	if rec.NetAdvantage.IsNegative() {
		net = negativeStyle.Render(net)
	} else {
		net = positiveStyle.Render(net)
	}
	fmt.Fprintf(buf, "Net traditional advantage: %s\n", net)
	if rec.BreakEvenYear != nil {
		fmt.Fprintf(buf, "Distribution taxes exceed the saving in year %d\n", *rec.BreakEvenYear)
	}
	fmt.Fprintf(buf, "Preferred account: %s\n", strings.ToUpper(rec.Preferred))
}
