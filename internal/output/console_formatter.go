package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/rothtrad/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(p *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "401K TRADITIONAL VS ROTH SUMMARY")
	fmt.Fprintln(&buf, "================================")

	acc := p.Accumulation.Summary()
	fmt.Fprintf(&buf, "Contribution years: %d\n", acc.Year)
	fmt.Fprintf(&buf, "Traditional=%s Roth=%s\n", FormatCurrency(acc.TraditionalBalance), FormatCurrency(acc.RothBalance))
	fmt.Fprintf(&buf, "  SavedTax=%s SavedTaxWithInterest=%s TotalInvestment=%s\n",
		FormatCurrency(acc.TotalSavedTaxInvested),
		FormatCurrency(acc.TotalSavedTaxInvestedPlusInterest),
		FormatCurrency(acc.TotalInvestment),
	)

	if p.Distribution != nil {
		dist := p.Distribution.Summary()
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Distribution through year %d (split %s traditional / %s Roth)\n",
			dist.Year, FormatShare(p.Distribution.TraditionalPct), FormatShare(p.Distribution.RothPct))
		fmt.Fprintf(&buf, "Withdrawn: Traditional=%s Roth=%s Taxes=%s\n",
			FormatCurrency(dist.TotalTraditionalDistribution),
			FormatCurrency(dist.TotalRothDistribution),
			FormatCurrency(dist.TotalDistributionTaxes),
		)
		fmt.Fprintf(&buf, "Ending balances: Traditional=%s Roth=%s\n", FormatCurrency(dist.TraditionalBalance), FormatCurrency(dist.RothBalance))
		if dist.TraditionalDepletionYear != nil || dist.RothDepletionYear != nil {
			fmt.Fprintf(&buf, "  Depleted: Traditional=%s Roth=%s\n", yearOrDash(dist.TraditionalDepletionYear), yearOrDash(dist.RothDepletionYear))
		}
	}

	rec := AnalyzeProjection(p)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Preferred: %s (net advantage %s, break-even year %s)\n",
		rec.Preferred, FormatCurrency(rec.NetAdvantage), yearOrDash(rec.BreakEvenYear))
	return buf.Bytes(), nil
}
