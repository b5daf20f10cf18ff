package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/rothtrad/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one metric per row).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(p *domain.Projection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	acc := p.Accumulation.Summary()
	rows := [][]string{
		{"Metric", "Value"},
		{"ContributionYears", intToString(acc.Year)},
		{"TraditionalBalance", acc.TraditionalBalance.StringFixed(2)},
		{"RothBalance", acc.RothBalance.StringFixed(2)},
		{"TotalSavedTaxInvested", acc.TotalSavedTaxInvested.StringFixed(2)},
		{"TotalSavedTaxInvestedPlusInterest", acc.TotalSavedTaxInvestedPlusInterest.StringFixed(2)},
		{"TotalInvestment", acc.TotalInvestment.StringFixed(2)},
	}
	if p.Distribution != nil {
		dist := p.Distribution.Summary()
		rows = append(rows,
			[]string{"FinalDistributionYear", intToString(dist.Year)},
			[]string{"TotalTraditionalDistribution", dist.TotalTraditionalDistribution.StringFixed(2)},
			[]string{"TotalRothDistribution", dist.TotalRothDistribution.StringFixed(2)},
			[]string{"EndingTraditionalBalance", dist.TraditionalBalance.StringFixed(2)},
			[]string{"EndingRothBalance", dist.RothBalance.StringFixed(2)},
			[]string{"TotalDistributionTaxes", dist.TotalDistributionTaxes.StringFixed(2)},
			[]string{"TraditionalDepleted", boolToString(dist.TraditionalDepletionYear != nil)},
			[]string{"RothDepleted", boolToString(dist.RothDepletionYear != nil)},
		)
	}
	rec := AnalyzeProjection(p)
	rows = append(rows,
		[]string{"NetAdvantage", rec.NetAdvantage.StringFixed(2)},
		[]string{"BreakEvenYear", yearOrDash(rec.BreakEvenYear)},
		[]string{"Preferred", rec.Preferred},
	)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
