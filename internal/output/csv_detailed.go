package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/rothtrad/internal/domain"
)

// CSVDetailedExporter provides raw annual detail for both phases.
// Columns that do not apply to a phase are left empty.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

var detailedHeader = []string{
	"Phase", "Year",
	"Contribution", "TotalContributions", "StandardDeduction", "GrossIncome", "TaxableIncome",
	"TaxWithNoDeduction", "TaxAfterDeductions", "SavedTax", "TotalSavedTaxInvested", "TotalSavedTaxInvestedPlusInterest",
	"TraditionalDistribution", "TotalTraditionalDistribution", "RothDistribution", "TotalRothDistribution",
	"DistributionTaxes", "TotalDistributionTaxes",
	"TraditionalBalance", "RothBalance", "TotalInvestment",
}

func (c CSVDetailedExporter) Format(p *domain.Projection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(detailedHeader); err != nil {
		return nil, err
	}
	for _, r := range p.Accumulation.Rows {
		row := []string{
			"accumulation",
			intToString(r.Year),
			r.Contribution.StringFixed(2),
			r.TotalContributions.StringFixed(2),
			r.StandardDeduction.StringFixed(2),
			r.GrossIncome.StringFixed(2),
			r.TaxableIncome.StringFixed(2),
			r.TaxWithNoDeduction.StringFixed(2),
			r.TaxAfterDeductions.StringFixed(2),
			r.SavedTax.StringFixed(2),
			r.TotalSavedTaxInvested.StringFixed(2),
			r.TotalSavedTaxInvestedPlusInterest.StringFixed(2),
			"", "", "", "", "", "",
			r.TraditionalBalance.StringFixed(2),
			r.RothBalance.StringFixed(2),
			r.TotalInvestment.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	if p.Distribution != nil {
		for _, r := range p.Distribution.Rows {
			row := []string{
				"distribution",
				intToString(r.Year),
				"", "", "", "", "", "", "", "", "", "",
				r.TraditionalDistribution.StringFixed(2),
				r.TotalTraditionalDistribution.StringFixed(2),
				r.RothDistribution.StringFixed(2),
				r.TotalRothDistribution.StringFixed(2),
				r.DistributionTaxes.StringFixed(2),
				r.TotalDistributionTaxes.StringFixed(2),
				r.TraditionalBalance.StringFixed(2),
				r.RothBalance.StringFixed(2),
				"",
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
