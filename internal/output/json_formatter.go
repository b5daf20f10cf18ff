package output

import (
	"encoding/json"

	"github.com/rpgo/rothtrad/internal/domain"
)

// JSONFormatter serializes the projection plus derived summaries as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type jsonReport struct {
	Accumulation        *domain.AccumulationSchedule     `json:"accumulation"`
	AccumulationSummary domain.FinalContributionSummary  `json:"accumulation_summary"`
	Display             []domain.AccumulationDisplayRow  `json:"display"`
	Distribution        *domain.DistributionSchedule     `json:"distribution,omitempty"`
	DistributionSummary *domain.FinalDistributionSummary `json:"distribution_summary,omitempty"`
	Comparison          *domain.TaxComparison            `json:"comparison,omitempty"`
	Recommendation      Recommendation                   `json:"recommendation"`
	Assumptions         []string                         `json:"assumptions"`
}

func (j JSONFormatter) Format(p *domain.Projection) ([]byte, error) {
	report := jsonReport{
		Accumulation:        p.Accumulation,
		AccumulationSummary: p.Accumulation.Summary(),
		Display:             p.Accumulation.Display(),
		Distribution:        p.Distribution,
		Comparison:          p.Comparison,
		Recommendation:      AnalyzeProjection(p),
		Assumptions:         assumptionsFor(p),
	}
	if p.Distribution != nil {
		sum := p.Distribution.Summary()
		report.DistributionSummary = &sum
	}
	return json.MarshalIndent(report, "", "  ")
}
