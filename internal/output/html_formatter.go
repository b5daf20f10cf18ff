package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rpgo/rothtrad/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with Chart.js charts.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"pct":   FormatPercentage,
	"share": FormatShare,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(p *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.Projection
		AccSummary     domain.FinalContributionSummary
		Display        []domain.AccumulationDisplayRow
		Recommendation Recommendation
		Assumptions    []string
	}{p, p.Accumulation.Summary(), p.Accumulation.Display(), AnalyzeProjection(p), assumptionsFor(p)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
