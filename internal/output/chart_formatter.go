package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/rpgo/rothtrad/internal/domain"
	"github.com/shopspring/decimal"
)

// ChartFormatter draws terminal line charts of both phases.
type ChartFormatter struct{}

func (c ChartFormatter) Name() string { return "chart" }

const barWidth = 50

func (c ChartFormatter) Format(p *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer

	display := p.Accumulation.Display()
	roth := make([]float64, len(display))
	trad := make([]float64, len(display))
	saved := make([]float64, len(display))
	total := make([]float64, len(display))
	for i, r := range display {
		roth[i] = r.RothBalance.InexactFloat64()
		trad[i] = r.TraditionalBalance.InexactFloat64()
		saved[i] = r.TotalSavedTaxInvestedPlusInterest.InexactFloat64()
		total[i] = r.TotalInvestment.InexactFloat64()
	}
	fmt.Fprintln(&buf, titleStyle.Render("CONTRIBUTION PHASE"))
	fmt.Fprintln(&buf, plot([][]float64{roth, trad, saved, total},
		"roth (green), traditional (blue), saved tax + interest (yellow), total (magenta)",
		asciigraph.Green, asciigraph.Blue, asciigraph.Yellow, asciigraph.Magenta))
	fmt.Fprintln(&buf)

	if p.Distribution != nil && len(p.Distribution.Rows) > 0 {
		rows := p.Distribution.Rows
		tradBal := make([]float64, len(rows))
		rothBal := make([]float64, len(rows))
		taxes := make([]float64, len(rows))
		for i, r := range rows {
			tradBal[i] = r.TraditionalBalance.InexactFloat64()
			rothBal[i] = r.RothBalance.InexactFloat64()
			taxes[i] = r.TotalDistributionTaxes.InexactFloat64()
		}
		fmt.Fprintln(&buf, titleStyle.Render("DISTRIBUTION PHASE"))
		fmt.Fprintln(&buf, plot([][]float64{tradBal, rothBal, taxes},
			"traditional (blue), roth (green), cumulative taxes (red)",
			asciigraph.Blue, asciigraph.Green, asciigraph.Red))
		fmt.Fprintln(&buf)
	}

	if cmp := p.Comparison; cmp != nil {
		fmt.Fprintln(&buf, titleStyle.Render("TAX SAVED VS TAX PAID"))
		scale := decimal.Max(cmp.TaxSavedWithInterest, cmp.TaxDuringDistributions)
		fmt.Fprintf(&buf, "saved %s %s\n", bar(cmp.TaxSavedWithInterest, scale), FormatCurrency(cmp.TaxSavedWithInterest))
		fmt.Fprintf(&buf, "paid  %s %s\n", bar(cmp.TaxDuringDistributions, scale), FormatCurrency(cmp.TaxDuringDistributions))
	}
	return buf.Bytes(), nil
}

func plot(series [][]float64, caption string, colors ...asciigraph.AnsiColor) string {
	// asciigraph needs at least two points per series to draw a line.
	for i, s := range series {
		if len(s) == 1 {
			series[i] = []float64{s[0], s[0]}
		}
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(caption),
	)
}

func bar(v, scale decimal.Decimal) string {
	n := 0
	if scale.IsPositive() && v.IsPositive() {
		n = int(v.Div(scale).Mul(decimal.NewFromInt(barWidth)).Round(0).IntPart())
	}
	return strings.Repeat("█", n) + strings.Repeat("·", barWidth-n)
}
