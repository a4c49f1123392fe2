package chart

import (
	"fmt"
	"io"

	"github.com/etnz/etfscope"
	"github.com/go-echarts/go-echarts/v2/components"
)

// WriteAnalysisPage writes the single-ETF chart page as a standalone HTML
// document.
func WriteAnalysisPage(w io.Writer, a *etfscope.Analysis) error {
	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("%s analysis", a.Security.Ticker)
	page.AddCharts(PriceLine(a))
	// one close gives no return to chart, two no volatility window
	if a.Series.Len() > 1 {
		page.AddCharts(CumulativeReturnLine(a))
	}
	if a.Series.Len() > 2 {
		page.AddCharts(RollingVolatilityLine(a))
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render analysis page: %w", err)
	}
	return nil
}

// WriteComparisonPage writes the multi-ETF chart page as a standalone HTML
// document.
func WriteComparisonPage(w io.Writer, c *etfscope.Comparison) error {
	page := components.NewPage()
	page.PageTitle = "ETF comparison"
	page.AddCharts(
		ComparisonLine(c),
		RiskReturnScatter(c),
		CorrelationHeatmap(c),
		MetricsRadar(c),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render comparison page: %w", err)
	}
	return nil
}
