package chart

import (
	"math"

	"github.com/etnz/etfscope"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RiskReturnScatter plots each compared security by annualized volatility
// (x) and annualized return (y).
func RiskReturnScatter(c *etfscope.Comparison) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Risk vs return", Subtitle: c.Range.String()}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Annualized volatility"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Annualized return"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{Width: "700px", Height: "500px"}),
	)

	for _, e := range c.Entries {
		if math.IsNaN(e.Metrics.Volatility) || math.IsNaN(e.Metrics.AnnualizedReturn) {
			continue
		}
		scatter.AddSeries(e.Security.Ticker, []opts.ScatterData{{
			Name:       e.Security.Ticker,
			Value:      []any{e.Metrics.Volatility, e.Metrics.AnnualizedReturn},
			SymbolSize: 16,
		}})
	}
	return scatter
}

// CorrelationHeatmap charts the pairwise correlation of daily returns.
func CorrelationHeatmap(c *etfscope.Comparison) *charts.HeatMap {
	heatmap := charts.NewHeatMap()
	tickers := c.Tickers()
	heatmap.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Correlation of daily returns", Subtitle: c.Range.String()}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: tickers}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: tickers}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min:        -1,
			Max:        1,
			Calculable: opts.Bool(true),
			Orient:     "horizontal",
			Left:       "center",
			InRange:    &opts.VisualMapInRange{Color: []string{"#313695", "#ffffff", "#a50026"}},
		}),
		charts.WithInitializationOpts(opts.Initialization{Width: "600px", Height: "500px"}),
	)

	var cells []opts.HeatMapData
	for i := range c.Entries {
		for j := range c.Entries {
			v := c.Correlation[i][j]
			if math.IsNaN(v) {
				continue
			}
			cells = append(cells, opts.HeatMapData{
				Value: [3]any{i, j, math.Round(v*100) / 100},
			})
		}
	}
	heatmap.AddSeries("correlation", cells)
	return heatmap
}

// MetricsRadar charts the normalized metric profile of each security.
// Volatility and drawdown are inverted beforehand, so the outer edge is
// always the preferable one.
func MetricsRadar(c *etfscope.Comparison) *charts.Radar {
	radar := charts.NewRadar()

	indicators := make([]*opts.Indicator, len(etfscope.RadarMetrics))
	for i, name := range etfscope.RadarMetrics {
		indicators[i] = &opts.Indicator{Name: name, Max: 1}
	}
	radar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Metric profile", Subtitle: "1 is best in class"}),
		charts.WithRadarComponentOpts(opts.RadarComponent{Indicator: indicators}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "700px", Height: "500px"}),
	)

	rows := c.RadarRows()
	for i, e := range c.Entries {
		radar.AddSeries(e.Security.Ticker, []opts.RadarData{{
			Name:  e.Security.Ticker,
			Value: rows[i],
		}})
	}
	return radar
}
