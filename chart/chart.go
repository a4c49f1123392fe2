// Package chart renders report models as self-contained HTML charts.
package chart

import (
	"fmt"

	"github.com/etnz/etfscope"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// newLine returns a line chart with the shared cosmetic options.
func newLine(title, subtitle string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "30"}),
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "500px"}),
	)
	return line
}

// lineData converts a float column to line chart points.
func lineData(values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}

// PriceLine charts the closing prices of one analysis.
func PriceLine(a *etfscope.Analysis) *charts.Line {
	line := newLine(
		fmt.Sprintf("%s closing price", a.Security.Ticker),
		a.Range.String(),
	)

	days := make([]string, a.Series.Len())
	for i, d := range a.Series.Days() {
		days[i] = d.String()
	}
	line.SetXAxis(days).
		AddSeries(a.Security.Ticker, lineData(a.Series.Closes())).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}))
	return line
}

// rollingWindow is the sliding window of the rolling-volatility chart, one
// trading month.
const rollingWindow = 21

// CumulativeReturnLine charts the compounded return of one analysis, in
// percent. The series starts on the second day, the first close being the
// base.
func CumulativeReturnLine(a *etfscope.Analysis) *charts.Line {
	line := newLine(
		fmt.Sprintf("%s cumulative return (%%)", a.Security.Ticker),
		a.Range.String(),
	)

	cumulative := etfscope.CumulativeReturns(a.Series.Closes())
	for i, v := range cumulative {
		cumulative[i] = v * 100
	}
	line.SetXAxis(tailDays(a, len(cumulative))).
		AddSeries(a.Security.Ticker, lineData(cumulative)).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}))
	return line
}

// RollingVolatilityLine charts the annualized volatility of one analysis
// over a sliding one-month window, in percent. Each point is plotted on the
// last day of its window.
func RollingVolatilityLine(a *etfscope.Analysis) *charts.Line {
	line := newLine(
		fmt.Sprintf("%s rolling volatility (%%, %dd window)", a.Security.Ticker, rollingWindow),
		a.Range.String(),
	)

	vols := etfscope.RollingVolatility(etfscope.Returns(a.Series.Closes()), rollingWindow)
	for i, v := range vols {
		vols[i] = v * 100
	}
	line.SetXAxis(tailDays(a, len(vols))).
		AddSeries(a.Security.Ticker, lineData(vols)).
		SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}))
	return line
}

// tailDays returns the last n days of the analysis as axis labels.
func tailDays(a *etfscope.Analysis, n int) []string {
	days := a.Series.Days()
	days = days[len(days)-n:]
	labels := make([]string, n)
	for i, d := range days {
		labels[i] = d.String()
	}
	return labels
}

// ComparisonLine charts the aligned base-100 price paths of a comparison.
func ComparisonLine(c *etfscope.Comparison) *charts.Line {
	line := newLine("Performance rebased to 100", c.Range.String())

	days := make([]string, len(c.Days))
	for i, d := range c.Days {
		days[i] = d.String()
	}
	line.SetXAxis(days)
	for i, e := range c.Entries {
		line.AddSeries(e.Security.Ticker, lineData(c.Base100[i]))
	}
	return line
}
