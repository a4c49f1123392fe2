package etfscope

import (
	"fmt"
	"math"

	"github.com/etnz/etfscope/date"
)

// This file builds the report models consumed by the renderer and chart
// packages.

// Analysis is the single-ETF report model.
type Analysis struct {
	Security Security
	Range    date.Range
	RiskFree float64
	Series   Series
	Metrics  Metrics
	Latest   Quote
}

// NewAnalysis builds the analysis of one security over a date range.
// The series is clipped to the range; it must not end up empty.
func NewAnalysis(sec Security, series Series, rng date.Range, riskFree float64) (*Analysis, error) {
	clipped := series.Clip(rng)
	latest, ok := clipped.Last()
	if !ok {
		return nil, fmt.Errorf("no price data for %s in %s", sec.Ticker, rng)
	}
	return &Analysis{
		Security: sec,
		Range:    rng,
		RiskFree: riskFree,
		Series:   clipped,
		Metrics:  ComputeMetrics(clipped.Closes(), riskFree),
		Latest:   latest,
	}, nil
}

// ShortPeriod reports whether the analysis covers less than a trading
// year, in which case annualized figures are projections.
func (a *Analysis) ShortPeriod() bool { return a.Series.Len() < TradingDays }

// LatestClose formats the latest closing price with its currency.
func (a *Analysis) LatestClose() Money { return M(a.Latest.Close, a.Security.Currency) }

// ComparisonEntry is one security inside a comparison.
type ComparisonEntry struct {
	Security Security
	Series   Series
	Metrics  Metrics
	// FinalBase100 is the end-of-range value of the price rebased to 100,
	// computed on the days shared by all compared securities.
	FinalBase100 float64
}

// Comparison is the multi-ETF report model.
type Comparison struct {
	Range    date.Range
	RiskFree float64
	Entries  []ComparisonEntry
	// Days and Base100 hold the aligned, rebased price paths, one column
	// per entry, covering only the days shared by every entry.
	Days        []date.Date
	Base100     [][]float64
	Correlation [][]float64
}

// NewComparison builds the comparison of several securities over a range.
// Series are matched to securities by position. At least two securities
// must have overlapping data in the range.
func NewComparison(secs []Security, series []Series, rng date.Range, riskFree float64) (*Comparison, error) {
	if len(secs) != len(series) {
		return nil, fmt.Errorf("got %d securities but %d series", len(secs), len(series))
	}
	if len(secs) < 2 {
		return nil, fmt.Errorf("comparison needs at least 2 securities, got %d", len(secs))
	}

	cmp := &Comparison{Range: rng, RiskFree: riskFree}
	clipped := make([]Series, 0, len(series))
	for i, sec := range secs {
		s := series[i].Clip(rng)
		if s.Len() < 2 {
			return nil, fmt.Errorf("not enough price data for %s in %s", sec.Ticker, rng)
		}
		clipped = append(clipped, s)
		cmp.Entries = append(cmp.Entries, ComparisonEntry{
			Security: sec,
			Series:   s,
			Metrics:  ComputeMetrics(s.Closes(), riskFree),
		})
	}

	days, closes := AlignCloses(clipped...)
	if len(days) < 2 {
		return nil, fmt.Errorf("the selected securities share fewer than 2 trading days in %s", rng)
	}
	cmp.Days = days

	returns := make([][]float64, len(closes))
	for i, column := range closes {
		normalized := Normalize(column)
		if normalized == nil {
			// A zero close at the start of the shared window has no base to
			// rebase on. Bad provider data, but storable.
			return nil, fmt.Errorf("cannot rebase %s to 100: its close on %s is zero",
				cmp.Entries[i].Security.Ticker, days[0])
		}
		cmp.Base100 = append(cmp.Base100, normalized)
		cmp.Entries[i].FinalBase100 = normalized[len(normalized)-1]
		returns[i] = Returns(column)
	}
	cmp.Correlation = CorrelationMatrix(returns)

	return cmp, nil
}

// Tickers returns the compared tickers, in order.
func (c *Comparison) Tickers() []string {
	tickers := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		tickers[i] = e.Security.Ticker
	}
	return tickers
}

// BestSharpe returns the entry with the highest Sharpe ratio.
func (c *Comparison) BestSharpe() ComparisonEntry {
	best := c.Entries[0]
	for _, e := range c.Entries[1:] {
		if !math.IsNaN(e.Metrics.Sharpe) && (math.IsNaN(best.Metrics.Sharpe) || e.Metrics.Sharpe > best.Metrics.Sharpe) {
			best = e
		}
	}
	return best
}

// ShallowestDrawdown returns the entry with the smallest maximum drawdown.
func (c *Comparison) ShallowestDrawdown() ComparisonEntry {
	best := c.Entries[0]
	for _, e := range c.Entries[1:] {
		if e.Metrics.MaxDrawdown > best.Metrics.MaxDrawdown {
			best = e
		}
	}
	return best
}

// RadarMetrics are the axes of the comparison radar chart.
var RadarMetrics = []string{"Annualized return", "Volatility", "Sharpe", "Sortino", "Max drawdown"}

// RadarRows normalizes each metric to [0, 1] across entries, one row per
// entry, following RadarMetrics order. Volatility and drawdown are
// inverted so that 1 is always the preferable end of the scale.
func (c *Comparison) RadarRows() [][]float64 {
	columns := [][]float64{
		collect(c.Entries, func(m Metrics) float64 { return m.AnnualizedReturn }),
		collect(c.Entries, func(m Metrics) float64 { return -m.Volatility }),
		collect(c.Entries, func(m Metrics) float64 { return m.Sharpe }),
		collect(c.Entries, func(m Metrics) float64 { return m.Sortino }),
		collect(c.Entries, func(m Metrics) float64 { return -math.Abs(m.MaxDrawdown) }),
	}
	for i, column := range columns {
		columns[i] = normalizeMinMax(column)
	}

	rows := make([][]float64, len(c.Entries))
	for i := range rows {
		row := make([]float64, len(columns))
		for j, column := range columns {
			row[j] = column[i]
		}
		rows[i] = row
	}
	return rows
}

func collect(entries []ComparisonEntry, metric func(Metrics) float64) []float64 {
	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = metric(e.Metrics)
	}
	return values
}

// normalizeMinMax rescales values to [0, 1]. All-equal values map to 1,
// NaN maps to 0.
func normalizeMinMax(values []float64) []float64 {
	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		min = math.Min(min, v)
		max = math.Max(max, v)
	}

	out := make([]float64, len(values))
	for i, v := range values {
		switch {
		case math.IsNaN(v):
			out[i] = 0
		case min == max:
			out[i] = 1
		default:
			out[i] = (v - min) / (max - min)
		}
	}
	return out
}
