package etfscope

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/etnz/etfscope/date"
)

func day(n int) date.Date { return date.New(2024, time.January, n) }

func growthSeries(ticker string, start float64, dailyGrowth float64, days int) Series {
	quotes := make([]Quote, 0, days)
	price := start
	for i := 1; i <= days; i++ {
		quotes = append(quotes, quoteOn(day(i), price))
		price *= 1 + dailyGrowth
	}
	return NewSeries(ticker, quotes)
}

func TestNewAnalysis(t *testing.T) {
	sec := Security{Ticker: "SPY", Name: "SPDR S&P 500", Currency: "USD"}
	series := growthSeries("SPY", 100, 0.01, 10)

	a, err := NewAnalysis(sec, series, date.NewRange(day(1), day(10)), 0.02)
	if err != nil {
		t.Fatalf("NewAnalysis: %v", err)
	}

	if a.Series.Len() != 10 {
		t.Errorf("series length = %d, want 10", a.Series.Len())
	}
	if a.Metrics.TotalReturn <= 0 {
		t.Errorf("TotalReturn = %v, want positive for a rising series", a.Metrics.TotalReturn)
	}
	if !a.ShortPeriod() {
		t.Error("10 days should count as a short period")
	}
	if a.Latest.Day != day(10) {
		t.Errorf("Latest.Day = %v, want %v", a.Latest.Day, day(10))
	}
}

func TestNewAnalysisEmptyRange(t *testing.T) {
	sec := Security{Ticker: "SPY"}
	series := growthSeries("SPY", 100, 0.01, 5)

	_, err := NewAnalysis(sec, series, date.NewRange(day(20), day(25)), 0.02)
	if err == nil {
		t.Fatal("expected an error for a range with no data")
	}
}

func TestNewComparison(t *testing.T) {
	secs := []Security{
		{Ticker: "AAA", Name: "Alpha"},
		{Ticker: "BBB", Name: "Beta"},
	}
	series := []Series{
		growthSeries("AAA", 100, 0.01, 10),
		growthSeries("BBB", 50, 0.005, 10),
	}

	cmp, err := NewComparison(secs, series, date.NewRange(day(1), day(10)), 0.02)
	if err != nil {
		t.Fatalf("NewComparison: %v", err)
	}

	if len(cmp.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(cmp.Entries))
	}
	if len(cmp.Days) != 10 {
		t.Errorf("aligned days = %d, want 10", len(cmp.Days))
	}
	for i, column := range cmp.Base100 {
		if !almostEqual(column[0], 100, 1e-9) {
			t.Errorf("Base100[%d] starts at %v, want 100", i, column[0])
		}
	}
	// AAA compounds faster, so it must finish higher on the common base.
	if cmp.Entries[0].FinalBase100 <= cmp.Entries[1].FinalBase100 {
		t.Errorf("FinalBase100: AAA %v should beat BBB %v",
			cmp.Entries[0].FinalBase100, cmp.Entries[1].FinalBase100)
	}
	// Both series grow deterministically: daily returns are constant, so
	// correlation is undefined (zero variance), reported as NaN.
	if !math.IsNaN(cmp.Correlation[0][1]) {
		t.Errorf("Correlation of constant-return series = %v, want NaN", cmp.Correlation[0][1])
	}
	if cmp.Correlation[0][0] != 1 {
		t.Error("correlation diagonal should be 1")
	}
}

func TestNewComparisonAlignsMissingDays(t *testing.T) {
	secs := []Security{{Ticker: "AAA"}, {Ticker: "BBB"}}

	a := NewSeries("AAA", []Quote{
		quoteOn(day(1), 10), quoteOn(day(2), 11), quoteOn(day(3), 12), quoteOn(day(4), 13),
	})
	b := NewSeries("BBB", []Quote{
		quoteOn(day(1), 20), quoteOn(day(3), 21), quoteOn(day(4), 22),
	})

	cmp, err := NewComparison(secs, []Series{a, b}, date.NewRange(day(1), day(4)), 0)
	if err != nil {
		t.Fatalf("NewComparison: %v", err)
	}
	if len(cmp.Days) != 3 {
		t.Errorf("aligned days = %d, want 3 (day 2 dropped)", len(cmp.Days))
	}
}

func TestNewComparisonErrors(t *testing.T) {
	secs := []Security{{Ticker: "AAA"}, {Ticker: "BBB"}}

	t.Run("Single security", func(t *testing.T) {
		_, err := NewComparison(secs[:1], []Series{growthSeries("AAA", 100, 0.01, 5)}, date.NewRange(day(1), day(5)), 0)
		if err == nil {
			t.Fatal("expected an error for a single security")
		}
	})

	t.Run("No overlap", func(t *testing.T) {
		a := NewSeries("AAA", []Quote{quoteOn(day(1), 10), quoteOn(day(2), 11)})
		b := NewSeries("BBB", []Quote{quoteOn(day(3), 20), quoteOn(day(4), 21)})
		_, err := NewComparison(secs, []Series{a, b}, date.NewRange(day(1), day(4)), 0)
		if err == nil {
			t.Fatal("expected an error when series share no days")
		}
	})

	t.Run("Mismatched lengths", func(t *testing.T) {
		_, err := NewComparison(secs, []Series{growthSeries("AAA", 100, 0.01, 5)}, date.NewRange(day(1), day(5)), 0)
		if err == nil {
			t.Fatal("expected an error for mismatched securities and series")
		}
	})

	t.Run("Zero first close", func(t *testing.T) {
		// A zero close is storable, so rebasing to 100 must fail cleanly.
		a := NewSeries("AAA", []Quote{quoteOn(day(1), 0), quoteOn(day(2), 10), quoteOn(day(3), 11)})
		b := NewSeries("BBB", []Quote{quoteOn(day(1), 5), quoteOn(day(2), 6), quoteOn(day(3), 7)})
		_, err := NewComparison(secs, []Series{a, b}, date.NewRange(day(1), day(3)), 0)
		if err == nil {
			t.Fatal("expected an error when a first shared close is zero")
		}
		if !strings.Contains(err.Error(), "AAA") {
			t.Errorf("error %q should name the offending ticker", err)
		}
	})
}

func TestRadarRows(t *testing.T) {
	secs := []Security{{Ticker: "AAA"}, {Ticker: "BBB"}}
	series := []Series{
		NewSeries("AAA", []Quote{
			quoteOn(day(1), 100), quoteOn(day(2), 103), quoteOn(day(3), 101), quoteOn(day(4), 106),
		}),
		NewSeries("BBB", []Quote{
			quoteOn(day(1), 100), quoteOn(day(2), 99), quoteOn(day(3), 101), quoteOn(day(4), 100),
		}),
	}

	cmp, err := NewComparison(secs, series, date.NewRange(day(1), day(4)), 0)
	if err != nil {
		t.Fatalf("NewComparison: %v", err)
	}

	rows := cmp.RadarRows()
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	for i, row := range rows {
		if len(row) != len(RadarMetrics) {
			t.Fatalf("row %d has %d values, want %d", i, len(row), len(RadarMetrics))
		}
		for j, v := range row {
			if v < 0 || v > 1 {
				t.Errorf("rows[%d][%d] = %v, want within [0, 1]", i, j, v)
			}
		}
	}
	// AAA returns more: its annualized-return axis should be the max.
	if rows[0][0] != 1 {
		t.Errorf("AAA annualized-return axis = %v, want 1", rows[0][0])
	}
}

func TestBestSharpeAndDrawdown(t *testing.T) {
	secs := []Security{{Ticker: "AAA"}, {Ticker: "BBB"}}
	series := []Series{
		NewSeries("AAA", []Quote{
			quoteOn(day(1), 100), quoteOn(day(2), 103), quoteOn(day(3), 101), quoteOn(day(4), 106),
		}),
		NewSeries("BBB", []Quote{
			quoteOn(day(1), 100), quoteOn(day(2), 90), quoteOn(day(3), 95), quoteOn(day(4), 92),
		}),
	}

	cmp, err := NewComparison(secs, series, date.NewRange(day(1), day(4)), 0)
	if err != nil {
		t.Fatalf("NewComparison: %v", err)
	}

	if got := cmp.BestSharpe().Security.Ticker; got != "AAA" {
		t.Errorf("BestSharpe = %s, want AAA", got)
	}
	if got := cmp.ShallowestDrawdown().Security.Ticker; got != "AAA" {
		t.Errorf("ShallowestDrawdown = %s, want AAA", got)
	}
}
