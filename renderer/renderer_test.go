package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/etfscope"
	"github.com/etnz/etfscope/date"
	"github.com/shopspring/decimal"
)

func day(d int) date.Date { return date.New(2024, time.January, d) }

func series(ticker string, closes ...float64) etfscope.Series {
	quotes := make([]etfscope.Quote, len(closes))
	for i, c := range closes {
		quotes[i] = etfscope.Quote{Day: day(i + 1), Close: decimal.NewFromFloat(c)}
	}
	return etfscope.NewSeries(ticker, quotes)
}

func TestAnalysisMarkdown(t *testing.T) {
	spy := etfscope.Security{Ticker: "SPY", Name: "SPDR S&P 500", Theme: "broad", Currency: "USD"}
	a, err := etfscope.NewAnalysis(spy,
		series("SPY", 100, 102, 101, 104, 103),
		date.NewRange(day(1), day(31)), 0.02)
	if err != nil {
		t.Fatalf("new analysis: %v", err)
	}

	got := AnalysisMarkdown(a)

	for _, want := range []string{
		"# Analysis of SPY - SPDR S&P 500",
		"Theme: broad",
		"2024-01-01..2024-01-31",
		"## Key metrics",
		"Total return",
		"+3.00%", // 103/100 - 1
		"Sharpe ratio",
		"Max drawdown",
		"## Recent quotes",
		"2024-01-05",
		"annualized figures are projections",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("analysis report misses %q:\n%s", want, got)
		}
	}
}

func TestAnalysisMarkdownLongPeriodHasNoCaption(t *testing.T) {
	closes := make([]float64, etfscope.TradingDays+10)
	for i := range closes {
		closes[i] = 100 + float64(i%7)
	}
	quotes := make([]etfscope.Quote, len(closes))
	for i, c := range closes {
		quotes[i] = etfscope.Quote{Day: day(1).Add(i), Close: decimal.NewFromFloat(c)}
	}
	s := etfscope.NewSeries("SPY", quotes)

	a, err := etfscope.NewAnalysis(etfscope.Security{Ticker: "SPY"},
		s, date.NewRange(day(1), day(1).Add(len(closes))), 0.02)
	if err != nil {
		t.Fatalf("new analysis: %v", err)
	}
	if got := AnalysisMarkdown(a); strings.Contains(got, "projections") {
		t.Error("a full trading year should not carry the projection caption")
	}
}

func TestComparisonMarkdown(t *testing.T) {
	secs := []etfscope.Security{
		{Ticker: "SPY", Name: "SPDR S&P 500"},
		{Ticker: "QQQ", Name: "Invesco QQQ"},
	}
	c, err := etfscope.NewComparison(secs,
		[]etfscope.Series{
			series("SPY", 100, 102, 101, 104),
			series("QQQ", 200, 206, 204, 212),
		},
		date.NewRange(day(1), day(31)), 0.02)
	if err != nil {
		t.Fatalf("new comparison: %v", err)
	}

	got := ComparisonMarkdown(c)

	for _, want := range []string{
		"# Comparison of SPY, QQQ",
		"4 shared trading days",
		"Risk-free rate: 2.00%",
		"## Metrics",
		"SPY",
		"QQQ",
		"## Base-100 performance",
		"100.00",
		"## Correlation of daily returns",
		"1.00",
		"## Highlights",
		"Best risk-adjusted return",
		"Shallowest drawdown",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("comparison report misses %q:\n%s", want, got)
		}
	}
}
