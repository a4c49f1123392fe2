package chart

import (
	"bytes"
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

func testComparison(t *testing.T) *etfscope.Comparison {
	t.Helper()
	c, err := etfscope.NewComparison(
		[]etfscope.Security{{Ticker: "SPY"}, {Ticker: "QQQ"}},
		[]etfscope.Series{
			series("SPY", 100, 102, 101, 104),
			series("QQQ", 200, 206, 204, 212),
		},
		date.NewRange(day(1), day(31)), 0.02)
	if err != nil {
		t.Fatalf("new comparison: %v", err)
	}
	return c
}

func TestWriteAnalysisPage(t *testing.T) {
	a, err := etfscope.NewAnalysis(etfscope.Security{Ticker: "SPY"},
		series("SPY", 100, 102, 101, 104),
		date.NewRange(day(1), day(31)), 0.02)
	if err != nil {
		t.Fatalf("new analysis: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteAnalysisPage(&buf, a); err != nil {
		t.Fatalf("write analysis page: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<html>", "echarts", "SPY", "2024-01-02",
		"cumulative return",
		"rolling volatility",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("analysis page misses %q", want)
		}
	}
}

func TestWriteAnalysisPageSinglePoint(t *testing.T) {
	a, err := etfscope.NewAnalysis(etfscope.Security{Ticker: "SPY"},
		series("SPY", 100),
		date.NewRange(day(1), day(31)), 0.02)
	if err != nil {
		t.Fatalf("new analysis: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteAnalysisPage(&buf, a); err != nil {
		t.Fatalf("write analysis page: %v", err)
	}
	if strings.Contains(buf.String(), "cumulative return") {
		t.Error("a one-point series has no return to chart")
	}
}

func TestWriteComparisonPage(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteComparisonPage(&buf, testComparison(t)); err != nil {
		t.Fatalf("write comparison page: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"echarts", "SPY", "QQQ",
		"Risk vs return",
		"Correlation of daily returns",
		"Metric profile",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("comparison page misses %q", want)
		}
	}
}

func TestMetricsRadarAxes(t *testing.T) {
	radar := MetricsRadar(testComparison(t))

	var buf bytes.Buffer
	if err := radar.Render(&buf); err != nil {
		t.Fatalf("render radar: %v", err)
	}
	for _, axis := range etfscope.RadarMetrics {
		if !strings.Contains(buf.String(), axis) {
			t.Errorf("radar misses axis %q", axis)
		}
	}
}
