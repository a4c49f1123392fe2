package eodhd

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/etnz/etfscope"
	"github.com/etnz/etfscope/date"
	"github.com/shopspring/decimal"
)

// This file contains functions to access the EODHD API endpoints.

// fetchPrices retrieves the daily OHLCV bars for a ticker.
//
//	https://eodhd.com/api/eod/IWDA.AS?api_token=...&fmt=json&from=2024-01-01&to=2024-02-01
//	[
//	  {"date": "2024-02-13", "open": 675.066, "high": 684.219, "low": 648.659,
//	   "close": 668.445, "adjusted_close": 67.705, "volume": 0},
//	  ...
//	]
func fetchPrices(client *http.Client, apiKey, ticker string, rng date.Range) ([]etfscope.Quote, error) {
	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		url.PathEscape(ticker), apiKey, rng.From, rng.To)

	type bar struct {
		Date   date.Date       `json:"date"`
		Open   decimal.Decimal `json:"open"`
		High   decimal.Decimal `json:"high"`
		Low    decimal.Decimal `json:"low"`
		Close  decimal.Decimal `json:"close"`
		Volume int64           `json:"volume"`
	}

	bars := make([]bar, 0)
	if err := etfscope.JSONGet(client, addr, &bars); err != nil {
		return nil, fmt.Errorf("failed to fetch eod prices for %s: %w", ticker, err)
	}

	quotes := make([]etfscope.Quote, 0, len(bars))
	for _, b := range bars {
		quotes = append(quotes, etfscope.Quote{
			Day:    b.Date,
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: b.Volume,
		})
	}
	return quotes, nil
}

// fetchDividends retrieves the dividend history for a ticker.
func fetchDividends(client *http.Client, apiKey, ticker string, rng date.Range) (map[date.Date]decimal.Decimal, error) {
	addr := fmt.Sprintf("https://eodhd.com/api/div/%s?fmt=json&api_token=%s&from=%s&to=%s",
		url.PathEscape(ticker), apiKey, rng.From, rng.To)

	type apiDividend struct {
		Date  date.Date       `json:"date"` // ex-dividend date
		Value decimal.Decimal `json:"value"`
	}

	content := make([]apiDividend, 0)
	if err := etfscope.JSONGet(client, addr, &content); err != nil {
		return nil, fmt.Errorf("failed to fetch dividends for %s: %w", ticker, err)
	}

	dividends := make(map[date.Date]decimal.Decimal, len(content))
	for _, d := range content {
		dividends[d.Date] = d.Value
	}
	return dividends, nil
}

// fetchSplits retrieves the split history for a ticker. The API reports
// splits as a "num/den" string; the result maps days to split factors.
func fetchSplits(client *http.Client, apiKey, ticker string, rng date.Range) (map[date.Date]decimal.Decimal, error) {
	addr := fmt.Sprintf("https://eodhd.com/api/splits/%s?fmt=json&api_token=%s&from=%s&to=%s",
		url.PathEscape(ticker), apiKey, rng.From, rng.To)

	type apiSplit struct {
		Date  date.Date `json:"date"`
		Split string    `json:"split"`
	}

	content := make([]apiSplit, 0)
	if err := etfscope.JSONGet(client, addr, &content); err != nil {
		return nil, fmt.Errorf("failed to fetch splits for %s: %w", ticker, err)
	}

	splits := make(map[date.Date]decimal.Decimal, len(content))
	for _, s := range content {
		factor, err := parseSplitFactor(s.Split)
		if err != nil {
			return nil, fmt.Errorf("split for %s on %s: %w", ticker, s.Date, err)
		}
		splits[s.Date] = factor
	}
	return splits, nil
}

// parseSplitFactor converts an EODHD split ratio like "2.000000/1.000000"
// into its factor.
func parseSplitFactor(ratio string) (decimal.Decimal, error) {
	parts := strings.Split(ratio, "/")
	if len(parts) != 2 {
		return decimal.Zero, fmt.Errorf("invalid split format %q", ratio)
	}
	num, err := decimal.NewFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid numerator in split %q: %w", ratio, err)
	}
	den, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid denominator in split %q: %w", ratio, err)
	}
	if den.IsZero() {
		return decimal.Zero, fmt.Errorf("zero denominator in split %q", ratio)
	}
	return num.Div(den), nil
}
