package yahoo

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/etnz/etfscope"
	"github.com/etnz/etfscope/date"
	"github.com/shopspring/decimal"
)

// This file contains functions to access the Yahoo Finance chart API.

// fetchDaily retrieves the daily quotes for one ticker over a date range.
//
//	https://query1.finance.yahoo.com/v8/finance/chart/SPY?period1=...&period2=...&interval=1d&events=div%7Csplit
//
// The response carries parallel arrays indexed by timestamp:
//
//	{
//	  "chart": {
//	    "result": [{
//	      "timestamp": [1704205800, ...],
//	      "indicators": {"quote": [{"open": [...], "high": [...], "low": [...], "close": [...], "volume": [...]}]},
//	      "events": {
//	        "dividends": {"1704205800": {"amount": 1.57, "date": 1704205800}},
//	        "splits": {"1704205800": {"numerator": 4, "denominator": 1, "date": 1704205800}}
//	      }
//	    }],
//	    "error": null
//	  }
//	}
func fetchDaily(client *http.Client, ticker string, rng date.Range) ([]etfscope.Quote, error) {
	// period2 is exclusive, push it one day past the range end.
	addr := fmt.Sprintf(
		"https://query1.finance.yahoo.com/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d&events=div%%7Csplit",
		url.PathEscape(ticker), rng.From.Unix(), rng.To.Add(1).Unix())

	var payload chartResponse
	if err := etfscope.JSONGet(client, addr, &payload); err != nil {
		return nil, fmt.Errorf("failed to fetch chart for %s: %w", ticker, err)
	}
	return parseChart(ticker, &payload)
}

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"chart"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type chartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []chartQuote `json:"quote"`
	} `json:"indicators"`
	Events struct {
		Dividends map[string]struct {
			Amount float64 `json:"amount"`
			Date   int64   `json:"date"`
		} `json:"dividends"`
		Splits map[string]struct {
			Numerator   float64 `json:"numerator"`
			Denominator float64 `json:"denominator"`
			Date        int64   `json:"date"`
		} `json:"splits"`
	} `json:"events"`
}

// arrays use pointers: the API reports missing values as null.
type chartQuote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

// parseChart turns a chart payload into quotes, skipping days with a null
// close.
func parseChart(ticker string, payload *chartResponse) ([]etfscope.Quote, error) {
	if payload.Chart.Error != nil {
		return nil, fmt.Errorf("chart API error for %s: %s (%s)",
			ticker, payload.Chart.Error.Description, payload.Chart.Error.Code)
	}
	if len(payload.Chart.Result) == 0 {
		return nil, fmt.Errorf("empty chart result for %s", ticker)
	}

	result := payload.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no quote indicators for %s", ticker)
	}
	bars := result.Indicators.Quote[0]

	dividends := make(map[date.Date]decimal.Decimal, len(result.Events.Dividends))
	for _, d := range result.Events.Dividends {
		dividends[date.FromUnix(d.Date)] = decimal.NewFromFloat(d.Amount)
	}
	splits := make(map[date.Date]decimal.Decimal, len(result.Events.Splits))
	for _, s := range result.Events.Splits {
		if s.Denominator == 0 {
			continue
		}
		splits[date.FromUnix(s.Date)] = decimal.NewFromFloat(s.Numerator / s.Denominator)
	}

	quotes := make([]etfscope.Quote, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(bars.Close) || bars.Close[i] == nil {
			continue // holiday or missing bar
		}
		day := date.FromUnix(ts)
		q := etfscope.Quote{
			Day:   day,
			Close: decimal.NewFromFloat(*bars.Close[i]),
		}
		if i < len(bars.Open) && bars.Open[i] != nil {
			q.Open = decimal.NewFromFloat(*bars.Open[i])
		}
		if i < len(bars.High) && bars.High[i] != nil {
			q.High = decimal.NewFromFloat(*bars.High[i])
		}
		if i < len(bars.Low) && bars.Low[i] != nil {
			q.Low = decimal.NewFromFloat(*bars.Low[i])
		}
		if i < len(bars.Volume) && bars.Volume[i] != nil {
			q.Volume = *bars.Volume[i]
		}
		if amount, ok := dividends[day]; ok {
			q.Dividend = amount
		}
		if factor, ok := splits[day]; ok {
			q.Split = factor
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}
