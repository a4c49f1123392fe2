// Package eodhd fetches historical daily prices from the EOD Historical
// Data API (eodhd.com).
//
// Tickers use the EODHD format "SYMBOL.EXCHANGECODE" (e.g. "IWDA.AS",
// "SPY.US"); a bare symbol defaults to the US exchange on their side.
package eodhd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/etnz/etfscope"
	"github.com/etnz/etfscope/date"
)

// Provider implements etfscope.Provider against eodhd.com.
type Provider struct {
	apiKey string
	client *http.Client
}

// New returns an EODHD provider. An empty apiKey falls back to the
// EODHD_API_KEY environment variable.
func New(apiKey string) (*Provider, error) {
	if apiKey == "" {
		apiKey = os.Getenv("EODHD_API_KEY")
	}
	if apiKey == "" {
		return nil, errors.New("EODHD API key is not set: use -eodhd-api-key or the EODHD_API_KEY environment variable")
	}
	return &Provider{apiKey: apiKey, client: etfscope.NewDailyCachingClient()}, nil
}

// Name implements etfscope.Provider.
func (p *Provider) Name() string { return "eodhd" }

// Fetch retrieves daily quotes, dividends and splits for each requested
// ticker. Tickers that fail are logged and skipped.
func (p *Provider) Fetch(ctx context.Context, requests map[string]date.Range) (map[string]etfscope.Response, error) {
	responses := make(map[string]etfscope.Response, len(requests))
	for ticker, rng := range requests {
		if err := ctx.Err(); err != nil {
			return responses, err
		}
		quotes, err := p.fetchTicker(ticker, rng)
		if err != nil {
			log.Printf("eodhd: skipping %s: %v", ticker, err)
			continue
		}
		if len(quotes) == 0 {
			log.Printf("eodhd: no data for %s in %s", ticker, rng)
			continue
		}
		responses[ticker] = etfscope.Response{Quotes: quotes}
	}
	return responses, nil
}

// fetchTicker assembles the quotes of one ticker from the three EODHD
// endpoints (prices, dividends, splits).
func (p *Provider) fetchTicker(ticker string, rng date.Range) ([]etfscope.Quote, error) {
	quotes, err := fetchPrices(p.client, p.apiKey, ticker, rng)
	if err != nil {
		return nil, err
	}

	series := etfscope.NewSeries(ticker, quotes)

	dividends, err := fetchDividends(p.client, p.apiKey, ticker, rng)
	if err != nil {
		return nil, err
	}
	splits, err := fetchSplits(p.client, p.apiKey, ticker, rng)
	if err != nil {
		return nil, err
	}

	// dividends and splits land on trading days; attach them to the
	// matching quote and ignore the rest.
	for i := range series.Quotes {
		day := series.Quotes[i].Day
		if amount, ok := dividends[day]; ok {
			series.Quotes[i].Dividend = amount
		}
		if factor, ok := splits[day]; ok {
			series.Quotes[i].Split = factor
		}
	}
	return series.Quotes, nil
}

var _ etfscope.Provider = (*Provider)(nil)
