// Package yahoo fetches historical daily prices from the Yahoo Finance
// chart API.
package yahoo

import (
	"context"
	"log"
	"net/http"

	"github.com/etnz/etfscope"
	"github.com/etnz/etfscope/date"
)

// Provider implements etfscope.Provider against Yahoo Finance.
type Provider struct {
	client *http.Client
}

// New returns a Yahoo Finance provider. Responses are cached on disk for
// a day, the natural refresh rate of end-of-day data.
func New() *Provider {
	return &Provider{client: etfscope.NewDailyCachingClient()}
}

// Name implements etfscope.Provider.
func (p *Provider) Name() string { return "yahoo" }

// Fetch retrieves daily quotes for each requested ticker and range.
//
// Tickers that fail are logged and skipped, so one bad symbol does not
// lose the data of the others.
func (p *Provider) Fetch(ctx context.Context, requests map[string]date.Range) (map[string]etfscope.Response, error) {
	responses := make(map[string]etfscope.Response, len(requests))
	for ticker, rng := range requests {
		if err := ctx.Err(); err != nil {
			return responses, err
		}
		quotes, err := fetchDaily(p.client, ticker, rng)
		if err != nil {
			log.Printf("yahoo: skipping %s: %v", ticker, err)
			continue
		}
		if len(quotes) == 0 {
			log.Printf("yahoo: no data for %s in %s", ticker, rng)
			continue
		}
		responses[ticker] = etfscope.Response{Quotes: quotes}
	}
	return responses, nil
}

var _ etfscope.Provider = (*Provider)(nil)
