package etfscope

import (
	"context"

	"github.com/etnz/etfscope/date"
)

// Response holds the data returned by a provider for a single security.
type Response struct {
	Quotes []Quote
}

// Provider fetches historical market data from an external source.
//
// Fetch receives the requested date range per ticker and returns a
// response per ticker it could serve. A ticker missing from the result is
// not an error: providers skip what they cannot resolve.
type Provider interface {
	Name() string
	Fetch(ctx context.Context, requests map[string]date.Range) (map[string]Response, error)
}
