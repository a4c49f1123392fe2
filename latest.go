package etfscope

import (
	"fmt"
	"math"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "chart": {
	        "result": [
	            {
	                "meta": {
	                    "currency": "USD",
	                    "symbol": "SPY",
	                    "regularMarketPrice": 563.98,
	                    "regularMarketTime": 1724443200
	                }
	            }
	        ],
	        "error": null
	    }
	}
*/

// LatestPrice fetches the most recent intraday price for a ticker.
//
// It intentionally bypasses the disk cache: the point is the live quote,
// not the daily history.
func LatestPrice(ticker string) (price float64, currency string, err error) {
	addr := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?range=1d&interval=1d", url.PathEscape(ticker))

	var jobj any
	if err := JSONGet(new(http.Client), addr, &jobj); err != nil {
		return math.NaN(), "", fmt.Errorf("error fetching latest quote for %q: %w", ticker, err)
	}

	value, err := jsonpath.Get("$.chart.result[0].meta.regularMarketPrice", jobj)
	if err != nil {
		return math.NaN(), "", fmt.Errorf("no market price in quote response for %q: %w", ticker, err)
	}
	price, ok := value.(float64)
	if !ok {
		return math.NaN(), "", fmt.Errorf("unexpected market price type %T for %q", value, ticker)
	}

	// currency is informative only, tolerate its absence
	if cur, err := jsonpath.Get("$.chart.result[0].meta.currency", jobj); err == nil {
		currency, _ = cur.(string)
	}

	return price, currency, nil
}
