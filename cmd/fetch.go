package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/etnz/etfscope"
	"github.com/etnz/etfscope/date"
	"github.com/etnz/etfscope/store"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	full bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "download price history from the configured provider" }
func (*fetchCmd) Usage() string {
	return `fetch [-full]

  Downloads the daily price history (with dividends and splits) of every
  configured ETF and stores it in the local database.

  The fetch is incremental: only days after the last stored quote are
  requested. Use -full to re-download the whole configured date range.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.full, "full", false, "Re-download the whole configured date range")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		return fail("%v", err)
	}
	if len(cfg.ETFs) == 0 {
		return fail("no ETF configured, add one with 'etfscope add'")
	}
	cfgRange, err := cfg.Range()
	if err != nil {
		return fail("%v", err)
	}

	db, err := OpenStore(cfg)
	if err != nil {
		return fail("%v", err)
	}
	defer db.Close()

	provider, err := Provider(cfg)
	if err != nil {
		return fail("%v", err)
	}

	// Declare securities first: prices reference them.
	for _, sec := range cfg.ETFs {
		if err := db.UpsertSecurity(ctx, sec); err != nil {
			return fail("%v", err)
		}
	}

	lastDays := make(map[string]date.Date, len(cfg.ETFs))
	for _, sec := range cfg.ETFs {
		last, err := db.LastDay(ctx, sec.Ticker)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return fail("%v", err)
		}
		lastDays[sec.Ticker] = last
	}

	requests := fetchRanges(cfg.ETFs, lastDays, c.full, cfgRange)
	if len(requests) == 0 {
		fmt.Println("All ETFs are up-to-date, nothing to fetch.")
		return subcommands.ExitSuccess
	}

	responses, err := provider.Fetch(ctx, requests)
	if err != nil {
		return fail("fetching from %s: %v", provider.Name(), err)
	}

	var saved int
	for ticker, response := range responses {
		if err := db.SaveQuotes(ctx, ticker, response.Quotes); err != nil {
			return fail("%v", err)
		}
		saved += len(response.Quotes)
		log.Printf("stored %d quotes for %s", len(response.Quotes), ticker)
	}

	fmt.Printf("✅ Fetched %d of %d ETFs from %s, stored %d quotes.\n",
		len(responses), len(requests), provider.Name(), saved)
	return subcommands.ExitSuccess
}

// fetchRanges computes the date range to request per ticker. Incremental
// fetches resume the day after the last stored quote; tickers already
// covering the configured range are omitted. A full fetch requests the
// whole configured range for every ticker.
func fetchRanges(etfs []etfscope.Security, lastDays map[string]date.Date, full bool, cfgRange date.Range) map[string]date.Range {
	requests := make(map[string]date.Range, len(etfs))
	for _, sec := range etfs {
		from := cfgRange.From
		if last, ok := lastDays[sec.Ticker]; ok && !full {
			from = last.Add(1)
			if from.After(cfgRange.To) {
				continue
			}
		}
		requests[sec.Ticker] = date.NewRange(from, cfgRange.To)
	}
	return requests
}
