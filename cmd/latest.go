package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/etfscope"
	"github.com/google/subcommands"
)

type latestCmd struct{}

func (*latestCmd) Name() string     { return "latest" }
func (*latestCmd) Synopsis() string { return "show the live market price of tickers" }
func (*latestCmd) Usage() string {
	return `latest <ticker...>

  Fetches the most recent intraday price of each ticker, bypassing the
  local database. Without arguments, all configured ETFs are shown.
`
}

func (*latestCmd) SetFlags(*flag.FlagSet) {}

func (c *latestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tickers := f.Args()
	if len(tickers) == 0 {
		cfg, err := LoadConfig()
		if err != nil {
			return fail("%v", err)
		}
		for _, sec := range cfg.ETFs {
			tickers = append(tickers, sec.Ticker)
		}
	}
	if len(tickers) == 0 {
		return fail("no ticker given and none configured")
	}

	status := subcommands.ExitSuccess
	for _, ticker := range tickers {
		price, currency, err := etfscope.LatestPrice(ticker)
		if err != nil {
			fail("%v", err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%-10s %10.2f %s\n", ticker, price, currency)
	}
	return status
}
