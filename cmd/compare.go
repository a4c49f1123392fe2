package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/etfscope"
	"github.com/etnz/etfscope/chart"
	"github.com/etnz/etfscope/date"
	"github.com/etnz/etfscope/renderer"
	"github.com/etnz/etfscope/store"
	"github.com/google/subcommands"
)

type compareCmd struct {
	periodFlags
	theme    string
	htmlFile string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the risk/return profile of several ETFs" }
func (*compareCmd) Usage() string {
	return `compare [-d <date>] [-p <lookback>] [-rf <rate>] [-theme <theme>] [-html <file>] [<ticker>...]

  Compares two or more ETFs over the lookback window: aligned base-100
  performance, metric table, correlation of daily returns and best in
  class callouts. Without tickers, all configured ETFs are compared;
  -theme restricts the selection to one theme.

Examples:
  $ etfscope compare SPY QQQ
  $ etfscope compare -theme tech -p 3y -html tech.html
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	c.periodFlags.set(f)
	f.StringVar(&c.theme, "theme", "", "Compare the ETFs of this theme")
	f.StringVar(&c.htmlFile, "html", "", "Write the chart page to this file")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		return fail("%v", err)
	}
	rng, riskFree, err := c.resolve(cfg)
	if err != nil {
		return fail("%v", err)
	}

	db, err := OpenStore(cfg)
	if err != nil {
		return fail("%v", err)
	}
	defer db.Close()

	secs, err := c.selectSecurities(ctx, db, cfg, f.Args())
	if err != nil {
		return fail("%v", err)
	}

	comparison, err := loadComparison(ctx, db, secs, rng, riskFree)
	if err != nil {
		return fail("%v (did you run 'etfscope fetch'?)", err)
	}

	printMarkdown(renderer.ComparisonMarkdown(comparison))

	if c.htmlFile != "" {
		if err := writeChartPage(c.htmlFile, func(f *os.File) error {
			return chart.WriteComparisonPage(f, comparison)
		}); err != nil {
			return fail("%v", err)
		}
		fmt.Printf("Chart page written to %s\n", c.htmlFile)
	}
	return subcommands.ExitSuccess
}

// selectSecurities resolves the compared securities from the arguments,
// the -theme flag, or the whole configuration. Tickers and themes
// missing from the config fall back to the database.
func (c *compareCmd) selectSecurities(ctx context.Context, db *store.Store, cfg etfscope.Config, tickers []string) ([]etfscope.Security, error) {
	if len(tickers) > 0 && c.theme != "" {
		return nil, fmt.Errorf("give tickers or -theme, not both")
	}

	var secs []etfscope.Security
	switch {
	case len(tickers) > 0:
		for _, ticker := range tickers {
			sec, ok := cfg.Security(ticker)
			if !ok {
				var err error
				if sec, err = db.Security(ctx, ticker); err != nil {
					sec = etfscope.Security{Ticker: ticker}
				}
			}
			secs = append(secs, sec)
		}
	case c.theme != "":
		for _, sec := range cfg.ETFs {
			if sec.Theme == c.theme {
				secs = append(secs, sec)
			}
		}
		if len(secs) == 0 {
			var err error
			secs, err = db.SecuritiesByTheme(ctx, c.theme)
			if err != nil {
				return nil, err
			}
		}
		if len(secs) == 0 {
			themes, err := db.Themes(ctx)
			if err == nil && len(themes) > 0 {
				return nil, fmt.Errorf("no ETF has theme %q (known themes: %s)", c.theme, strings.Join(themes, ", "))
			}
			return nil, fmt.Errorf("no ETF has theme %q", c.theme)
		}
	default:
		secs = cfg.ETFs
	}

	if len(secs) < 2 {
		return nil, fmt.Errorf("a comparison needs at least 2 ETFs, got %d", len(secs))
	}
	return secs, nil
}

// loadComparison loads the stored prices of each security and builds the
// comparison model.
func loadComparison(ctx context.Context, db *store.Store, secs []etfscope.Security, rng date.Range, riskFree float64) (*etfscope.Comparison, error) {
	series := make([]etfscope.Series, 0, len(secs))
	for _, sec := range secs {
		s, err := db.Prices(ctx, sec.Ticker, rng)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}
	return etfscope.NewComparison(secs, series, rng, riskFree)
}
