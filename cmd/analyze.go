package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/etfscope"
	"github.com/etnz/etfscope/chart"
	"github.com/etnz/etfscope/date"
	"github.com/etnz/etfscope/renderer"
	"github.com/google/subcommands"
)

// periodFlags are the window/rate flags shared by analyze and compare.
type periodFlags struct {
	end      string
	lookback string
	riskFree float64
}

func (p *periodFlags) set(f *flag.FlagSet) {
	f.StringVar(&p.end, "d", "0d", "End date of the analysis window (accepts relative dates like -30d)")
	f.StringVar(&p.lookback, "p", "1y", "Lookback period: 1m, 3m, 6m, ytd, 1y, 3y, 5y or max")
	f.Float64Var(&p.riskFree, "rf", -1, "Annual risk-free rate override (fraction, e.g. 0.03)")
}

// resolve turns the flags into a date range and a risk-free rate,
// defaulting the rate to the configured one.
func (p *periodFlags) resolve(cfg etfscope.Config) (date.Range, float64, error) {
	end, err := date.Parse(p.end)
	if err != nil {
		return date.Range{}, 0, fmt.Errorf("-d: %w", err)
	}
	lookback, err := date.ParseLookback(p.lookback)
	if err != nil {
		return date.Range{}, 0, fmt.Errorf("-p: %w", err)
	}
	riskFree := cfg.RiskFreeRate
	if p.riskFree >= 0 {
		riskFree = p.riskFree
	}
	return lookback.RangeEnding(end), riskFree, nil
}

type analyzeCmd struct {
	periodFlags
	htmlFile string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "analyze the risk/return profile of one ETF" }
func (*analyzeCmd) Usage() string {
	return `analyze [-d <date>] [-p <lookback>] [-rf <rate>] [-html <file>] <ticker>

  Computes the risk and return metrics of one ETF over the lookback
  window and prints the analysis report. With -html, also writes an
  interactive chart page.

Examples:
  $ etfscope analyze SPY
  $ etfscope analyze -p 3y -html spy.html SPY
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	c.periodFlags.set(f)
	f.StringVar(&c.htmlFile, "html", "", "Write the chart page to this file")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}
	ticker := f.Arg(0)

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

	// analyzing a stored but unconfigured ticker still works
	sec, ok := cfg.Security(ticker)
	if !ok {
		sec, err = db.Security(ctx, ticker)
		if err != nil {
			sec = etfscope.Security{Ticker: ticker}
		}
	}
	series, err := db.Prices(ctx, ticker, rng)
	if err != nil {
		return fail("%v", err)
	}

	analysis, err := etfscope.NewAnalysis(sec, series, rng, riskFree)
	if err != nil {
		return fail("%v (did you run 'etfscope fetch'?)", err)
	}

	printMarkdown(renderer.AnalysisMarkdown(analysis))

	if c.htmlFile != "" {
		if err := writeChartPage(c.htmlFile, func(f *os.File) error {
			return chart.WriteAnalysisPage(f, analysis)
		}); err != nil {
			return fail("%v", err)
		}
		fmt.Printf("Chart page written to %s\n", c.htmlFile)
	}
	return subcommands.ExitSuccess
}

// writeChartPage writes one HTML chart page through the given render
// callback.
func writeChartPage(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create chart page: %w", err)
	}
	defer f.Close()
	return render(f)
}
