package cmd

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/etfscope/store"
	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

type listCmd struct {
	theme string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the configured ETFs and their stored coverage" }
func (*listCmd) Usage() string {
	return `list [-theme <theme>]

  Lists the configured ETFs with the date range and number of quotes
  stored locally for each.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.theme, "theme", "", "Only list ETFs of this theme")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		return fail("%v", err)
	}
	db, err := OpenStore(cfg)
	if err != nil {
		return fail("%v", err)
	}
	defer db.Close()

	rows := make([][]string, 0, len(cfg.ETFs))
	for _, sec := range cfg.ETFs {
		if c.theme != "" && sec.Theme != c.theme {
			continue
		}
		coverage, count := "no data yet", ""
		rng, n, err := db.Coverage(ctx, sec.Ticker)
		switch {
		case errors.Is(err, store.ErrNotFound):
		case err != nil:
			return fail("%v", err)
		default:
			coverage, count = rng.String(), fmt.Sprintf("%d", n)
		}
		rows = append(rows, []string{sec.Ticker, sec.Name, sec.Theme, coverage, count})
	}
	if len(rows) == 0 {
		fmt.Println("No ETF matches. Add one with 'etfscope add'.")
		return subcommands.ExitSuccess
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Configured ETFs")
	doc.Table(md.TableSet{
		Header: []string{"Ticker", "Name", "Theme", "Stored range", "Quotes"},
		Rows:   rows,
	})

	// securities still in the database after being removed from the config
	stored, err := db.Securities(ctx)
	if err != nil {
		return fail("%v", err)
	}
	var orphans []string
	for _, sec := range stored {
		if _, ok := cfg.Security(sec.Ticker); !ok {
			orphans = append(orphans, sec.Ticker)
		}
	}
	if len(orphans) > 0 {
		doc.PlainText(fmt.Sprintf("Stored but not configured: %s.", strings.Join(orphans, ", ")))
	}

	printMarkdown(doc.String())

	return subcommands.ExitSuccess
}
