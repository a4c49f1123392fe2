package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/etfscope"
	"github.com/google/subcommands"
)

type addCmd struct {
	name     string
	theme    string
	currency string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add an ETF to the configuration" }
func (*addCmd) Usage() string {
	return `add [-name <name>] [-theme <theme>] [-currency <code>] <ticker>

  Adds an ETF to the configuration file and declares it in the database,
  or updates the descriptor of an already configured ticker. History
  arrives with the next 'etfscope fetch'.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Full fund name")
	f.StringVar(&c.theme, "theme", "", "Free-form grouping label (e.g. tech, bonds)")
	f.StringVar(&c.currency, "currency", "", "Trading currency, 3-letter code")
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Println(c.Usage())
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig()
	if err != nil {
		return fail("%v", err)
	}

	sec := etfscope.Security{
		Ticker:   f.Arg(0),
		Name:     c.name,
		Theme:    c.theme,
		Currency: c.currency,
	}
	verb := "Added"
	if _, exists := cfg.Security(sec.Ticker); exists {
		verb = "Updated"
		for i := range cfg.ETFs {
			if cfg.ETFs[i].Ticker == sec.Ticker {
				cfg.ETFs[i] = sec
			}
		}
	} else {
		cfg.ETFs = append(cfg.ETFs, sec)
	}

	// Save validates, catching a malformed ticker or currency here.
	if err := cfg.Save(*configFile); err != nil {
		return fail("%v", err)
	}

	db, err := OpenStore(cfg)
	if err != nil {
		return fail("%v", err)
	}
	defer db.Close()
	if err := db.UpsertSecurity(ctx, sec); err != nil {
		return fail("%v", err)
	}

	fmt.Printf("✅ %s %s. Run 'etfscope fetch' to download its history.\n", verb, sec.Label())
	return subcommands.ExitSuccess
}
