package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/etfscope"
	"github.com/google/subcommands"
)

type initCmd struct {
	force bool
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "write a starter configuration file" }
func (*initCmd) Usage() string {
	return `init [-force]

  Writes a starter configuration file with the default settings and a
  couple of example ETFs, then creates the database.

  Refuses to overwrite an existing file unless -force is given.
`
}

func (c *initCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Overwrite an existing configuration file")
}

func (c *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := os.Stat(*configFile); err == nil && !c.force {
		return fail("%q already exists, use -force to overwrite it", *configFile)
	}

	cfg := etfscope.DefaultConfig()
	cfg.ETFs = []etfscope.Security{
		{Ticker: "SPY", Name: "SPDR S&P 500 ETF Trust", Theme: "broad", Currency: "USD"},
		{Ticker: "QQQ", Name: "Invesco QQQ Trust", Theme: "tech", Currency: "USD"},
	}
	if err := cfg.Save(*configFile); err != nil {
		return fail("%v", err)
	}

	db, err := OpenStore(cfg)
	if err != nil {
		return fail("%v", err)
	}
	defer db.Close()
	for _, sec := range cfg.ETFs {
		if err := db.UpsertSecurity(context.Background(), sec); err != nil {
			return fail("%v", err)
		}
	}

	fmt.Printf("✅ Wrote %s and created %s. Edit the etfs list, then run 'etfscope fetch'.\n",
		*configFile, cfg.Database.Path)
	return subcommands.ExitSuccess
}
