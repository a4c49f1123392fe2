package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/etfscope/agent"
	"github.com/etnz/etfscope/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	periodFlags
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "chat with an AI analyst about your ETFs" }
func (*assistCmd) Usage() string {
	return `assist [-d <date>] [-p <lookback>] [-rf <rate>] [<question>]

  Starts an interactive chat with an AI analyst seeded with the
  comparison report of your configured ETFs. Needs a GEMINI_API_KEY in
  the environment. Type 'bye' to exit.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	c.periodFlags.set(f)
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := strings.Join(f.Args(), " ")

	cfg, err := LoadConfig()
	if err != nil {
		return fail("%v", err)
	}
	rng, riskFree, err := c.resolve(cfg)
	if err != nil {
		return fail("%v", err)
	}
	if len(cfg.ETFs) < 2 {
		return fail("the assistant needs at least 2 configured ETFs")
	}

	db, err := OpenStore(cfg)
	if err != nil {
		return fail("%v", err)
	}
	defer db.Close()

	comparison, err := loadComparison(ctx, db, cfg.ETFs, rng, riskFree)
	if err != nil {
		return fail("%v (did you run 'etfscope fetch'?)", err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return fail("initializing Gemini client: %v", err)
	}

	analyst := agent.NewAnalyst(renderer.ComparisonMarkdown(comparison))
	a := agent.New(os.Stdout, os.Stdin, analyst)
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		return fail("assistant failed: %v", err)
	}

	fmt.Println("bye")
	return subcommands.ExitSuccess
}
