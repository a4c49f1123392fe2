// Package cmd implements the CLI application to track and analyze ETFs.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/etfscope"
	"github.com/etnz/etfscope/eodhd"
	"github.com/etnz/etfscope/store"
	"github.com/etnz/etfscope/yahoo"
	"github.com/google/subcommands"
)

// Register registers all subcommands on the commander.
func Register(c *subcommands.Commander) {
	c.Register(&initCmd{}, "setup")
	c.Register(&addCmd{}, "setup")

	c.Register(&fetchCmd{}, "data")
	c.Register(&listCmd{}, "data")
	c.Register(&latestCmd{}, "data")

	c.Register(&analyzeCmd{}, "analysis")
	c.Register(&compareCmd{}, "analysis")
	c.Register(&publishCmd{}, "analysis")
	c.Register(&assistCmd{}, "analysis")

	c.Register(&topicCmd{}, "documentation")
}

// As a CLI application the lifecycle is short lived, globals are fine here.

var configFile = flag.String("config", "etfscope.yaml", "Path to the configuration file")
var eodhdAPIKey = flag.String("eodhd-api-key", "", "EODHD API key (defaults to the EODHD_API_KEY environment variable)")

// LoadConfig loads the application configuration file.
func LoadConfig() (etfscope.Config, error) {
	return etfscope.LoadConfig(*configFile)
}

// OpenStore opens the configured database, migrating it if needed.
func OpenStore(cfg etfscope.Config) (*store.Store, error) {
	return store.Open(cfg.Database.Path)
}

// Provider returns the configured price provider.
func Provider(cfg etfscope.Config) (etfscope.Provider, error) {
	switch cfg.Provider {
	case "yahoo":
		return yahoo.New(), nil
	case "eodhd":
		return eodhd.New(*eodhdAPIKey)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when the renderer is unavailable.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error to stderr and returns the failure status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}
