package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/template"

	"github.com/etnz/etfscope"
	"github.com/etnz/etfscope/chart"
	"github.com/etnz/etfscope/date"
	"github.com/etnz/etfscope/renderer"
	"github.com/google/subcommands"
)

// reportTask carries the template data of one published report.
type reportTask struct {
	Report string // "analysis" or "comparison"
	Ticker string // empty for the comparison report
	Range  date.Range
}

type publishCmd struct {
	periodFlags
	outputDir      string
	frontMatterTpl string
}

func (*publishCmd) Name() string     { return "publish" }
func (*publishCmd) Synopsis() string { return "generate the report tree for all configured ETFs" }
func (*publishCmd) Usage() string {
	return `publish [-o <dir>] [-frontmatter <file>] [-d <date>] [-p <lookback>] [-rf <rate>]

  Generates the markdown analysis report and chart page of every
  configured ETF, plus the overall comparison, into a directory tree:

    <dir>/analysis/<ticker>.md
    <dir>/analysis/<ticker>.html
    <dir>/comparison.md
    <dir>/comparison.html

  A front matter template (Go text/template, executed with the report
  name, ticker and range) is prepended to each markdown file, for static
  site generators.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	c.periodFlags.set(f)
	f.StringVar(&c.outputDir, "o", "reports", "Root directory for the generated reports")
	f.StringVar(&c.frontMatterTpl, "frontmatter", "", "Path to a Go template file for the report front matter")
}

func (c *publishCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var frontMatter *template.Template
	if c.frontMatterTpl != "" {
		var err error
		frontMatter, err = template.ParseFiles(c.frontMatterTpl)
		if err != nil {
			return fail("cannot parse front matter template: %v", err)
		}
	}

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

	if err := os.MkdirAll(filepath.Join(c.outputDir, "analysis"), 0o755); err != nil {
		return fail("cannot create output directory: %v", err)
	}

	// Per-ETF analysis reports. A missing history is logged, not fatal.
	published := 0
	for _, sec := range cfg.ETFs {
		series, err := db.Prices(ctx, sec.Ticker, rng)
		if err != nil {
			return fail("%v", err)
		}
		analysis, err := etfscope.NewAnalysis(sec, series, rng, riskFree)
		if err != nil {
			log.Printf("skipping %s: %v", sec.Ticker, err)
			continue
		}

		task := reportTask{Report: "analysis", Ticker: sec.Ticker, Range: rng}
		md := renderer.AnalysisMarkdown(analysis)
		base := filepath.Join(c.outputDir, "analysis", sec.Ticker)
		if err := c.writeReport(base+".md", md, frontMatter, task); err != nil {
			return fail("%v", err)
		}
		if err := writeChartPage(base+".html", func(f *os.File) error {
			return chart.WriteAnalysisPage(f, analysis)
		}); err != nil {
			return fail("%v", err)
		}
		log.Printf("published analysis of %s", sec.Ticker)
		published++
	}

	// The overall comparison.
	if len(cfg.ETFs) >= 2 {
		comparison, err := loadComparison(ctx, db, cfg.ETFs, rng, riskFree)
		if err != nil {
			log.Printf("skipping comparison: %v", err)
		} else {
			task := reportTask{Report: "comparison", Range: rng}
			base := filepath.Join(c.outputDir, "comparison")
			if err := c.writeReport(base+".md", renderer.ComparisonMarkdown(comparison), frontMatter, task); err != nil {
				return fail("%v", err)
			}
			if err := writeChartPage(base+".html", func(f *os.File) error {
				return chart.WriteComparisonPage(f, comparison)
			}); err != nil {
				return fail("%v", err)
			}
			log.Printf("published comparison of %d ETFs", len(cfg.ETFs))
			published++
		}
	}

	if published == 0 {
		return fail("nothing published, run 'etfscope fetch' first")
	}
	fmt.Printf("✅ Published %d reports under %s.\n", published, c.outputDir)
	return subcommands.ExitSuccess
}

// writeReport writes one markdown report, prepending the rendered front
// matter when a template is set.
func (c *publishCmd) writeReport(path, md string, tpl *template.Template, task reportTask) error {
	if tpl != nil {
		var buf bytes.Buffer
		if err := tpl.Execute(&buf, task); err != nil {
			return fmt.Errorf("cannot render front matter for %s: %w", path, err)
		}
		md = buf.String() + "\n" + md
	}
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return fmt.Errorf("cannot write report %s: %w", path, err)
	}
	return nil
}
