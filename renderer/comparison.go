package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/etfscope"
	md "github.com/nao1215/markdown"
)

// ComparisonMarkdown renders the multi-ETF comparison report.
func ComparisonMarkdown(c *etfscope.Comparison) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Comparison of %s", strings.Join(c.Tickers(), ", ")))
	doc.PlainText(fmt.Sprintf("Period: %s (%d shared trading days)", c.Range, len(c.Days)))
	doc.PlainText(fmt.Sprintf("Risk-free rate: %s", etfscope.Percent(c.RiskFree)))

	doc.H2("Metrics")
	header := []string{"Metric"}
	for _, e := range c.Entries {
		header = append(header, e.Security.Ticker)
	}
	labels := metricsRows(c.Entries[0].Metrics)
	rows := make([][]string, len(labels))
	for i, row := range labels {
		rows[i] = []string{row[0]}
	}
	for _, e := range c.Entries {
		for i, cell := range metricsRows(e.Metrics) {
			rows[i] = append(rows[i], cell[1])
		}
	}
	doc.Table(md.TableSet{Header: header, Rows: rows})

	doc.H2("Base-100 performance")
	base100 := make([][]string, 0, len(c.Entries))
	for i, e := range c.Entries {
		base100 = append(base100, []string{
			e.Security.Ticker,
			fmt.Sprintf("%.2f", c.Base100[i][0]),
			fmt.Sprintf("%.2f", e.FinalBase100),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Ticker", "Start", "End"},
		Rows:   base100,
	})

	doc.H2("Correlation of daily returns")
	corrHeader := append([]string{""}, c.Tickers()...)
	corrRows := make([][]string, len(c.Entries))
	for i, e := range c.Entries {
		corrRows[i] = []string{e.Security.Ticker}
		for j := range c.Entries {
			corrRows[i] = append(corrRows[i], correlation(c.Correlation[i][j]))
		}
	}
	doc.Table(md.TableSet{Header: corrHeader, Rows: corrRows})

	doc.H2("Highlights")
	sharpe := c.BestSharpe()
	doc.BulletList(
		fmt.Sprintf("Best risk-adjusted return: %s (Sharpe %s)",
			sharpe.Security.Label(), etfscope.Ratio(sharpe.Metrics.Sharpe)),
		fmt.Sprintf("Shallowest drawdown: %s (%s)",
			c.ShallowestDrawdown().Security.Label(), pct(c.ShallowestDrawdown().Metrics.MaxDrawdown)),
	)

	return doc.String()
}
