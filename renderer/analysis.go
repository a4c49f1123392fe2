package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/etfscope"
	md "github.com/nao1215/markdown"
)

// AnalysisMarkdown renders the single-ETF analysis report.
func AnalysisMarkdown(a *etfscope.Analysis) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Analysis of %s", a.Security.Label()))
	if a.Security.Theme != "" {
		doc.PlainText(fmt.Sprintf("Theme: %s", a.Security.Theme))
	}
	doc.PlainText(fmt.Sprintf("Period: %s (%d trading days)", a.Range, a.Series.Len()))
	doc.PlainText(fmt.Sprintf("Latest close: %s on %s", a.LatestClose(), a.Latest.Day))

	doc.H2("Key metrics")
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows:   metricsRows(a.Metrics),
	})
	if a.ShortPeriod() {
		doc.PlainText(fmt.Sprintf("Note: the period covers fewer than %d trading days, annualized figures are projections.", etfscope.TradingDays))
	}

	doc.H2("Recent quotes")
	doc.Table(md.TableSet{
		Header: []string{"Day", "Open", "High", "Low", "Close", "Volume"},
		Rows:   recentQuoteRows(a.Series, 5),
	})

	return doc.String()
}

// recentQuoteRows returns the last n quotes of the series, most recent
// first.
func recentQuoteRows(s etfscope.Series, n int) [][]string {
	if n > s.Len() {
		n = s.Len()
	}
	rows := make([][]string, 0, n)
	for i := s.Len() - 1; i >= s.Len()-n; i-- {
		q := s.Quotes[i]
		rows = append(rows, []string{
			q.Day.String(),
			q.Open.StringFixed(2),
			q.High.StringFixed(2),
			q.Low.StringFixed(2),
			q.Close.StringFixed(2),
			fmt.Sprintf("%d", q.Volume),
		})
	}
	return rows
}
