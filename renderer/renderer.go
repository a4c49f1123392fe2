// Package renderer turns report models into markdown documents.
package renderer

import (
	"fmt"
	"math"

	"github.com/etnz/etfscope"
)

// pct formats a fraction as a percentage.
func pct(v float64) string { return etfscope.Percent(v).String() }

// signedPct formats a fraction as a signed percentage.
func signedPct(v float64) string { return etfscope.Percent(v).SignedString() }

// correlation formats one correlation coefficient.
func correlation(v float64) string {
	if math.IsNaN(v) {
		return "—"
	}
	return fmt.Sprintf("%.2f", v)
}

// metricsRows returns the label/value rows shared by the analysis and
// comparison reports, in presentation order.
func metricsRows(m etfscope.Metrics) [][]string {
	return [][]string{
		{"Total return", signedPct(m.TotalReturn)},
		{"Annualized return", signedPct(m.AnnualizedReturn)},
		{"Annualized volatility", pct(m.Volatility)},
		{"Sharpe ratio", etfscope.Ratio(m.Sharpe)},
		{"Sortino ratio", etfscope.Ratio(m.Sortino)},
		{"Max drawdown", pct(m.MaxDrawdown)},
	}
}
