package etfscope

import (
	"fmt"
	"math"
)

// Percent is a fraction (0.05 is 5%) formatted as a percentage.
type Percent float64

// Equal compares two percents with display precision.
func (p Percent) Equal(q Percent) bool {
	const precision = 0.0001
	diff := float64(p - q)
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String formats the percent with two decimals, or "—" when undefined.
func (p Percent) String() string {
	if math.IsNaN(float64(p)) {
		return "—"
	}
	return fmt.Sprintf("%.2f%%", float64(p)*100)
}

// SignedString is like String with an explicit sign, rendering an exact
// zero as "-".
func (p Percent) SignedString() string {
	if math.IsNaN(float64(p)) {
		return "—"
	}
	res := fmt.Sprintf("%+.2f%%", float64(p)*100)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Ratio formats a unitless ratio (Sharpe, Sortino) with two decimals, or
// "—" when undefined.
func Ratio(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "—"
	}
	return fmt.Sprintf("%.2f", v)
}
