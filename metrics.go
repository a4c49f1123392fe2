package etfscope

import "math"

// TradingDays is the number of trading days in a year, used to annualize
// daily figures.
const TradingDays = 252

// Metrics summarizes the risk/return profile of a price series.
//
// Returns, volatility and drawdown are fractions (0.05 is 5%). Sharpe and
// Sortino are unitless ratios. Fields are NaN when the series is too short
// to define them.
type Metrics struct {
	TotalReturn      float64
	AnnualizedReturn float64
	Volatility       float64
	Sharpe           float64
	Sortino          float64
	MaxDrawdown      float64
}

// ComputeMetrics computes the summary metrics of a closing-price series.
//
// riskFree is the annual risk-free rate. Ratio metrics (volatility, Sharpe,
// Sortino) are computed over the last TradingDays returns; when the series
// is shorter, the whole series serves as the window and the annualized
// figures are projections.
func ComputeMetrics(closes []float64, riskFree float64) Metrics {
	returns := Returns(closes)
	window := tail(returns, TradingDays)

	return Metrics{
		TotalReturn:      CumulativeReturn(closes),
		AnnualizedReturn: AnnualizedReturn(returns),
		Volatility:       Volatility(window),
		Sharpe:           SharpeRatio(window, riskFree),
		Sortino:          SortinoRatio(window, riskFree),
		MaxDrawdown:      MaxDrawdown(closes),
	}
}

// Returns computes the daily returns of a price series.
// The result has one fewer element than the input.
func Returns(closes []float64) []float64 {
	if len(closes) < 2 {
		return nil
	}
	returns := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		returns[i-1] = closes[i]/closes[i-1] - 1
	}
	return returns
}

// CumulativeReturn returns the total return over the whole series.
func CumulativeReturn(closes []float64) float64 {
	if len(closes) < 2 {
		return 0
	}
	return closes[len(closes)-1]/closes[0] - 1
}

// CumulativeReturns computes the compounded return at each point of the
// series, aligned with the days following the first one.
func CumulativeReturns(closes []float64) []float64 {
	returns := Returns(closes)
	cumulative := make([]float64, len(returns))
	acc := 1.0
	for i, r := range returns {
		acc *= 1 + r
		cumulative[i] = acc - 1
	}
	return cumulative
}

// AnnualizedReturn projects the mean daily return over a trading year.
func AnnualizedReturn(returns []float64) float64 {
	if len(returns) == 0 {
		return math.NaN()
	}
	return mean(returns) * TradingDays
}

// Volatility returns the annualized standard deviation of daily returns.
func Volatility(returns []float64) float64 {
	return sampleStd(returns) * math.Sqrt(TradingDays)
}

// RollingVolatility computes the annualized volatility over a sliding
// window. The i-th value covers returns[i : i+window]; the result has
// len(returns)-window+1 points. A window larger than the series collapses
// to a single full-series point.
func RollingVolatility(returns []float64, window int) []float64 {
	if window < 2 {
		return nil
	}
	if window > len(returns) {
		window = len(returns)
	}
	if window < 2 {
		return nil
	}
	out := make([]float64, 0, len(returns)-window+1)
	for i := 0; i+window <= len(returns); i++ {
		out = append(out, Volatility(returns[i:i+window]))
	}
	return out
}

// SharpeRatio returns the annualized excess return per unit of risk.
// riskFree is the annual risk-free rate.
func SharpeRatio(returns []float64, riskFree float64) float64 {
	if len(returns) < 2 {
		return math.NaN()
	}
	excess := mean(returns) - riskFree/TradingDays
	vol := Volatility(returns)
	if vol == 0 {
		return math.NaN()
	}
	return excess * TradingDays / vol
}

// SortinoRatio is like SharpeRatio but only penalizes downside deviation.
func SortinoRatio(returns []float64, riskFree float64) float64 {
	if len(returns) < 2 {
		return math.NaN()
	}
	downside := make([]float64, len(returns))
	for i, r := range returns {
		if r < 0 {
			downside[i] = r
		}
	}
	downsideVol := Volatility(downside)
	if downsideVol == 0 {
		return math.NaN()
	}
	excess := mean(returns) - riskFree/TradingDays
	return excess * TradingDays / downsideVol
}

// MaxDrawdown returns the largest peak-to-trough loss of the series, as a
// negative fraction (or zero for a monotonically rising series).
func MaxDrawdown(closes []float64) float64 {
	if len(closes) == 0 {
		return 0
	}
	peak := closes[0]
	worst := 0.0
	for _, p := range closes {
		if p > peak {
			peak = p
		}
		if dd := p/peak - 1; dd < worst {
			worst = dd
		}
	}
	return worst
}

// Normalize rebases the series to 100 at its first point, so several
// securities can be compared on one scale.
func Normalize(closes []float64) []float64 {
	if len(closes) == 0 || closes[0] == 0 {
		return nil
	}
	normalized := make([]float64, len(closes))
	for i, p := range closes {
		normalized[i] = p / closes[0] * 100
	}
	return normalized
}

// Correlation returns the Pearson correlation of two equally long series,
// or NaN when undefined (fewer than two points, or a constant series).
func Correlation(a, b []float64) float64 {
	n := len(a)
	if n != len(b) || n < 2 {
		return math.NaN()
	}
	ma, mb := mean(a), mean(b)
	var cov, va, vb float64
	for i := range a {
		da, db := a[i]-ma, b[i]-mb
		cov += da * db
		va += da * da
		vb += db * db
	}
	if va == 0 || vb == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(va*vb)
}

// CorrelationMatrix returns the pairwise correlation of several return
// columns. The diagonal is 1.
func CorrelationMatrix(columns [][]float64) [][]float64 {
	n := len(columns)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
		matrix[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			c := Correlation(columns[i], columns[j])
			matrix[i][j], matrix[j][i] = c, c
		}
	}
	return matrix
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStd is the standard deviation with Bessel's correction.
func sampleStd(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return math.NaN()
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(n-1))
}

func tail(values []float64, n int) []float64 {
	if len(values) <= n {
		return values
	}
	return values[len(values)-n:]
}
