package etfscope

import (
	"slices"

	"github.com/etnz/etfscope/date"
)

// Series is the chronological price history of one security.
// Quotes are kept sorted by day, one quote per day.
type Series struct {
	Ticker string
	Quotes []Quote
}

// NewSeries returns a series over the given quotes, sorted by day.
// Duplicate days keep the last quote seen.
func NewSeries(ticker string, quotes []Quote) Series {
	s := Series{Ticker: ticker}
	for _, q := range quotes {
		s.Append(q)
	}
	return s
}

// Len returns the number of quotes in the series.
func (s Series) Len() int { return len(s.Quotes) }

// First returns the earliest quote, or false on an empty series.
func (s Series) First() (Quote, bool) {
	if len(s.Quotes) == 0 {
		return Quote{}, false
	}
	return s.Quotes[0], true
}

// Last returns the latest quote, or false on an empty series.
func (s Series) Last() (Quote, bool) {
	if len(s.Quotes) == 0 {
		return Quote{}, false
	}
	return s.Quotes[len(s.Quotes)-1], true
}

// Append inserts a quote keeping the series sorted.
// An existing quote on the same day is replaced.
func (s *Series) Append(q Quote) {
	i, found := slices.BinarySearchFunc(s.Quotes, q, func(a, b Quote) int {
		switch {
		case a.Day.Before(b.Day):
			return -1
		case a.Day.After(b.Day):
			return 1
		default:
			return 0
		}
	})
	if found {
		s.Quotes[i] = q
		return
	}
	s.Quotes = slices.Insert(s.Quotes, i, q)
}

// Clip returns the sub-series within the given range (boundaries included).
func (s Series) Clip(r date.Range) Series {
	clipped := Series{Ticker: s.Ticker}
	for _, q := range s.Quotes {
		if r.Contains(q.Day) {
			clipped.Quotes = append(clipped.Quotes, q)
		}
	}
	return clipped
}

// Days returns the days of the series, in chronological order.
func (s Series) Days() []date.Date {
	days := make([]date.Date, len(s.Quotes))
	for i, q := range s.Quotes {
		days[i] = q.Day
	}
	return days
}

// Closes returns the closing prices as a float64 time series, in
// chronological order. The metric functions operate on this form.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s.Quotes))
	for i, q := range s.Quotes {
		closes[i], _ = q.Close.Float64()
	}
	return closes
}

// AlignCloses aligns several series on their shared days and returns those
// days with one closing-price column per series. Days missing from any
// series are dropped, so columns have equal length and comparable returns.
func AlignCloses(series ...Series) (days []date.Date, closes [][]float64) {
	if len(series) == 0 {
		return nil, nil
	}

	closes = make([][]float64, len(series))
	indexes := make([]map[date.Date]float64, len(series))
	for i, s := range series {
		indexes[i] = make(map[date.Date]float64, s.Len())
		for _, q := range s.Quotes {
			indexes[i][q.Day], _ = q.Close.Float64()
		}
	}

	for _, q := range series[0].Quotes {
		row := make([]float64, len(series))
		shared := true
		for i, index := range indexes {
			v, ok := index[q.Day]
			if !ok {
				shared = false
				break
			}
			row[i] = v
		}
		if !shared {
			continue
		}
		days = append(days, q.Day)
		for i, v := range row {
			closes[i] = append(closes[i], v)
		}
	}
	return days, closes
}
