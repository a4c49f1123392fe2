package date

import (
	"fmt"
	"strings"
	"time"
)

// Lookback identifies a standard analysis window ending at a reference date.
type Lookback int

const (
	OneMonth Lookback = iota
	ThreeMonths
	SixMonths
	YearToDate
	OneYear
	ThreeYears
	FiveYears
	Max
)

// maxStart is the earliest date considered by the "max" lookback.
var maxStart = New(2010, time.January, 1)

func (l Lookback) String() string {
	switch l {
	case OneMonth:
		return "1m"
	case ThreeMonths:
		return "3m"
	case SixMonths:
		return "6m"
	case YearToDate:
		return "ytd"
	case OneYear:
		return "1y"
	case ThreeYears:
		return "3y"
	case FiveYears:
		return "5y"
	case Max:
		return "max"
	default:
		panic(fmt.Sprintf("unknown lookback %d", l))
	}
}

// ParseLookback parses a lookback code (1m, 3m, 6m, ytd, 1y, 3y, 5y, max).
func ParseLookback(s string) (Lookback, error) {
	switch strings.ToLower(s) {
	case "1m":
		return OneMonth, nil
	case "3m":
		return ThreeMonths, nil
	case "6m":
		return SixMonths, nil
	case "ytd":
		return YearToDate, nil
	case "1y":
		return OneYear, nil
	case "3y":
		return ThreeYears, nil
	case "5y":
		return FiveYears, nil
	case "max":
		return Max, nil
	default:
		return Max, fmt.Errorf("unknown lookback %q (want 1m, 3m, 6m, ytd, 1y, 3y, 5y or max)", s)
	}
}

// RangeEnding returns the date range covered by the lookback, ending at 'to'.
func (l Lookback) RangeEnding(to Date) Range {
	switch l {
	case OneMonth:
		return NewRange(to.AddMonth(-1), to)
	case ThreeMonths:
		return NewRange(to.AddMonth(-3), to)
	case SixMonths:
		return NewRange(to.AddMonth(-6), to)
	case YearToDate:
		return NewRange(New(to.Year(), time.January, 1), to)
	case OneYear:
		return NewRange(to.AddMonth(-12), to)
	case ThreeYears:
		return NewRange(to.AddMonth(-36), to)
	case FiveYears:
		return NewRange(to.AddMonth(-60), to)
	case Max:
		return NewRange(maxStart, to)
	default:
		panic(fmt.Sprintf("unknown lookback %d", l))
	}
}
