package date

import (
	"testing"
	"time"
)

func TestParseLookback(t *testing.T) {
	testCases := []struct {
		in        string
		want      Lookback
		expectErr bool
	}{
		{"1m", OneMonth, false},
		{"3m", ThreeMonths, false},
		{"6m", SixMonths, false},
		{"ytd", YearToDate, false},
		{"YTD", YearToDate, false},
		{"1y", OneYear, false},
		{"3y", ThreeYears, false},
		{"5y", FiveYears, false},
		{"max", Max, false},
		{"2w", Max, true},
		{"", Max, true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLookback(tc.in)
			if (err != nil) != tc.expectErr {
				t.Fatalf("ParseLookback(%q) error = %v, want error: %v", tc.in, err, tc.expectErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("ParseLookback(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRangeEnding(t *testing.T) {
	to := New(2024, time.June, 15)

	testCases := []struct {
		name string
		in   Lookback
		want Range
	}{
		{"OneMonth", OneMonth, NewRange(New(2024, time.May, 15), to)},
		{"SixMonths", SixMonths, NewRange(New(2023, time.December, 15), to)},
		{"YearToDate", YearToDate, NewRange(New(2024, time.January, 1), to)},
		{"OneYear", OneYear, NewRange(New(2023, time.June, 15), to)},
		{"FiveYears", FiveYears, NewRange(New(2019, time.June, 15), to)},
		{"Max", Max, NewRange(New(2010, time.January, 1), to)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.RangeEnding(to); got != tc.want {
				t.Errorf("RangeEnding(%v) = %v, want %v", to, got, tc.want)
			}
		})
	}
}

func TestLookbackString(t *testing.T) {
	for _, l := range []Lookback{OneMonth, ThreeMonths, SixMonths, YearToDate, OneYear, ThreeYears, FiveYears, Max} {
		parsed, err := ParseLookback(l.String())
		if err != nil {
			t.Fatalf("ParseLookback(%q): %v", l.String(), err)
		}
		if parsed != l {
			t.Errorf("ParseLookback(%q) = %v, want %v", l.String(), parsed, l)
		}
	}
}
