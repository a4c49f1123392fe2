package etfscope

import (
	"math"
	"testing"
)

func TestPercentString(t *testing.T) {
	testCases := []struct {
		name string
		in   Percent
		want string
	}{
		{"Positive", 0.0534, "5.34%"},
		{"Negative", -0.12, "-12.00%"},
		{"Zero", 0, "0.00%"},
		{"Undefined", Percent(math.NaN()), "—"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPercentSignedString(t *testing.T) {
	if got := Percent(0.05).SignedString(); got != "+5.00%" {
		t.Errorf("SignedString() = %q, want +5.00%%", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString() of zero = %q, want -", got)
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio(1.234); got != "1.23" {
		t.Errorf("Ratio(1.234) = %q, want 1.23", got)
	}
	if got := Ratio(math.NaN()); got != "—" {
		t.Errorf("Ratio(NaN) = %q, want —", got)
	}
	if got := Ratio(math.Inf(1)); got != "—" {
		t.Errorf("Ratio(+Inf) = %q, want —", got)
	}
}
