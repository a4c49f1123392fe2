package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		in        string
		want      Date
		expectErr bool
	}{
		{"Canonical", "2024-03-15", New(2024, time.March, 15), false},
		{"Lenient single digits", "2024-3-5", New(2024, time.March, 5), false},
		{"Whitespace", " 2024-03-15 ", New(2024, time.March, 15), false},
		{"Garbage", "not-a-date", Date{}, true},
		{"Empty", "", Date{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.expectErr {
				t.Fatalf("Parse(%q) error = %v, want error: %v", tc.in, err, tc.expectErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseRelative(t *testing.T) {
	today := Today()

	testCases := []struct {
		in   string
		want Date
	}{
		{"0d", today},
		{"-1d", today.Add(-1)},
		{"+2w", today.Add(14)},
		{"-6m", today.AddMonth(-6)},
		{"-1y", New(today.Year()-1, today.Month(), today.Day())},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewNormalizes(t *testing.T) {
	// Day zero means the last day of the previous month.
	got := New(2024, time.March, 0)
	want := New(2024, time.February, 29)
	if got != want {
		t.Errorf("New(2024, March, 0) = %v, want %v", got, want)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	in := New(2023, time.December, 31)
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2023-12-31"` {
		t.Errorf("Marshal = %s, want %q", data, `"2023-12-31"`)
	}
	var out Date
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestUnix(t *testing.T) {
	d := New(2024, time.January, 2)
	if got := FromUnix(d.Unix()); got != d {
		t.Errorf("FromUnix(Unix()) = %v, want %v", got, d)
	}
}

func TestRangeContains(t *testing.T) {
	r := NewRange(New(2024, time.January, 10), New(2024, time.January, 20))

	testCases := []struct {
		name string
		in   Date
		want bool
	}{
		{"Before", New(2024, time.January, 9), false},
		{"Lower bound", New(2024, time.January, 10), true},
		{"Inside", New(2024, time.January, 15), true},
		{"Upper bound", New(2024, time.January, 20), true},
		{"After", New(2024, time.January, 21), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.in); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRangeDays(t *testing.T) {
	r := NewRange(New(2024, time.January, 1), New(2024, time.January, 31))
	if got := r.Days(); got != 31 {
		t.Errorf("Days() = %d, want 31", got)
	}
}

func TestNewRangeSwapsBounds(t *testing.T) {
	from, to := New(2024, time.June, 1), New(2024, time.January, 1)
	r := NewRange(from, to)
	if r.From != to || r.To != from {
		t.Errorf("NewRange did not normalize bounds: %v", r)
	}
}
