package date

import (
	"testing"
	"time"
)

func TestNewRange(t *testing.T) {
	testCases := []struct {
		name   string
		in     Date
		period Period
		want   Range
	}{
		{"day", New(2025, time.September, 8), Daily, Range{New(2025, time.September, 8), New(2025, time.September, 8)}},
		{"a Wednesday", New(2025, time.September, 10), Weekly, Range{New(2025, time.September, 8), New(2025, time.September, 14)}},
		{"a Sunday", New(2025, time.September, 14), Weekly, Range{New(2025, time.September, 8), New(2025, time.September, 14)}},
		{"leap month", New(2024, time.February, 15), Monthly, Range{New(2024, time.February, 1), New(2024, time.February, 29)}},
		{"Q2", New(2025, time.May, 20), Quarterly, Range{New(2025, time.April, 1), New(2025, time.June, 30)}},
		{"Q4", New(2025, time.November, 2), Quarterly, Range{New(2025, time.October, 1), New(2025, time.December, 31)}},
		{"year", New(2025, time.September, 8), Yearly, Range{New(2025, time.January, 1), New(2025, time.December, 31)}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NewRange(tc.in, tc.period); got != tc.want {
				t.Errorf("NewRange(%v, %v) = %v, want %v", tc.in, tc.period, got, tc.want)
			}
		})
	}
}

func TestRange_Contains(t *testing.T) {
	jan := NewRange(New(2025, time.January, 10), Monthly)
	testCases := []struct {
		name string
		r    Range
		in   Date
		want bool
	}{
		{"first day", jan, New(2025, time.January, 1), true},
		{"last day", jan, New(2025, time.January, 31), true},
		{"after", jan, New(2025, time.February, 1), false},
		{"open start", Range{To: New(2025, time.January, 31)}, New(1999, time.January, 1), true},
		{"open end", Range{From: New(2025, time.January, 1)}, New(2027, time.January, 23), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Contains(tc.in); got != tc.want {
				t.Errorf("%v.Contains(%v) = %v, want %v", tc.r, tc.in, got, tc.want)
			}
		})
	}
}

func TestRange_Bounds(t *testing.T) {
	from, to := Range{From: New(2025, time.January, 24)}.Bounds()
	if from != "2025-01-24" || to != "" {
		t.Errorf("Bounds() = %q, %q want \"2025-01-24\", \"\"", from, to)
	}
}

func TestParsePeriod(t *testing.T) {
	testCases := []struct {
		in      string
		want    Period
		wantErr bool
	}{
		{"daily", Daily, false},
		{"week", Weekly, false},
		{"Monthly", Monthly, false},
		{"quarter", Quarterly, false},
		{"year", Yearly, false},
		{"fortnight", Daily, true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePeriod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("ParsePeriod() error = %v, wantErr %v", err, tc.wantErr)
				return
			}
			if got != tc.want {
				t.Errorf("ParsePeriod() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPeriods(t *testing.T) {
	for i, name := range Periods() {
		p, err := ParsePeriod(name)
		if err != nil {
			t.Errorf("ParsePeriod(%q) error = %v", name, err)
		}
		if p != Period(i) {
			t.Errorf("ParsePeriod(%q) = %v want %v", name, p, Period(i))
		}
	}
}
