package renderer

import "testing"

func TestFormatter(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	testCases := []struct {
		name      string
		currency  string
		value     *float64
		wantValue string
		wantDelta string
	}{
		{name: "plain", value: f(12197.94), wantValue: "12197.94", wantDelta: "+12197.94"},
		{name: "plain zero", value: f(0), wantValue: "0.00", wantDelta: "0.00"},
		{name: "plain negative", value: f(-4054.75), wantValue: "-4054.75", wantDelta: "-4054.75"},
		{name: "plain missing", wantValue: Missing, wantDelta: Missing},
		{name: "usd", currency: "USD", value: f(12197.94), wantValue: "$12,197.94", wantDelta: "+$12,197.94"},
		{name: "eur", currency: "EUR", value: f(0.01), wantValue: "€0.01", wantDelta: "+€0.01"},
		{name: "usd missing", currency: "USD", wantValue: Missing, wantDelta: Missing},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fm, err := NewFormatter(tc.currency)
			if err != nil {
				t.Fatalf("NewFormatter(%q) error = %v", tc.currency, err)
			}
			if got := fm.Value(tc.value); got != tc.wantValue {
				t.Errorf("Value() = %q want %q", got, tc.wantValue)
			}
			if got := fm.Delta(tc.value); got != tc.wantDelta {
				t.Errorf("Delta() = %q want %q", got, tc.wantDelta)
			}
		})
	}
}

func TestNewFormatter_Unknown(t *testing.T) {
	if _, err := NewFormatter("XYZ"); err == nil {
		t.Errorf("NewFormatter(XYZ) must fail")
	}
}

func TestAmount(t *testing.T) {
	if got := Amount(3366.7299999999996); got != "3366.7299999999996" {
		t.Errorf("Amount() = %q, activity amounts are not rounded", got)
	}
	if got := Amount(250); got != "250" {
		t.Errorf("Amount(250) = %q want 250", got)
	}
}
