package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/reconcile"
	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Format != "text" || c.Model == "" {
		t.Errorf("Default() = %+v want text format and a model", c)
	}
	if diff := cmp.Diff(reconcile.DefaultSelectors, c.ChartSelectors()); diff != "" {
		t.Errorf("ChartSelectors() mismatch (-want +got):\n%s", diff)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
dataset: Kendall
currency: USD
format: markdown
changedOnly: true
selectors:
  values: $.balances
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := reconcile.Selectors{
		Labels:   "$.labels",
		Dataset:  `$.datasets[?(@.label=="Kendall")]`,
		Values:   "$.balances",
		Activity: "$.activity",
	}
	if diff := cmp.Diff(want, c.ChartSelectors()); diff != "" {
		t.Errorf("ChartSelectors() mismatch (-want +got):\n%s", diff)
	}
	if c.Currency != "USD" || c.Format != "markdown" || !c.ChangedOnly {
		t.Errorf("Parse() = %+v", c)
	}
}

func TestParse_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{name: "format", doc: "format: html", wantErr: "Format must be one of: text, markdown, json, table"},
		{name: "currency", doc: "currency: Dollars", wantErr: "Currency must be an ISO 4217 currency code"},
		{name: "selector", doc: "selectors:\n  labels: labels", wantErr: "Selectors.Labels must be a JSONPath"},
		{name: "yaml", doc: "format: [", wantErr: "parse config"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.doc))
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Parse() error = %v want it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Chdir(t.TempDir())

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") without %s error = %v", DefaultFile, err)
	}
	if diff := cmp.Diff(Default(), c); diff != "" {
		t.Errorf("Load(\"\") mismatch (-want +got):\n%s", diff)
	}

	if _, err := Load("missing.yaml"); err == nil {
		t.Errorf("Load(missing.yaml) must fail")
	}

	if err := os.WriteFile(DefaultFile, []byte("format: table\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if c.Format != "table" {
		t.Errorf("Load(\"\").Format = %q want table", c.Format)
	}

	other := filepath.Join(t.TempDir(), "other.yaml")
	if err := os.WriteFile(other, []byte("format: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err = Load(other)
	if err != nil {
		t.Fatalf("Load(%q) error = %v", other, err)
	}
	if c.Format != "json" {
		t.Errorf("Load(%q).Format = %q want json", other, c.Format)
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("RCL_FORMAT", "markdown")
	t.Setenv("RCL_CURRENCY", "eur")
	t.Setenv("RCL_CHANGED_ONLY", "true")

	c, err := LoadWithEnv("")
	if err != nil {
		t.Fatalf("LoadWithEnv() error = %v", err)
	}
	if c.Format != "markdown" || c.Currency != "EUR" || !c.ChangedOnly {
		t.Errorf("LoadWithEnv() = %+v", c)
	}

	t.Setenv("RCL_FORMAT", "pdf")
	if _, err := LoadWithEnv(""); err == nil {
		t.Errorf("LoadWithEnv() with RCL_FORMAT=pdf must fail")
	}
}
