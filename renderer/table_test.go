package renderer

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, compare(t), Options{}); err != nil {
		t.Fatalf("Table() error = %v", err)
	}
	got := buf.String()

	// Headers and footers are upper cased.
	for _, want := range []string{"key", "delta", "2025-01-25", "n/a", "+0.01", "3 rows"} {
		if !strings.Contains(strings.ToLower(got), want) {
			t.Errorf("Table() output lacks %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "None") {
		t.Errorf("Table() must render missing values as %q:\n%s", Missing, got)
	}
}
