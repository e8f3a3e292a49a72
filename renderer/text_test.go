package renderer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/etnz/reconcile"
	"github.com/google/go-cmp/cmp"
)

// compare builds a report from two small balance histories.
func compare(t *testing.T) *reconcile.Report {
	t.Helper()
	old := reconcile.Dataset{
		Labels:   []string{"2025-01-24", "2025-01-27"},
		Values:   []float64{13503.81, 12197.93},
		Activity: [][]reconcile.Activity{{{Name: "Nearpod", Amount: 3366.73}}, {{Name: "AWS", Amount: -0.52}}},
	}
	new := reconcile.Dataset{
		Labels:   []string{"2025-01-24", "2025-01-25", "2025-01-27"},
		Values:   []float64{13503.81, 100, 12197.94},
		Activity: [][]reconcile.Activity{{{Name: "Nearpod", Amount: 3366.73}}, {}, {{Name: "AWS", Amount: -0.53}}},
	}
	r, err := reconcile.Compare(old, new)
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	return r
}

func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, compare(t), Options{}); err != nil {
		t.Fatalf("Text() error = %v", err)
	}

	want := "2025-01-24: 13503.81 -> 13503.81 (0.00)\n" +
		"Old Activity: [Nearpod: 3366.73]\n" +
		"New Activity: [Nearpod: 3366.73]\n" +
		separator + "\n" +
		"2025-01-25: None -> 100.00 (None)\n" +
		"Old Activity: []\n" +
		"New Activity: []\n" +
		separator + "\n" +
		"2025-01-27: 12197.93 -> 12197.94 (+0.01)\n" +
		"Old Activity: [AWS: -0.52]\n" +
		"New Activity: [AWS: -0.53]\n" +
		separator + "\n"
	if got := buf.String(); got != want {
		t.Errorf("Text() output mismatch:\n--- want\n+++ got\n%s", createDiff(want, got))
	}
}

// createDiff renders a line diff between want and got for failure messages.
func createDiff(want, got string) string {
	return cmp.Diff(strings.Split(want, "\n"), strings.Split(got, "\n"))
}

func TestText_ActivityDiff(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, compare(t), Options{ActivityDiff: true}); err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	got := buf.String()

	if !strings.Contains(got, "New Activity: [AWS: -0.53]\n  - AWS -0.52\n  + AWS -0.53\n"+separator) {
		t.Errorf("Text() lacks the activity diff of 2025-01-27:\n%s", got)
	}
	// Identical activity prints nothing extra.
	if !strings.Contains(got, "New Activity: [Nearpod: 3366.73]\n"+separator) {
		t.Errorf("Text() prints a diff for identical activity:\n%s", got)
	}
}

func TestSeparator(t *testing.T) {
	if len(separator) != 100 || strings.Trim(separator, "-") != "" {
		t.Errorf("separator must be 100 dashes, got %d characters", len(separator))
	}
}
