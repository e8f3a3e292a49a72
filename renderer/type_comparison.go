package renderer

import (
	"strings"

	"github.com/etnz/reconcile"
)

// Comparison is a struct to represent a reconciliation report for rendering.
// Every number is already formatted.
type Comparison struct {
	Title     string            `json:"title"`
	OldSource string            `json:"oldSource,omitempty"`
	NewSource string            `json:"newSource,omitempty"`
	Summary   ComparisonSummary `json:"summary"`
	Rows      []ComparisonRow   `json:"rows"`
	Details   []ActivityChanges `json:"details,omitempty"`
}

// ComparisonSummary holds the counters of a Comparison.
type ComparisonSummary struct {
	Rows        int    `json:"rows"`
	Added       int    `json:"added"`
	Removed     int    `json:"removed"`
	Changed     int    `json:"changed"`
	Unchanged   int    `json:"unchanged"`
	NetDelta    string `json:"netDelta"`
	FirstChange string `json:"firstChange,omitempty"`
}

// ComparisonRow is a single line of the balance table.
type ComparisonRow struct {
	Key   string `json:"key"`
	Old   string `json:"old"`
	New   string `json:"new"`
	Delta string `json:"delta"`
}

// ActivityChanges lists the activity lines of a key that are only in one version.
type ActivityChanges struct {
	Key     string   `json:"key"`
	Removed []string `json:"removed,omitempty"`
	Added   []string `json:"added,omitempty"`
	Shift   string   `json:"shift"`
}

// NewComparison builds the view of a report.
func NewComparison(r *reconcile.Report, opts Options) *Comparison {
	f := opts.Formatter
	s := r.Summary()
	net := s.NetDelta
	c := &Comparison{
		Title:     opts.Title,
		OldSource: opts.OldSource,
		NewSource: opts.NewSource,
		Summary: ComparisonSummary{
			Rows:        s.Rows,
			Added:       s.Added,
			Removed:     s.Removed,
			Changed:     s.Changed,
			Unchanged:   s.Unchanged,
			NetDelta:    f.Delta(&net),
			FirstChange: s.FirstChange,
		},
		Rows: make([]ComparisonRow, 0, r.Len()),
	}
	if c.Title == "" {
		c.Title = "Balance Reconciliation"
	}

	for _, row := range r.Rows {
		c.Rows = append(c.Rows, ComparisonRow{
			Key:   cellEscaper.Replace(row.Key),
			Old:   f.Value(row.Old),
			New:   f.Value(row.New),
			Delta: f.Delta(row.Delta),
		})
		if !opts.ActivityDiff {
			continue
		}
		removed, added := reconcile.ActivityDiff(row.OldActivity, row.NewActivity)
		if len(removed) == 0 && len(added) == 0 {
			continue
		}
		c.Details = append(c.Details, ActivityChanges{
			Key:     row.Key,
			Removed: activityItems(removed),
			Added:   activityItems(added),
			Shift:   f.Delta(ptr(reconcile.Round(reconcile.Total(added) - reconcile.Total(removed)))),
		})
	}
	return c
}

func activityItems(activity []reconcile.Activity) []string {
	if len(activity) == 0 {
		return nil
	}
	items := make([]string, len(activity))
	for i, a := range activity {
		items[i] = a.Name + ": " + Amount(a.Amount)
	}
	return items
}

func ptr(v float64) *float64 { return &v }

// cellEscaper keeps a key inside its markdown table cell.
var cellEscaper = strings.NewReplacer("|", `\|`)
