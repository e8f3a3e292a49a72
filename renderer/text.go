package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/reconcile"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Options control how a report is rendered.
type Options struct {
	Formatter Formatter
	// ActivityDiff adds, below each row, the activity lines that differ
	// between both versions.
	ActivityDiff bool
	// Title of the markdown document.
	Title string
	// OldSource and NewSource name where each version comes from.
	OldSource, NewSource string
}

const separator = "----------------------------------------------------------------------------------------------------"

// none is how the text view renders an absent side.
const none = "None"

// Text writes the report one block per key:
//
//	2025-01-27: 12197.93 -> 12197.94 (+0.01)
//	Old Activity: [Transfer from Jake to Costco: -1555.88]
//	New Activity: [Transfer from Jake to Costco: 12197.94]
//	----
func Text(w io.Writer, r *reconcile.Report, opts Options) error {
	for _, row := range r.Rows {
		_, err := fmt.Fprintf(w, "%s: %s -> %s (%s)\nOld Activity: %s\nNew Activity: %s\n",
			row.Key,
			orNone(opts.Formatter.Value(row.Old)),
			orNone(opts.Formatter.Value(row.New)),
			orNone(opts.Formatter.Delta(row.Delta)),
			activityList(row.OldActivity),
			activityList(row.NewActivity),
		)
		if err != nil {
			return err
		}
		if opts.ActivityDiff {
			ConditionalBlock(w, func(w io.Writer) bool {
				return activityLineDiff(w, row.OldActivity, row.NewActivity)
			})
		}
		if _, err := fmt.Fprintln(w, separator); err != nil {
			return err
		}
	}
	return nil
}

func orNone(s string) string {
	if s == Missing {
		return none
	}
	return s
}

func activityList(activity []reconcile.Activity) string {
	items := make([]string, 0, len(activity))
	for _, a := range activity {
		items = append(items, a.Name+": "+Amount(a.Amount))
	}
	return "[" + strings.Join(items, ", ") + "]"
}

func activityLines(activity []reconcile.Activity) string {
	var b strings.Builder
	for _, a := range activity {
		fmt.Fprintf(&b, "%s %s\n", a.Name, Amount(a.Amount))
	}
	return b.String()
}

// activityLineDiff writes the line diff of both activity lists and reports
// whether there was any difference.
func activityLineDiff(w io.Writer, old, new []reconcile.Activity) bool {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(activityLines(old), activityLines(new))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	changed := false
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "  - "
		case diffmatchpatch.DiffInsert:
			prefix = "  + "
		default:
			continue
		}
		changed = true
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			fmt.Fprint(w, prefix, line)
		}
	}
	return changed
}
