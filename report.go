package reconcile

import (
	"errors"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Report is the comparison of two versions of a balance history, one row per
// key of either version, sorted by key.
type Report struct {
	Rows []Row
}

// NewReport sorts rows by key into a report.
//
// Keys are compared as plain strings, which is chronological for ISO-8601
// dates.
func NewReport(rows []Row) *Report {
	slices.SortFunc(rows, func(a, b Row) int { return strings.Compare(a.Key, b.Key) })
	return &Report{Rows: rows}
}

// Compare reconciles the old and new versions of a balance history.
//
// Both datasets are validated before anything is compared: if any of them is
// malformed, Compare returns no report and the *StructuralError of each
// broken side.
func Compare(old, new Dataset) (*Report, error) {
	o, errOld := Flatten(old)
	n, errNew := Flatten(new)
	if errOld != nil || errNew != nil {
		var errs error
		if errOld != nil {
			errs = errors.Join(errs, onSide("old", errOld))
		}
		if errNew != nil {
			errs = errors.Join(errs, onSide("new", errNew))
		}
		return nil, errs
	}
	return CompareSeries(o, n), nil
}

// CompareSeries reconciles two already validated series.
func CompareSeries(old, new Series) *Report {
	pairs := Align(old, new)
	rows := make([]Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, NewRow(p))
	}
	return NewReport(rows)
}

// Len returns the number of rows.
func (r *Report) Len() int { return len(r.Rows) }

// Keys returns the keys of the report, in report order.
func (r *Report) Keys() []string {
	keys := make([]string, 0, len(r.Rows))
	for _, row := range r.Rows {
		keys = append(keys, row.Key)
	}
	return keys
}

// Row returns the row at key.
func (r *Report) Row(key string) (Row, bool) {
	i, found := slices.BinarySearchFunc(r.Rows, key, func(row Row, k string) int { return strings.Compare(row.Key, k) })
	if !found {
		return Row{}, false
	}
	return r.Rows[i], true
}

// Changed returns a report with only the rows that are one-sided or whose
// value moved.
func (r *Report) Changed() *Report {
	return r.filter(Row.Changed)
}

// Between returns a report with only the rows whose key is within [from, to].
// An empty bound is open.
func (r *Report) Between(from, to string) *Report {
	return r.filter(func(row Row) bool {
		return (from == "" || row.Key >= from) && (to == "" || row.Key <= to)
	})
}

func (r *Report) filter(keep func(Row) bool) *Report {
	rows := make([]Row, 0, len(r.Rows))
	for _, row := range r.Rows {
		if keep(row) {
			rows = append(rows, row)
		}
	}
	return &Report{Rows: rows}
}

// Summary is an overview of a report.
type Summary struct {
	Rows      int
	Added     int
	Removed   int
	Changed   int
	Unchanged int
	NetDelta  float64
	// FirstChange is the first key that is one-sided or whose value moved.
	FirstChange string
}

// Summary computes the overview of the report.
//
// Changed only counts keys present in both versions; Added and Removed count
// the one-sided ones. NetDelta is the sum of the deltas of shared keys. A row
// with no delta and no single side, as only a hand-built report can hold,
// counts as changed.
func (r *Report) Summary() Summary {
	s := Summary{Rows: len(r.Rows)}
	net := decimal.Zero
	for _, row := range r.Rows {
		switch {
		case row.Added():
			s.Added++
		case row.Removed():
			s.Removed++
		case row.Delta == nil:
			s.Changed++
		case *row.Delta != 0:
			s.Changed++
			net = net.Add(round(*row.Delta))
		default:
			s.Unchanged++
		}
		if s.FirstChange == "" && row.Changed() {
			s.FirstChange = row.Key
		}
	}
	s.NetDelta = net.InexactFloat64()
	return s
}
