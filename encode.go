package reconcile

import (
	"encoding/json"
	"fmt"
	"io"
)

// MarshalJSON writes the row with a stable field order. Missing sides are
// written as null, never as 0.
func (r Row) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("key", r.Key)
	w.Append("old", r.Old)
	w.Append("new", r.New)
	w.Append("delta", r.Delta)
	w.Append("oldActivity", nonNil(r.OldActivity))
	w.Append("newActivity", nonNil(r.NewActivity))
	return w.MarshalJSON()
}

// UnmarshalJSON reads a row written by MarshalJSON. A row has at least one
// side, and a delta exactly when it has both.
func (r *Row) UnmarshalJSON(data []byte) error {
	var jr struct {
		Key         string     `json:"key"`
		Old         *float64   `json:"old"`
		New         *float64   `json:"new"`
		Delta       *float64   `json:"delta"`
		OldActivity []Activity `json:"oldActivity"`
		NewActivity []Activity `json:"newActivity"`
	}
	if err := json.Unmarshal(data, &jr); err != nil {
		return err
	}
	switch {
	case jr.Old == nil && jr.New == nil:
		return &StructuralError{Kind: MalformedDocument, Index: -1, Key: jr.Key, Detail: "row has neither an old nor a new value"}
	case jr.Old != nil && jr.New != nil && jr.Delta == nil:
		return &StructuralError{Kind: MalformedDocument, Index: -1, Key: jr.Key, Detail: "row has both values but no delta"}
	case (jr.Old == nil || jr.New == nil) && jr.Delta != nil:
		return &StructuralError{Kind: MalformedDocument, Index: -1, Key: jr.Key, Detail: "one-sided row has a delta"}
	}
	*r = Row{
		Key:         jr.Key,
		Old:         jr.Old,
		New:         jr.New,
		Delta:       jr.Delta,
		OldActivity: nonNil(jr.OldActivity),
		NewActivity: nonNil(jr.NewActivity),
	}
	return nil
}

// MarshalJSON writes the rows of the report followed by its summary.
func (r *Report) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("rows", nonNil(r.Rows))
	w.Append("summary", r.Summary())
	return w.MarshalJSON()
}

// UnmarshalJSON reads a report written by MarshalJSON. The summary is
// recomputed from the rows. Keys must be unique.
func (r *Report) UnmarshalJSON(data []byte) error {
	var jr struct {
		Rows []Row `json:"rows"`
	}
	if err := json.Unmarshal(data, &jr); err != nil {
		return err
	}
	seen := make(map[string]int, len(jr.Rows))
	for i, row := range jr.Rows {
		if first, ok := seen[row.Key]; ok {
			return &StructuralError{Kind: MalformedDocument, Index: i, Key: row.Key, Detail: fmt.Sprintf("duplicate row, first at index %d", first)}
		}
		seen[row.Key] = i
	}
	*r = *NewReport(nonNil(jr.Rows))
	return nil
}

// MarshalJSON writes the summary, without firstChange when nothing changed.
func (s Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("rows", s.Rows)
	w.Append("added", s.Added)
	w.Append("removed", s.Removed)
	w.Append("changed", s.Changed)
	w.Append("unchanged", s.Unchanged)
	w.Append("netDelta", s.NetDelta)
	w.Optional("firstChange", s.FirstChange)
	return w.MarshalJSON()
}

// EncodeReport writes the report as indented JSON.
func EncodeReport(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

// DecodeReport reads a report written by EncodeReport.
func DecodeReport(r io.Reader) (*Report, error) {
	var report Report
	if err := json.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}
	return &report, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
