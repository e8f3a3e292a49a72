package reconcile

import (
	"fmt"
	"math"
)

// Flatten zips the parallel sequences of d into a Series.
//
// It fails with a *StructuralError if the sequences have different lengths,
// if a label appears twice, or if a value or an activity amount is NaN or
// infinite. On success the Series has exactly d.Len() entries.
func Flatten(d Dataset) (Series, error) {
	n := len(d.Labels)
	if len(d.Values) != n || len(d.Activity) != n {
		return nil, &StructuralError{
			Kind:   LengthMismatch,
			Index:  -1,
			Detail: fmt.Sprintf("%d labels, %d values, %d activity lists", n, len(d.Values), len(d.Activity)),
		}
	}

	s := make(Series, n)
	for i, key := range d.Labels {
		if prev, exists := s[key]; exists {
			return nil, &StructuralError{
				Kind:   DuplicateKey,
				Index:  i,
				Key:    key,
				Detail: fmt.Sprintf("label already used with value %v", prev.Value),
			}
		}
		v := d.Values[i]
		if !finite(v) {
			return nil, &StructuralError{Kind: NonFiniteValue, Index: i, Key: key, Detail: fmt.Sprintf("value is %v", v)}
		}
		for j, a := range d.Activity[i] {
			if !finite(a.Amount) {
				return nil, &StructuralError{
					Kind:   NonFiniteValue,
					Index:  i,
					Key:    key,
					Detail: fmt.Sprintf("activity #%d %q amount is %v", j, a.Name, a.Amount),
				}
			}
		}
		s[key] = Record{Key: key, Value: v, Activity: d.Activity[i]}
	}
	return s, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
