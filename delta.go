package reconcile

import "github.com/shopspring/decimal"

// Precision is the number of decimal places values are reported with.
const Precision = 2

// Round rounds v to Precision decimal places, half away from zero.
//
// Rounding applies to the shortest decimal representation of v, so float
// noise like 4605.789999999994 converges to 4605.79.
func Round(v float64) float64 { return round(v).InexactFloat64() }

func round(v float64) decimal.Decimal { return decimal.NewFromFloat(v).Round(Precision) }

// Row is the comparison of the two versions of a single key.
//
// Old and New are nil when the key is absent from that version. Delta is
// non-nil iff both are. Values are rounded, activity is left untouched.
type Row struct {
	Key         string
	Old         *float64
	New         *float64
	Delta       *float64
	OldActivity []Activity
	NewActivity []Activity
}

// NewRow computes the comparison row of a pair.
func NewRow(p Pair) Row {
	r := Row{
		Key:         p.Key,
		OldActivity: []Activity{},
		NewActivity: []Activity{},
	}
	var o, n decimal.Decimal
	if p.Old != nil {
		o = round(p.Old.Value)
		r.Old = ptr(o.InexactFloat64())
		if p.Old.Activity != nil {
			r.OldActivity = p.Old.Activity
		}
	}
	if p.New != nil {
		n = round(p.New.Value)
		r.New = ptr(n.InexactFloat64())
		if p.New.Activity != nil {
			r.NewActivity = p.New.Activity
		}
	}
	if p.Old != nil && p.New != nil {
		r.Delta = ptr(n.Sub(o).InexactFloat64())
	}
	return r
}

// Added reports whether the key only exists in the new version.
func (r Row) Added() bool { return r.Old == nil && r.New != nil }

// Removed reports whether the key only exists in the old version.
func (r Row) Removed() bool { return r.Old != nil && r.New == nil }

// Changed reports whether the key is one-sided or its value moved.
func (r Row) Changed() bool { return r.Delta == nil || *r.Delta != 0 }

func ptr(v float64) *float64 { return &v }
