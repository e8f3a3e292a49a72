package reconcile

// Activity is one itemized amount recorded on a given date, like a paycheck
// or a bill payment.
type Activity struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Record is the balance and the activity of an account at a given key.
//
// Activity is kept in recorded order, which is not necessarily chronological
// within the day.
type Record struct {
	Key      string
	Value    float64
	Activity []Activity
}

// Series is a balance history indexed by key.
type Series map[string]Record

// Keys returns the keys of the series, in no particular order.
func (s Series) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	return keys
}

// Dataset is a balance history as charting tools store it: three parallel
// sequences where index i of each one describes the same point.
//
// A Dataset is only an ingestion shape, use Flatten to turn it into a Series.
type Dataset struct {
	Labels   []string
	Values   []float64
	Activity [][]Activity
}

// Len returns the number of labels in the dataset.
func (d Dataset) Len() int { return len(d.Labels) }
