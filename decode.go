package reconcile

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// Selectors locate a dataset inside a chart document.
//
// A chart document is the JSON object charting front-ends consume:
//
//	{
//	  "type": "activity",
//	  "labels": ["2025-01-24", ...],
//	  "datasets": [{"label": "Jake", "data": [13503.81, ...], "activity": [[{"name": "Nearpod", "amount": 14515.58}], ...]}]
//	}
//
// Labels and Dataset are JSONPath expressions evaluated on the document,
// Values and Activity are evaluated on the selected dataset.
type Selectors struct {
	Labels   string
	Dataset  string
	Values   string
	Activity string
}

// DefaultSelectors select the first dataset of a chart document.
var DefaultSelectors = Selectors{
	Labels:   "$.labels",
	Dataset:  "$.datasets[0]",
	Values:   "$.data",
	Activity: "$.activity",
}

// ByLabel returns a copy of s that selects the dataset named label.
func (s Selectors) ByLabel(label string) Selectors {
	s.Dataset = fmt.Sprintf("$.datasets[?(@.label==%q)]", label)
	return s
}

// DecodeChart reads a chart document and extracts the dataset located by sel.
//
// Every failure is a *StructuralError of kind MalformedDocument. The
// returned Dataset is not validated yet, that is Flatten's job.
func DecodeChart(r io.Reader, sel Selectors) (Dataset, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Dataset{}, malformed("invalid JSON", err)
	}

	var d Dataset
	labels, err := jsonpath.Get(sel.Labels, doc)
	if err != nil {
		return Dataset{}, malformed(fmt.Sprintf("selecting labels with %q", sel.Labels), err)
	}
	if d.Labels, err = nonNull[string](labels); err != nil {
		return Dataset{}, malformed(fmt.Sprintf("labels at %q must be an array of strings", sel.Labels), err)
	}

	dataset, err := selectOne(sel.Dataset, doc)
	if err != nil {
		return Dataset{}, err
	}

	values, err := jsonpath.Get(sel.Values, dataset)
	if err != nil {
		return Dataset{}, malformed(fmt.Sprintf("selecting values with %q", sel.Values), err)
	}
	if d.Values, err = nonNull[float64](values); err != nil {
		return Dataset{}, malformed(fmt.Sprintf("values at %q must be an array of numbers", sel.Values), err)
	}

	activity, err := jsonpath.Get(sel.Activity, dataset)
	if err != nil {
		return Dataset{}, malformed(fmt.Sprintf("selecting activity with %q", sel.Activity), err)
	}
	d.Activity, err = decodeActivity(activity)
	if err != nil {
		return Dataset{}, malformed(fmt.Sprintf("activity at %q", sel.Activity), err)
	}
	return d, nil
}

// selectOne evaluates path on doc and expects exactly one JSON object.
// Filter expressions return a list of matches, hence the unwrapping.
func selectOne(path string, doc any) (map[string]any, error) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, malformed(fmt.Sprintf("selecting dataset with %q", path), err)
	}
	if list, ok := v.([]any); ok {
		if len(list) != 1 {
			return nil, malformed(fmt.Sprintf("dataset selector %q matched %d datasets, want exactly 1", path, len(list)), nil)
		}
		v = list[0]
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, malformed(fmt.Sprintf("dataset selector %q matched a %T, want an object", path, v), nil)
	}
	return m, nil
}

// decodeActivity converts the generic activity node into typed entries.
// A null list stands for no activity.
func decodeActivity(node any) ([][]Activity, error) {
	type jactivity struct {
		Name   *string  `json:"name"`
		Amount *float64 `json:"amount"`
	}
	var lists [][]jactivity
	if err := retype(node, &lists); err != nil {
		return nil, fmt.Errorf("must be an array of arrays of {name, amount}: %w", err)
	}
	activity := make([][]Activity, len(lists))
	for i, list := range lists {
		activity[i] = make([]Activity, 0, len(list))
		for j, ja := range list {
			if ja.Name == nil || ja.Amount == nil {
				return nil, fmt.Errorf("entry %d of list %d must have a name and an amount", j, i)
			}
			activity[i] = append(activity[i], Activity{Name: *ja.Name, Amount: *ja.Amount})
		}
	}
	return activity, nil
}

// nonNull converts a generic JSON array into a typed slice, rejecting null
// elements instead of reading them as zero values.
func nonNull[T any](node any) ([]T, error) {
	var list []*T
	if err := retype(node, &list); err != nil {
		return nil, err
	}
	typed := make([]T, len(list))
	for i, v := range list {
		if v == nil {
			return nil, fmt.Errorf("element %d is null", i)
		}
		typed[i] = *v
	}
	return typed, nil
}

// retype converts a generic JSON node into a typed value.
func retype(node any, v any) error {
	b, err := json.Marshal(node)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

func malformed(detail string, err error) *StructuralError {
	return &StructuralError{Kind: MalformedDocument, Index: -1, Detail: detail, Err: err}
}
