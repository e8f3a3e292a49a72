package reconcile

import (
	"errors"
	"fmt"
)

// ErrStructural matches every *StructuralError with errors.Is.
var ErrStructural = errors.New("structural error")

// StructuralKind classifies an input shape violation.
type StructuralKind int

const (
	LengthMismatch StructuralKind = iota
	DuplicateKey
	NonFiniteValue
	MalformedDocument
)

func (k StructuralKind) String() string {
	switch k {
	case LengthMismatch:
		return "length mismatch"
	case DuplicateKey:
		return "duplicate key"
	case NonFiniteValue:
		return "non-finite value"
	case MalformedDocument:
		return "malformed document"
	}
	return fmt.Sprintf("StructuralKind(%d)", int(k))
}

// StructuralError reports a dataset that cannot be compared at all.
//
// Nothing is ever repaired, merged or dropped: a comparison hitting a
// StructuralError produces no report.
type StructuralError struct {
	Side   string // "old" or "new", empty when unknown.
	Kind   StructuralKind
	Index  int    // offending index, -1 when not applicable.
	Key    string // offending key, if any.
	Detail string
	Err    error // underlying cause, if any.
}

func (e *StructuralError) Error() string {
	msg := e.Kind.String()
	if e.Side != "" {
		msg = e.Side + " dataset: " + msg
	}
	if e.Key != "" {
		msg += fmt.Sprintf(" at key %q", e.Key)
	} else if e.Index >= 0 {
		msg += fmt.Sprintf(" at index %d", e.Index)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *StructuralError) Unwrap() error { return e.Err }

// Is makes every StructuralError match ErrStructural.
func (e *StructuralError) Is(target error) bool { return target == ErrStructural }

// onSide returns err with its Side set, if it is a *StructuralError.
func onSide(side string, err error) error {
	var se *StructuralError
	if errors.As(err, &se) {
		se.Side = side
	}
	return err
}
