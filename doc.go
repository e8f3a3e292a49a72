// Package reconcile compares two versions of an account's balance history and
// reports, for every key of either version, how the balance moved and which
// itemized activity stands behind it.
//
// It is meant to audit a recomputation: after a correction in the source data,
// the running balance of every later date shifts, and the report tells by how
// much and which entries changed.
//
// The comparison is a pipeline of small pure steps:
//   - Flatten validates a Dataset (parallel labels, values, activity) and turns
//     it into a Series of Records keyed by label.
//   - Align pairs the records of both series over the union of their keys.
//   - NewRow computes the rounded values and the delta of a pair.
//   - NewReport sorts the rows by key.
//
// Compare chains them all. Any malformed input stops the comparison with a
// *StructuralError before a single row is computed: there are no partial
// reports.
//
// Values are float64. They are rounded to two decimals, half away from zero,
// only when building rows.
package reconcile
