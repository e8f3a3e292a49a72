package renderer

import (
	"io"

	"github.com/etnz/reconcile"
)

// JSON writes the report as an indented JSON document. Missing sides are null.
func JSON(w io.Writer, r *reconcile.Report) error {
	return reconcile.EncodeReport(w, r)
}
