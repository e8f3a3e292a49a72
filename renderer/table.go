package renderer

import (
	"fmt"
	"io"

	"github.com/etnz/reconcile"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Table writes the report as an aligned terminal table, with the summary as footer.
func Table(w io.Writer, r *reconcile.Report, opts Options) error {
	c := NewComparison(r, opts)

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
		{Number: 4, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})

	tbl.AppendHeader(table.Row{"Key", "Old", "New", "Delta"})
	for _, row := range c.Rows {
		tbl.AppendRow(table.Row{row.Key, row.Old, row.New, row.Delta})
	}
	s := c.Summary
	tbl.AppendFooter(table.Row{
		fmt.Sprintf("%d rows", s.Rows),
		fmt.Sprintf("%d removed", s.Removed),
		fmt.Sprintf("%d added", s.Added),
		s.NetDelta,
	})

	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}
