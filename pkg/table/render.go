package table

import (
	"fmt"
	"io"

	pretty "github.com/jedib0t/go-pretty/v6/table"
)

// Render writes the table to w in a human-readable grid, for debugging and
// examples. Not part of the evaluation path.
func (t *Table) Render(w io.Writer) {
	if t.Len() == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}

	tw := pretty.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(pretty.StyleLight)

	header := pretty.Row{}
	for _, c := range t.schema.Columns() {
		header = append(header, c.Name)
	}
	tw.AppendHeader(header)

	for _, r := range t.rows {
		out := pretty.Row{}
		for _, v := range r {
			out = append(out, v.String())
		}
		tw.AppendRow(out)
	}

	tw.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", t.Len())
}
