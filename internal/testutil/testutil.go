// Package testutil provides shared table fixtures and logging helpers for
// engine tests.
package testutil

import (
	"testing"

	"github.com/leapstack-labs/tabwin/pkg/table"
)

// MustTable builds a table and fails the test on schema violations.
func MustTable(t *testing.T, schema *table.Schema, rows []table.Row) *table.Table {
	t.Helper()

	tbl, err := table.New(schema, rows)
	if err != nil {
		t.Fatalf("building fixture table: %v", err)
	}
	return tbl
}

// Employees is a small departmental salary table with a tie across
// departments, the shape most ranking and aggregate tests want.
func Employees(t *testing.T) *table.Table {
	t.Helper()

	schema := table.MustSchema(
		table.Column{Name: "name", Kind: table.KindText},
		table.Column{Name: "dept", Kind: table.KindText},
		table.Column{Name: "salary", Kind: table.KindInt},
	)
	return MustTable(t, schema, []table.Row{
		{table.Text("ada"), table.Text("eng"), table.Int(90000)},
		{table.Text("bob"), table.Text("eng"), table.Int(70000)},
		{table.Text("cruz"), table.Text("eng"), table.Int(90000)},
		{table.Text("dee"), table.Text("eng"), table.Int(60000)},
		{table.Text("eli"), table.Text("ops"), table.Int(80000)},
		{table.Text("fay"), table.Text("ops"), table.Int(80000)},
		{table.Text("gus"), table.Text("ops"), table.Int(50000)},
	})
}

// Readings is a single-sensor value series containing a three-long stuck
// run, for island detection tests.
func Readings(t *testing.T) *table.Table {
	t.Helper()

	schema := table.MustSchema(
		table.Column{Name: "sensor", Kind: table.KindText},
		table.Column{Name: "seq", Kind: table.KindInt},
		table.Column{Name: "value", Kind: table.KindInt},
	)
	vals := []int64{5, 5, 5, 7, 5}
	rows := make([]table.Row, len(vals))
	for i, v := range vals {
		rows[i] = table.Row{table.Text("s1"), table.Int(int64(i)), table.Int(v)}
	}
	return MustTable(t, schema, rows)
}
