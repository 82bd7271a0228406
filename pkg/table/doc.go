// Package table provides the in-memory tabular data model for the analytics
// engine: typed values, schemas, rows, and immutable tables.
//
// # Basic Usage
//
//	schema, err := table.NewSchema(
//	    table.Column{Name: "dept", Kind: table.KindText},
//	    table.Column{Name: "salary", Kind: table.KindInt},
//	)
//	tbl, err := table.New(schema, []table.Row{
//	    {table.Text("eng"), table.Int(90000)},
//	    {table.Text("eng"), table.Int(70000)},
//	})
//
// Tables are immutable once constructed: derived results are produced as new
// tables or as standalone value columns, never by mutating the input.
package table
