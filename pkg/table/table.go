package table

import "fmt"

// Row is one record, positionally aligned with its table's schema.
type Row []Value

// Table is an immutable sequence of rows sharing one schema.
type Table struct {
	schema *Schema
	rows   []Row
}

// New builds a table, validating that every row matches the schema width.
// The rows slice is retained; callers must not mutate it afterwards.
func New(schema *Schema, rows []Row) (*Table, error) {
	for i, r := range rows {
		if len(r) != schema.Len() {
			return nil, fmt.Errorf("table: row %d has %d values, schema has %d columns", i, len(r), schema.Len())
		}
	}
	return &Table{schema: schema, rows: rows}, nil
}

// Schema returns the table's schema.
func (t *Table) Schema() *Schema { return t.schema }

// Len returns the row count.
func (t *Table) Len() int { return len(t.rows) }

// Row returns the row at position i.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Value returns the cell at row i, named column.
func (t *Table) Value(i int, column string) (Value, error) {
	c, err := t.schema.Resolve(column, "table.Value")
	if err != nil {
		return Value{}, err
	}
	return t.rows[i][c], nil
}

// Rows returns a copy of the row slice. The rows themselves are shared;
// treat them as read-only.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// WithColumn returns a new table with one column appended; the input table
// is untouched. values must align with the table's row order.
func (t *Table) WithColumn(name string, kind Kind, values []Value) (*Table, error) {
	if len(values) != len(t.rows) {
		return nil, fmt.Errorf("table: column %q has %d values, table has %d rows", name, len(values), len(t.rows))
	}
	if _, dup := t.schema.Index(name); dup {
		return nil, &ArgumentError{Op: "table.WithColumn", Message: fmt.Sprintf("column %q already exists", name)}
	}
	cols := append(t.schema.Columns(), Column{Name: name, Kind: kind})
	rows := make([]Row, len(t.rows))
	for i, r := range t.rows {
		nr := make(Row, len(r)+1)
		copy(nr, r)
		nr[len(r)] = values[i]
		rows[i] = nr
	}
	// Uniqueness of the new name was checked above.
	return &Table{schema: MustSchema(cols...), rows: rows}, nil
}

// Select returns a new table holding the rows at the given positions, in the
// given order. Positions may repeat.
func (t *Table) Select(positions []int) (*Table, error) {
	rows := make([]Row, len(positions))
	for i, p := range positions {
		if p < 0 || p >= len(t.rows) {
			return nil, fmt.Errorf("table: row position %d out of range [0,%d)", p, len(t.rows))
		}
		rows[i] = t.rows[p]
	}
	return &Table{schema: t.schema, rows: rows}, nil
}
