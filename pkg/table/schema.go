package table

import "fmt"

// Column is a named, typed column definition.
type Column struct {
	Name string
	Kind Kind
}

// Schema is an ordered set of column definitions shared by every row of a
// table.
type Schema struct {
	cols   []Column
	byName map[string]int
}

// NewSchema builds a schema from an ordered column list. Duplicate column
// names are an error, so schemas assembled from external metadata fail
// loudly instead of shadowing a column.
func NewSchema(cols ...Column) (*Schema, error) {
	byName := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, dup := byName[c.Name]; dup {
			return nil, &ArgumentError{Op: "table.NewSchema", Message: fmt.Sprintf("duplicate column %q", c.Name)}
		}
		byName[c.Name] = i
	}
	return &Schema{cols: cols, byName: byName}, nil
}

// MustSchema is NewSchema for column lists known at compile time, such as
// test fixtures; it panics on duplicates.
func MustSchema(cols ...Column) *Schema {
	s, err := NewSchema(cols...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len returns the number of columns.
func (s *Schema) Len() int { return len(s.cols) }

// Columns returns the column definitions in schema order.
func (s *Schema) Columns() []Column {
	out := make([]Column, len(s.cols))
	copy(out, s.cols)
	return out
}

// Column returns the definition at position i.
func (s *Schema) Column(i int) Column { return s.cols[i] }

// Index returns the position of the named column.
func (s *Schema) Index(name string) (int, bool) {
	i, ok := s.byName[name]
	return i, ok
}

// Resolve returns the position of the named column, or an InvalidKeyError
// attributed to op.
func (s *Schema) Resolve(name, op string) (int, error) {
	i, ok := s.byName[name]
	if !ok {
		return 0, &InvalidKeyError{Column: name, Op: op}
	}
	return i, nil
}
