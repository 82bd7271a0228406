package table

import "fmt"

// InvalidKeyError reports a partition, order, or predicate column that is
// absent from the schema.
type InvalidKeyError struct {
	Column string
	Op     string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("%s: unknown column %q", e.Op, e.Column)
}

// TypeMismatchError reports an operation requested over an incompatible
// column type, such as a numeric aggregate over text.
type TypeMismatchError struct {
	Column string
	Op     string
	Kind   Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: column %q has incompatible type %s", e.Op, e.Column, e.Kind)
}

// ArgumentError reports an invalid caller-supplied parameter.
type ArgumentError struct {
	Op      string
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}
