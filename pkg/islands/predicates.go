package islands

import (
	"time"

	"github.com/leapstack-labs/tabwin/pkg/table"
)

// SameValue groups consecutive rows whose named column carries an equal
// value (null equal to null, per grouping semantics). Islands report that
// value as their representative.
func SameValue(column string) Predicate {
	return &sameValue{column: column}
}

type sameValue struct {
	column string
	col    int
}

func (p *sameValue) Bind(schema *table.Schema) error {
	c, err := schema.Resolve(p.column, "islands.SameValue")
	if err != nil {
		return err
	}
	p.col = c
	return nil
}

func (p *sameValue) Adjacent(prev, curr table.Row) bool {
	return prev[p.col].Equal(curr[p.col])
}

func (p *sameValue) value(r table.Row) table.Value {
	return r[p.col]
}

// StepsBy groups consecutive rows whose named numeric column advances by
// exactly delta from the previous row. Null values break the run.
func StepsBy(column string, delta int64) Predicate {
	return &stepsBy{column: column, delta: delta}
}

type stepsBy struct {
	column string
	delta  int64
	col    int
}

func (p *stepsBy) Bind(schema *table.Schema) error {
	c, err := schema.Resolve(p.column, "islands.StepsBy")
	if err != nil {
		return err
	}
	if k := schema.Column(c).Kind; k != table.KindInt && k != table.KindFloat {
		return &table.TypeMismatchError{Column: p.column, Op: "islands.StepsBy", Kind: k}
	}
	p.col = c
	return nil
}

func (p *stepsBy) Adjacent(prev, curr table.Row) bool {
	a, b := prev[p.col], curr[p.col]
	if a.IsNull() || b.IsNull() {
		return false
	}
	// Integer sequences step in int64 arithmetic; float64 differencing
	// loses unit steps past 2^53.
	if a.Kind() == table.KindInt && b.Kind() == table.KindInt {
		return b.Int()-a.Int() == p.delta
	}
	af, _ := a.AsFloat()
	bf, _ := b.AsFloat()
	return bf-af == float64(p.delta)
}

func (p *stepsBy) value(r table.Row) table.Value {
	return r[p.col]
}

// ConsecutiveDays groups consecutive rows whose time column advances by
// exactly one calendar day (date precision; time-of-day is ignored).
func ConsecutiveDays(column string) Predicate {
	return &consecutiveDays{column: column}
}

type consecutiveDays struct {
	column string
	col    int
}

func (p *consecutiveDays) Bind(schema *table.Schema) error {
	c, err := schema.Resolve(p.column, "islands.ConsecutiveDays")
	if err != nil {
		return err
	}
	if k := schema.Column(c).Kind; k != table.KindTime {
		return &table.TypeMismatchError{Column: p.column, Op: "islands.ConsecutiveDays", Kind: k}
	}
	p.col = c
	return nil
}

func (p *consecutiveDays) Adjacent(prev, curr table.Row) bool {
	if prev[p.col].IsNull() || curr[p.col].IsNull() {
		return false
	}
	a := prev[p.col].Time()
	b := curr[p.col].Time()
	return truncateDay(a).AddDate(0, 0, 1).Equal(truncateDay(b))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Func adapts a plain adjacency function into a Predicate. The function
// receives full rows; column resolution and validation are the caller's
// responsibility.
func Func(f func(prev, curr table.Row) bool) Predicate {
	return funcPredicate(f)
}

type funcPredicate func(prev, curr table.Row) bool

func (funcPredicate) Bind(*table.Schema) error { return nil }

func (p funcPredicate) Adjacent(prev, curr table.Row) bool { return p(prev, curr) }
