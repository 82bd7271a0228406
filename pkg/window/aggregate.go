package window

import (
	"fmt"

	"github.com/leapstack-labs/tabwin/pkg/table"
)

// AggKind selects the aggregate computed over a frame. The set is closed:
// each kind carries its own accumulator and null rule, dispatched once per
// evaluation.
type AggKind int

// Aggregate kinds.
const (
	AggSum AggKind = iota
	AggAvg
	AggCount
	AggMin
	AggMax
)

func (k AggKind) String() string {
	switch k {
	case AggSum:
		return "SUM"
	case AggAvg:
		return "AVG"
	case AggCount:
		return "COUNT"
	case AggMin:
		return "MIN"
	case AggMax:
		return "MAX"
	}
	return fmt.Sprintf("agg(%d)", int(k))
}

// Aggregate computes kind over column for each row's frame, resolved within
// the row's ordered partition and clamped to it. Running totals and moving
// windows differ only in the frame. Null values are skipped; an empty or
// all-null frame yields null (COUNT yields 0) rather than an error, and AVG
// never surfaces a division fault.
//
// SUM and AVG require a numeric column and fail with TypeMismatchError
// otherwise; COUNT, MIN, and MAX accept any kind.
func (ix *Index) Aggregate(column string, kind AggKind, frame Frame) ([]table.Value, error) {
	const op = "window.Aggregate"

	col, err := ix.tbl.Schema().Resolve(column, op)
	if err != nil {
		return nil, err
	}
	colKind := ix.tbl.Schema().Column(col).Kind
	if (kind == AggSum || kind == AggAvg) && colKind != table.KindInt && colKind != table.KindFloat {
		return nil, &table.TypeMismatchError{Column: column, Op: op + ": " + kind.String(), Kind: colKind}
	}
	if err := frame.Start.validate(op); err != nil {
		return nil, err
	}
	if err := frame.End.validate(op); err != nil {
		return nil, err
	}

	out := make([]table.Value, ix.tbl.Len())
	for _, p := range ix.parts {
		aggregatePartition(ix.tbl, p, col, colKind, kind, frame, out)
	}
	return out, nil
}

func aggregatePartition(tbl *table.Table, p Partition, col int, colKind table.Kind, kind AggKind, frame Frame, out []table.Value) {
	n := len(p.Rows)
	for pos, row := range p.Rows {
		acc := newAccumulator(kind, colKind)
		if start, end, ok := frame.span(pos, n); ok {
			for j := start; j <= end; j++ {
				acc.add(tbl.Row(p.Rows[j])[col])
			}
		}
		out[row] = acc.result()
	}
}

// Aggregate builds an index and evaluates one frame aggregate in one call.
func Aggregate(tbl *table.Table, column string, kind AggKind, frame Frame, partitionBy PartitionKey, orderBy []OrderKey) ([]table.Value, error) {
	ix, err := BuildIndex(tbl, partitionBy, orderBy)
	if err != nil {
		return nil, err
	}
	return ix.Aggregate(column, kind, frame)
}

type accumulator interface {
	add(v table.Value)
	result() table.Value
}

func newAccumulator(kind AggKind, colKind table.Kind) accumulator {
	switch kind {
	case AggSum:
		if colKind == table.KindInt {
			return &intSumAcc{}
		}
		return &floatSumAcc{}
	case AggAvg:
		return &avgAcc{}
	case AggCount:
		return &countAcc{}
	case AggMin:
		return &extremeAcc{want: -1}
	case AggMax:
		return &extremeAcc{want: 1}
	}
	panic(fmt.Sprintf("window: unknown aggregate kind %d", int(kind)))
}

type intSumAcc struct {
	sum int64
	any bool
}

func (a *intSumAcc) add(v table.Value) {
	if v.IsNull() {
		return
	}
	a.sum += v.Int()
	a.any = true
}

func (a *intSumAcc) result() table.Value {
	if !a.any {
		return table.Null()
	}
	return table.Int(a.sum)
}

type floatSumAcc struct {
	sum float64
	any bool
}

func (a *floatSumAcc) add(v table.Value) {
	f, ok := v.AsFloat()
	if !ok {
		return
	}
	a.sum += f
	a.any = true
}

func (a *floatSumAcc) result() table.Value {
	if !a.any {
		return table.Null()
	}
	return table.Float(a.sum)
}

type avgAcc struct {
	sum   float64
	count int64
}

func (a *avgAcc) add(v table.Value) {
	f, ok := v.AsFloat()
	if !ok {
		return
	}
	a.sum += f
	a.count++
}

func (a *avgAcc) result() table.Value {
	if a.count == 0 {
		return table.Null()
	}
	return table.Float(a.sum / float64(a.count))
}

type countAcc struct {
	count int64
}

func (a *countAcc) add(v table.Value) {
	if !v.IsNull() {
		a.count++
	}
}

func (a *countAcc) result() table.Value {
	return table.Int(a.count)
}

type extremeAcc struct {
	want int // sign of Compare that replaces best
	best table.Value
	any  bool
}

func (a *extremeAcc) add(v table.Value) {
	if v.IsNull() {
		return
	}
	if !a.any {
		a.best = v
		a.any = true
		return
	}
	if c := v.Compare(a.best); (a.want < 0 && c < 0) || (a.want > 0 && c > 0) {
		a.best = v
	}
}

func (a *extremeAcc) result() table.Value {
	if !a.any {
		return table.Null()
	}
	return a.best
}
