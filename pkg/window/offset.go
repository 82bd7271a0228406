package window

import (
	"fmt"

	"github.com/leapstack-labs/tabwin/pkg/table"
)

// Lag returns, for each row, the value of column k positions earlier within
// its ordered partition, or def when fewer than k rows precede it. k must
// be non-negative; k=0 returns the row's own value. Out-of-range positions
// are a boundary, not an error.
func (ix *Index) Lag(column string, k int, def table.Value) ([]table.Value, error) {
	return ix.offset("window.Lag", column, k, -1, def)
}

// Lead returns, for each row, the value of column k positions later within
// its ordered partition, or def when fewer than k rows follow it.
func (ix *Index) Lead(column string, k int, def table.Value) ([]table.Value, error) {
	return ix.offset("window.Lead", column, k, 1, def)
}

func (ix *Index) offset(op, column string, k, sign int, def table.Value) ([]table.Value, error) {
	col, err := ix.tbl.Schema().Resolve(column, op)
	if err != nil {
		return nil, err
	}
	if k < 0 {
		return nil, &table.ArgumentError{Op: op, Message: fmt.Sprintf("offset must be non-negative, got %d", k)}
	}

	out := make([]table.Value, ix.tbl.Len())
	for _, p := range ix.parts {
		offsetPartition(ix.tbl, p, col, k*sign, def, out)
	}
	return out, nil
}

func offsetPartition(tbl *table.Table, p Partition, col, step int, def table.Value, out []table.Value) {
	for i, row := range p.Rows {
		j := i + step
		if j < 0 || j >= len(p.Rows) {
			out[row] = def
			continue
		}
		out[row] = tbl.Row(p.Rows[j])[col]
	}
}

// Lag builds an index and evaluates LAG in one call.
func Lag(tbl *table.Table, column string, k int, def table.Value, partitionBy PartitionKey, orderBy []OrderKey) ([]table.Value, error) {
	ix, err := BuildIndex(tbl, partitionBy, orderBy)
	if err != nil {
		return nil, err
	}
	return ix.Lag(column, k, def)
}

// Lead builds an index and evaluates LEAD in one call.
func Lead(tbl *table.Table, column string, k int, def table.Value, partitionBy PartitionKey, orderBy []OrderKey) ([]table.Value, error) {
	ix, err := BuildIndex(tbl, partitionBy, orderBy)
	if err != nil {
		return nil, err
	}
	return ix.Lead(column, k, def)
}
