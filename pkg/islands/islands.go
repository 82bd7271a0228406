// Package islands detects maximal contiguous runs ("islands") of rows within
// ordered partitions, where a caller-supplied adjacency predicate holds
// between every pair of consecutive rows.
//
// Two standard predicates cover the common cases: SameValue for value-run
// detection (repeated readings, stuck sensors) and StepsBy for sequence-gap
// detection (consecutive identifiers). ConsecutiveDays handles the calendar
// variant of StepsBy. Minimum-length filtering is the caller's decision;
// Filter is provided as a convenience and Group never applies it.
package islands

import (
	"github.com/leapstack-labs/tabwin/pkg/table"
	"github.com/leapstack-labs/tabwin/pkg/window"
)

// Predicate decides whether two consecutive rows of an ordered partition
// belong to the same island. Bind is called once per Group call to resolve
// any referenced columns against the table's schema.
type Predicate interface {
	Bind(schema *table.Schema) error
	Adjacent(prev, curr table.Row) bool
}

// valuer is implemented by predicates that designate a representative value
// column for the islands they produce.
type valuer interface {
	value(r table.Row) table.Value
}

// Island is one maximal run. StartRow/EndRow are positions in the input
// table; StartOrder/EndOrder are the first order key's values at the run
// boundaries. Value is the run's representative for value-based predicates
// and null otherwise.
type Island struct {
	PartitionKey []table.Value
	StartRow     int
	EndRow       int
	StartOrder   table.Value
	EndOrder     table.Value
	Count        int
	Value        table.Value
}

// Group orders and partitions tbl, then splits each partition into maximal
// islands under pred. Consecutive rows share an island iff pred holds for
// every adjacent pair along the run. Empty partitions yield no islands;
// a single row is an island of one.
func Group(tbl *table.Table, partitionBy window.PartitionKey, orderBy []window.OrderKey, pred Predicate) ([]Island, error) {
	if err := pred.Bind(tbl.Schema()); err != nil {
		return nil, err
	}
	ix, err := window.BuildIndex(tbl, partitionBy, orderBy)
	if err != nil {
		return nil, err
	}

	var orderCol = -1
	if len(orderBy) > 0 {
		// Resolved successfully during BuildIndex.
		orderCol, _ = tbl.Schema().Index(orderBy[0].Column)
	}

	var out []Island
	for p := 0; p < ix.NumPartitions(); p++ {
		part := ix.Partition(p)
		runStart := 0
		for i := 1; i <= len(part.Rows); i++ {
			if i < len(part.Rows) && pred.Adjacent(tbl.Row(part.Rows[i-1]), tbl.Row(part.Rows[i])) {
				continue
			}
			out = append(out, makeIsland(tbl, part, runStart, i-1, orderCol, pred))
			runStart = i
		}
	}
	return out, nil
}

func makeIsland(tbl *table.Table, part window.Partition, start, end, orderCol int, pred Predicate) Island {
	isl := Island{
		PartitionKey: part.Key,
		StartRow:     part.Rows[start],
		EndRow:       part.Rows[end],
		Count:        end - start + 1,
		StartOrder:   table.Null(),
		EndOrder:     table.Null(),
		Value:        table.Null(),
	}
	if orderCol >= 0 {
		isl.StartOrder = tbl.Row(part.Rows[start])[orderCol]
		isl.EndOrder = tbl.Row(part.Rows[end])[orderCol]
	}
	if v, ok := pred.(valuer); ok {
		isl.Value = v.value(tbl.Row(part.Rows[start]))
	}
	return isl
}

// Filter returns the islands spanning at least minLen rows. Sugar over the
// caller-side filtering contract; Group itself never drops short runs.
func Filter(islands []Island, minLen int) []Island {
	var out []Island
	for _, isl := range islands {
		if isl.Count >= minLen {
			out = append(out, isl)
		}
	}
	return out
}
