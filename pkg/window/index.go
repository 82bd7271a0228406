package window

import (
	"sort"

	"github.com/leapstack-labs/tabwin/pkg/table"
)

// Partition is one group of rows sharing a partition key, ordered by the
// index's order keys. Rows holds positions into the source table.
type Partition struct {
	Key  []table.Value
	Rows []int
}

// Index groups a table's rows by partition key and orders each group by a
// set of order keys. It is the shared first pass for every evaluator in
// this package: build it once per partition/order pair and chain evaluators
// against it.
//
// An Index holds only row positions plus a reference to the source table;
// it is valid for as long as the table it was built from.
type Index struct {
	tbl       *table.Table
	orderCols []int
	orderKeys []OrderKey
	parts     []Partition
}

// BuildIndex validates the keys against the table's schema, groups rows by
// partitionBy, and stably sorts each group by orderBy. Rows with equal
// order keys keep their input order, so repeated runs over the same input
// produce identical orderings.
func BuildIndex(tbl *table.Table, partitionBy PartitionKey, orderBy []OrderKey) (*Index, error) {
	const op = "window.BuildIndex"

	partCols := make([]int, len(partitionBy))
	for i, name := range partitionBy {
		c, err := tbl.Schema().Resolve(name, op)
		if err != nil {
			return nil, err
		}
		partCols[i] = c
	}

	orderCols := make([]int, len(orderBy))
	for i, k := range orderBy {
		c, err := tbl.Schema().Resolve(k.Column, op)
		if err != nil {
			return nil, err
		}
		if k.Nulls == nullOrderUnset {
			return nil, &table.ArgumentError{Op: op, Message: "null ordering must be explicit (NullsFirst or NullsLast)"}
		}
		orderCols[i] = c
	}

	// Group by partition key, partitions ordered by first appearance.
	var parts []Partition
	seen := make(map[string]int)
	keyBuf := make([]table.Value, len(partCols))
	for i := 0; i < tbl.Len(); i++ {
		row := tbl.Row(i)
		for j, c := range partCols {
			keyBuf[j] = row[c]
		}
		k := table.Key(keyBuf)
		p, ok := seen[k]
		if !ok {
			p = len(parts)
			seen[k] = p
			key := make([]table.Value, len(keyBuf))
			copy(key, keyBuf)
			parts = append(parts, Partition{Key: key})
		}
		parts[p].Rows = append(parts[p].Rows, i)
	}

	ix := &Index{tbl: tbl, orderCols: orderCols, orderKeys: orderBy, parts: parts}
	for p := range ix.parts {
		rows := ix.parts[p].Rows
		sort.SliceStable(rows, func(a, b int) bool {
			return compareAt(tbl, orderCols, orderBy, rows[a], rows[b]) < 0
		})
	}
	return ix, nil
}

// Table returns the source table.
func (ix *Index) Table() *table.Table { return ix.tbl }

// NumPartitions returns the partition count.
func (ix *Index) NumPartitions() int { return len(ix.parts) }

// Partition returns the p-th partition, in order of first appearance in the
// input.
func (ix *Index) Partition(p int) Partition { return ix.parts[p] }

// sameOrderKey reports whether rows a and b compare equal under the order
// keys. Used for rank tie detection.
func (ix *Index) sameOrderKey(a, b int) bool {
	return compareAt(ix.tbl, ix.orderCols, ix.orderKeys, a, b) == 0
}
