package window

import "github.com/leapstack-labs/tabwin/pkg/table"

// SortDir is the sort direction of an order key.
type SortDir int

// Sort directions. Ascending is the zero value.
const (
	Asc SortDir = iota
	Desc
)

// NullOrder places null values relative to non-null values in an ordering.
// There is no default: the zero value is rejected at index build time so
// null placement is always an explicit caller decision.
type NullOrder int

// Null orderings.
const (
	nullOrderUnset NullOrder = iota
	NullsFirst
	NullsLast
)

// PartitionKey names the columns rows are grouped by. Empty means a single
// partition spanning the whole table. Null key values form their own
// distinct, self-equal partition.
type PartitionKey []string

// OrderKey is one sort term: a column, a direction, and an explicit null
// placement.
type OrderKey struct {
	Column string
	Dir    SortDir
	Nulls  NullOrder
}

// compareAt orders rows a and b of tbl by the given resolved order columns.
// Null placement applies before direction: NullsFirst puts nulls at the
// start of the partition regardless of Asc/Desc.
func compareAt(tbl *table.Table, cols []int, keys []OrderKey, a, b int) int {
	ra, rb := tbl.Row(a), tbl.Row(b)
	for i, c := range cols {
		va, vb := ra[c], rb[c]
		if va.IsNull() || vb.IsNull() {
			if va.IsNull() && vb.IsNull() {
				continue
			}
			nullCmp := -1
			if keys[i].Nulls == NullsLast {
				nullCmp = 1
			}
			if va.IsNull() {
				return nullCmp
			}
			return -nullCmp
		}
		cmp := va.Compare(vb)
		if cmp == 0 {
			continue
		}
		if keys[i].Dir == Desc {
			cmp = -cmp
		}
		return cmp
	}
	return 0
}
