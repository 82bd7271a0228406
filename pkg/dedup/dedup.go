// Package dedup provides keyed set-difference (anti-join) and
// duplicate-collapse over tables.
//
// Null handling is deliberate on both operations: a null key component in
// the right-hand table never matches anything and never suppresses a
// left-hand row, and left-hand rows with null keys are kept, since no key
// equals null. Treating null as a wildcard here is the classic NOT IN
// correctness bug this package exists to avoid.
package dedup

import (
	"fmt"
	"sort"

	"github.com/leapstack-labs/tabwin/pkg/table"
	"github.com/leapstack-labs/tabwin/pkg/window"
)

// AntiJoin returns the rows of a whose key tuple appears nowhere in b,
// preserving a's row order. aKey and bKey name the key columns in each
// table and must have equal length.
func AntiJoin(a, b *table.Table, aKey, bKey []string) (*table.Table, error) {
	const op = "dedup.AntiJoin"

	if len(aKey) == 0 || len(aKey) != len(bKey) {
		return nil, &table.ArgumentError{Op: op, Message: fmt.Sprintf("key column lists must be non-empty and equal length, got %d and %d", len(aKey), len(bKey))}
	}
	aCols, err := resolveAll(a.Schema(), aKey, op)
	if err != nil {
		return nil, err
	}
	bCols, err := resolveAll(b.Schema(), bKey, op)
	if err != nil {
		return nil, err
	}

	// B keys containing any null component never match an A row.
	present := make(map[string]struct{}, b.Len())
	keyBuf := make([]table.Value, len(bCols))
	for i := 0; i < b.Len(); i++ {
		row := b.Row(i)
		hasNull := false
		for j, c := range bCols {
			if row[c].IsNull() {
				hasNull = true
				break
			}
			keyBuf[j] = row[c]
		}
		if hasNull {
			continue
		}
		present[table.Key(keyBuf)] = struct{}{}
	}

	var keep []int
	akeyBuf := make([]table.Value, len(aCols))
	for i := 0; i < a.Len(); i++ {
		row := a.Row(i)
		hasNull := false
		for j, c := range aCols {
			if row[c].IsNull() {
				hasNull = true
				break
			}
			akeyBuf[j] = row[c]
		}
		// A null key equals no B key, so the row survives.
		if hasNull {
			keep = append(keep, i)
			continue
		}
		if _, ok := present[table.Key(akeyBuf)]; !ok {
			keep = append(keep, i)
		}
	}
	return a.Select(keep)
}

// Deduplicate collapses tbl to one representative row per distinct key
// tuple: the rank-1 row under orderBy within each key group, ties broken
// by input order (the same stable rule ranking uses). Output rows keep
// their relative input order. Null keys form their own distinct group.
func Deduplicate(tbl *table.Table, key []string, orderBy []window.OrderKey) (*table.Table, error) {
	const op = "dedup.Deduplicate"

	if len(key) == 0 {
		return nil, &table.ArgumentError{Op: op, Message: "key column list must be non-empty"}
	}
	ix, err := window.BuildIndex(tbl, window.PartitionKey(key), orderBy)
	if err != nil {
		return nil, err
	}

	reps := make([]int, 0, ix.NumPartitions())
	for p := 0; p < ix.NumPartitions(); p++ {
		part := ix.Partition(p)
		if len(part.Rows) > 0 {
			reps = append(reps, part.Rows[0])
		}
	}
	sort.Ints(reps)
	return tbl.Select(reps)
}

func resolveAll(schema *table.Schema, names []string, op string) ([]int, error) {
	cols := make([]int, len(names))
	for i, name := range names {
		c, err := schema.Resolve(name, op)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	return cols, nil
}
