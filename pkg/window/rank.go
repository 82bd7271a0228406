package window

import "github.com/leapstack-labs/tabwin/pkg/table"

// RowNumber assigns 1..k within each partition, strictly increasing in
// order-key order with ties broken by input order. The result aligns with
// the input table's row order.
func (ix *Index) RowNumber() []table.Value {
	out := make([]table.Value, ix.tbl.Len())
	for _, p := range ix.parts {
		rowNumberPartition(p, out)
	}
	return out
}

// Rank assigns the 1-based position of the first order-key-equal row; ties
// share a rank and the next distinct value skips past them.
func (ix *Index) Rank() []table.Value {
	out := make([]table.Value, ix.tbl.Len())
	for _, p := range ix.parts {
		rankPartition(ix, p, false, out)
	}
	return out
}

// DenseRank assigns the 1-based ordinal of distinct order-key values; ties
// share a rank and no gaps appear. The Nth-highest-with-ties idiom is
// DenseRank == N under a descending order key.
func (ix *Index) DenseRank() []table.Value {
	out := make([]table.Value, ix.tbl.Len())
	for _, p := range ix.parts {
		rankPartition(ix, p, true, out)
	}
	return out
}

func rowNumberPartition(p Partition, out []table.Value) {
	for i, row := range p.Rows {
		out[row] = table.Int(int64(i + 1))
	}
}

func rankPartition(ix *Index, p Partition, dense bool, out []table.Value) {
	rank := int64(1)
	for i, row := range p.Rows {
		if i > 0 && !ix.sameOrderKey(p.Rows[i-1], row) {
			if dense {
				rank++
			} else {
				rank = int64(i + 1)
			}
		}
		out[row] = table.Int(rank)
	}
}

// RowNumber builds an index and evaluates ROW_NUMBER in one call. Prefer
// BuildIndex plus the Index methods when chaining several evaluators over
// the same partition/order pair.
func RowNumber(tbl *table.Table, partitionBy PartitionKey, orderBy []OrderKey) ([]table.Value, error) {
	ix, err := BuildIndex(tbl, partitionBy, orderBy)
	if err != nil {
		return nil, err
	}
	return ix.RowNumber(), nil
}

// Rank builds an index and evaluates RANK in one call.
func Rank(tbl *table.Table, partitionBy PartitionKey, orderBy []OrderKey) ([]table.Value, error) {
	ix, err := BuildIndex(tbl, partitionBy, orderBy)
	if err != nil {
		return nil, err
	}
	return ix.Rank(), nil
}

// DenseRank builds an index and evaluates DENSE_RANK in one call.
func DenseRank(tbl *table.Table, partitionBy PartitionKey, orderBy []OrderKey) ([]table.Value, error) {
	ix, err := BuildIndex(tbl, partitionBy, orderBy)
	if err != nil {
		return nil, err
	}
	return ix.DenseRank(), nil
}
