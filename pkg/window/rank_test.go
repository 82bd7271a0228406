package window_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tabwin/internal/testutil"
	"github.com/leapstack-labs/tabwin/pkg/table"
	"github.com/leapstack-labs/tabwin/pkg/window"
)

// valueTable builds a one-partition table of named rows with an int value,
// mirroring the {(A,90000),(B,70000),(C,90000),(D,60000)} shape.
func valueTable(t *testing.T) *table.Table {
	schema := table.MustSchema(
		table.Column{Name: "name", Kind: table.KindText},
		table.Column{Name: "value", Kind: table.KindInt},
	)
	return testutil.MustTable(t, schema, []table.Row{
		{table.Text("A"), table.Int(90000)},
		{table.Text("B"), table.Int(70000)},
		{table.Text("C"), table.Int(90000)},
		{table.Text("D"), table.Int(60000)},
	})
}

func TestDenseRankWithTies(t *testing.T) {
	tbl := valueTable(t)

	ranks, err := window.DenseRank(tbl, nil, []window.OrderKey{
		{Column: "value", Dir: window.Desc, Nulls: window.NullsLast},
	})
	require.NoError(t, err)

	// A and C tie at rank 1; B follows at 2 with no gap; D at 3.
	want := []int64{1, 2, 1, 3}
	for i, w := range want {
		assert.Equal(t, w, ranks[i].Int(), "row %d", i)
	}
}

func TestRankSkipsAfterTies(t *testing.T) {
	tbl := valueTable(t)

	ranks, err := window.Rank(tbl, nil, []window.OrderKey{
		{Column: "value", Dir: window.Desc, Nulls: window.NullsLast},
	})
	require.NoError(t, err)

	// Two rows at rank 1, so the next distinct value lands at rank 3.
	want := []int64{1, 3, 1, 4}
	for i, w := range want {
		assert.Equal(t, w, ranks[i].Int(), "row %d", i)
	}
}

func TestRowNumberIsAPermutation(t *testing.T) {
	tbl := testutil.Employees(t)

	ix, err := window.BuildIndex(tbl, window.PartitionKey{"dept"}, salaryDesc())
	require.NoError(t, err)
	nums := ix.RowNumber()

	perDept := map[string][]int64{}
	for i := 0; i < tbl.Len(); i++ {
		dept, _ := tbl.Value(i, "dept")
		perDept[dept.Text()] = append(perDept[dept.Text()], nums[i].Int())
	}
	for dept, got := range perDept {
		seen := map[int64]bool{}
		for _, n := range got {
			assert.False(t, seen[n], "duplicate row number %d in %s", n, dept)
			seen[n] = true
			assert.GreaterOrEqual(t, n, int64(1))
			assert.LessOrEqual(t, n, int64(len(got)))
		}
	}
}

func TestRowNumberTieBreakIsInputOrder(t *testing.T) {
	tbl := testutil.Employees(t)

	ix, err := window.BuildIndex(tbl, window.PartitionKey{"dept"}, salaryDesc())
	require.NoError(t, err)
	nums := ix.RowNumber()

	// ada (row 0) precedes cruz (row 2) in the input, so she takes 1 of
	// the tied pair.
	assert.Equal(t, int64(1), nums[0].Int())
	assert.Equal(t, int64(2), nums[2].Int())
}

func TestRanksNonDecreasingAndDenseMaxIsDistinctCount(t *testing.T) {
	tbl := testutil.Employees(t)

	ix, err := window.BuildIndex(tbl, window.PartitionKey{"dept"}, salaryDesc())
	require.NoError(t, err)
	rank := ix.Rank()
	dense := ix.DenseRank()

	for p := 0; p < ix.NumPartitions(); p++ {
		part := ix.Partition(p)
		distinct := map[int64]bool{}
		var prevRank, prevDense int64
		var maxDense int64
		for i, row := range part.Rows {
			sal, _ := tbl.Value(row, "salary")
			distinct[sal.Int()] = true
			r, d := rank[row].Int(), dense[row].Int()
			if i > 0 {
				assert.GreaterOrEqual(t, r, prevRank)
				assert.GreaterOrEqual(t, d, prevDense)
			}
			prevRank, prevDense = r, d
			if d > maxDense {
				maxDense = d
			}
		}
		assert.Equal(t, int64(len(distinct)), maxDense)
	}
}

func TestRankDistinguishesLargeIntOrderKeys(t *testing.T) {
	schema := table.MustSchema(
		table.Column{Name: "v", Kind: table.KindInt},
	)
	tbl := testutil.MustTable(t, schema, []table.Row{
		{table.Int(9007199254740993)},
		{table.Int(9007199254740992)},
	})
	orderBy := []window.OrderKey{{Column: "v", Dir: window.Asc, Nulls: window.NullsLast}}

	ranks, err := window.Rank(tbl, nil, orderBy)
	require.NoError(t, err)
	dense, err := window.DenseRank(tbl, nil, orderBy)
	require.NoError(t, err)

	// Distinct values one apart past 2^53 must not tie.
	assert.Equal(t, int64(2), ranks[0].Int())
	assert.Equal(t, int64(1), ranks[1].Int())
	assert.Equal(t, int64(2), dense[0].Int())
	assert.Equal(t, int64(1), dense[1].Int())
}

func TestNthHighestViaDenseRank(t *testing.T) {
	tbl := testutil.Employees(t)

	dense, err := window.DenseRank(tbl, nil, salaryDesc())
	require.NoError(t, err)

	// Second highest distinct salary overall is 80000, held by two rows.
	var second []int64
	for i := 0; i < tbl.Len(); i++ {
		if dense[i].Int() == 2 {
			sal, _ := tbl.Value(i, "salary")
			second = append(second, sal.Int())
		}
	}
	require.Len(t, second, 2)
	for _, s := range second {
		assert.Equal(t, int64(80000), s)
	}
}
