package quantile_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tabwin/pkg/quantile"
	"github.com/leapstack-labs/tabwin/pkg/table"
)

func ints(xs ...int64) []table.Value {
	out := make([]table.Value, len(xs))
	for i, x := range xs {
		out[i] = table.Int(x)
	}
	return out
}

func TestMedianResistsOutliers(t *testing.T) {
	// A salary list with one extreme value: the median stays at 50000
	// where the mean would not.
	salaries := ints(40000, 42000, 45000, 47000, 50000, 52000, 55000, 57000, 1500000)

	got, err := quantile.Median(salaries)
	require.NoError(t, err)
	assert.InDelta(t, 50000, got.Float(), 1e-9)

	var sum float64
	for _, v := range salaries {
		f, _ := v.AsFloat()
		sum += f
	}
	assert.Greater(t, math.Abs(sum/float64(len(salaries))-got.Float()), 1.0, "median must not collapse to the mean")
}

func TestMedianEvenCountInterpolatesMidpoint(t *testing.T) {
	got, err := quantile.Median(ints(10, 20, 30, 40))
	require.NoError(t, err)
	assert.InDelta(t, 25.0, got.Float(), 1e-9)
}

func TestExactQuantileInterpolation(t *testing.T) {
	vals := ints(0, 10, 20, 30, 40)

	cases := []struct {
		q    float64
		want float64
	}{
		{0, 0},
		{0.25, 10},
		{0.5, 20},
		{0.875, 35}, // rank 3.5: midway between 30 and 40
		{1, 40},
	}
	for _, c := range cases {
		got, err := quantile.Exact(vals, c.q)
		require.NoError(t, err)
		assert.InDelta(t, c.want, got.Float(), 1e-9, "q=%v", c.q)
	}
}

func TestExactSkipsNullsAndHandlesEmpty(t *testing.T) {
	got, err := quantile.Exact([]table.Value{table.Null(), table.Int(7), table.Null()}, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, got.Float(), 1e-9)

	got, err = quantile.Exact(nil, 0.5)
	require.NoError(t, err)
	assert.True(t, got.IsNull())

	got, err = quantile.Exact([]table.Value{table.Null()}, 0.5)
	require.NoError(t, err)
	assert.True(t, got.IsNull())
}

func TestExactRejectsBadInput(t *testing.T) {
	_, err := quantile.Exact(ints(1, 2), 1.5)
	var argErr *table.ArgumentError
	require.ErrorAs(t, err, &argErr)

	_, err = quantile.Exact([]table.Value{table.Text("x")}, 0.5)
	var mismatch *table.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestEstimatorTracksExactOnSmallInput(t *testing.T) {
	est := quantile.NewEstimator(0)
	for i := int64(1); i <= 100; i++ {
		require.NoError(t, est.Add(table.Int(i)))
	}
	require.Equal(t, 100, est.Count())

	got, err := est.Quantile(0.5)
	require.NoError(t, err)
	// Bounded error, not exact equality.
	assert.InDelta(t, 50.5, got.Float(), 2.0)
}

func TestEstimatorEmptyAndNulls(t *testing.T) {
	est := quantile.NewEstimator(0)
	require.NoError(t, est.Add(table.Null()))
	assert.Equal(t, 0, est.Count())

	got, err := est.Quantile(0.5)
	require.NoError(t, err)
	assert.True(t, got.IsNull())

	err = est.Add(table.Text("oops"))
	var mismatch *table.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
}
