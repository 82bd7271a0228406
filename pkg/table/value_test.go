package table_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tabwin/pkg/table"
)

func TestValueZeroIsNull(t *testing.T) {
	var v table.Value
	assert.True(t, v.IsNull())
	assert.Equal(t, table.KindNull, v.Kind())
}

func TestCompareNumericAcrossKinds(t *testing.T) {
	assert.Equal(t, 0, table.Int(3).Compare(table.Float(3.0)))
	assert.Equal(t, -1, table.Int(2).Compare(table.Float(2.5)))
	assert.Equal(t, 1, table.Float(10).Compare(table.Int(9)))
}

func TestCompareTextAndTime(t *testing.T) {
	assert.Equal(t, -1, table.Text("alpha").Compare(table.Text("beta")))

	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)
	assert.Equal(t, -1, table.Time(early).Compare(table.Time(late)))
	assert.Equal(t, 0, table.Time(early).Compare(table.Time(early)))
}

func TestEqualNullSelfEqual(t *testing.T) {
	// Grouping semantics: null groups with null, never with a value.
	assert.True(t, table.Null().Equal(table.Null()))
	assert.False(t, table.Null().Equal(table.Int(0)))
	assert.False(t, table.Text("").Equal(table.Null()))
}

func TestAsFloat(t *testing.T) {
	f, ok := table.Int(7).AsFloat()
	require.True(t, ok)
	assert.Equal(t, 7.0, f)

	_, ok = table.Text("7").AsFloat()
	assert.False(t, ok)
	_, ok = table.Null().AsFloat()
	assert.False(t, ok)
}

func TestCompareLargeIntsStaysExact(t *testing.T) {
	// 2^53 and 2^53+1 collapse under float64 widening; int64 comparison
	// must keep them apart.
	lo := table.Int(1 << 53)
	hi := table.Int(1<<53 + 1)
	assert.Equal(t, -1, lo.Compare(hi))
	assert.Equal(t, 1, hi.Compare(lo))
	assert.False(t, lo.Equal(hi))
	assert.Equal(t, 0, lo.Compare(table.Int(1<<53)))
}

func TestCompareIntAgainstFloatCrossKind(t *testing.T) {
	// The float 2^53 equals the int 2^53 but not its successor.
	f := table.Float(9007199254740992)
	assert.Equal(t, 0, table.Int(1<<53).Compare(f))
	assert.Equal(t, 1, table.Int(1<<53+1).Compare(f))
	assert.Equal(t, -1, f.Compare(table.Int(1<<53+1)))

	// Fractional parts break integer-part ties in either direction.
	assert.Equal(t, -1, table.Int(2).Compare(table.Float(2.5)))
	assert.Equal(t, 1, table.Int(-2).Compare(table.Float(-2.5)))

	// Floats beyond the int64 range order past every integer.
	assert.Equal(t, -1, table.Int(1<<62).Compare(table.Float(1e19)))
	assert.Equal(t, 1, table.Int(-(1 << 62)).Compare(table.Float(-1e19)))
}

func TestKeyLargeIntsStayDistinct(t *testing.T) {
	a := table.Key([]table.Value{table.Int(9007199254740992)})
	b := table.Key([]table.Value{table.Int(9007199254740993)})
	assert.NotEqual(t, a, b)
}

func TestKeyFractionalFloatDiffersFromInt(t *testing.T) {
	a := table.Key([]table.Value{table.Int(2)})
	b := table.Key([]table.Value{table.Float(2.5)})
	assert.NotEqual(t, a, b)
}

func TestKeyDistinguishesNullFromZero(t *testing.T) {
	kNull := table.Key([]table.Value{table.Null()})
	kZero := table.Key([]table.Value{table.Int(0)})
	kEmpty := table.Key([]table.Value{table.Text("")})
	assert.NotEqual(t, kNull, kZero)
	assert.NotEqual(t, kNull, kEmpty)
	assert.NotEqual(t, kZero, kEmpty)
}

func TestKeyGroupsIntWithEqualFloat(t *testing.T) {
	assert.Equal(t,
		table.Key([]table.Value{table.Int(3)}),
		table.Key([]table.Value{table.Float(3)}),
	)
}

func TestKeyTextIsUnambiguous(t *testing.T) {
	// Two different tuples must never encode to the same key, even when
	// the text values contain the separator.
	a := table.Key([]table.Value{table.Text("a|b"), table.Text("c")})
	b := table.Key([]table.Value{table.Text("a"), table.Text("b|c")})
	assert.NotEqual(t, a, b)
}
