package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the type of a Value.
type Kind int

// Value kinds supported by the engine.
const (
	KindNull Kind = iota
	KindInt
	KindFloat
	KindText
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindTime:
		return "time"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value is a single typed cell. The zero value is null.
type Value struct {
	kind     Kind
	intVal   int64
	floatVal float64
	textVal  string
	timeVal  time.Time
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Int returns an integer value.
func Int(i int64) Value {
	return Value{kind: KindInt, intVal: i}
}

// Float returns a decimal value.
func Float(f float64) Value {
	return Value{kind: KindFloat, floatVal: f}
}

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: KindText, textVal: s}
}

// Time returns a date/time value.
func Time(t time.Time) Value {
	return Value{kind: KindTime, timeVal: t}
}

func (v Value) Kind() Kind      { return v.kind }
func (v Value) IsNull() bool    { return v.kind == KindNull }
func (v Value) Int() int64      { return v.intVal }
func (v Value) Float() float64  { return v.floatVal }
func (v Value) Text() string    { return v.textVal }
func (v Value) Time() time.Time { return v.timeVal }

// IsNumeric reports whether the value is an int or float.
func (v Value) IsNumeric() bool {
	return v.kind == KindInt || v.kind == KindFloat
}

// AsFloat returns the numeric value widened to float64.
// The second result is false for non-numeric values, including null.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.intVal), true
	case KindFloat:
		return v.floatVal, true
	}
	return 0, false
}

// Compare orders v against other: -1, 0, or 1. Int and float compare
// numerically across kinds. Null orders before every non-null value here;
// ordered evaluation applies its own explicit null policy before consulting
// Compare, so this ordering only matters for callers comparing raw values.
func (v Value) Compare(other Value) int {
	if v.kind == KindNull || other.kind == KindNull {
		if v.kind == other.kind {
			return 0
		}
		if v.kind == KindNull {
			return -1
		}
		return 1
	}

	if v.IsNumeric() && other.IsNumeric() {
		// Same-kind comparisons stay exact; cross-kind goes through
		// compareIntFloat, which never widens the int64 side. Plain
		// float64 widening would collapse distinct integers past 2^53.
		switch {
		case v.kind == KindInt && other.kind == KindInt:
			switch {
			case v.intVal < other.intVal:
				return -1
			case v.intVal > other.intVal:
				return 1
			}
			return 0
		case v.kind == KindFloat && other.kind == KindFloat:
			switch {
			case v.floatVal < other.floatVal:
				return -1
			case v.floatVal > other.floatVal:
				return 1
			}
			return 0
		case v.kind == KindInt:
			return compareIntFloat(v.intVal, other.floatVal)
		default:
			return -compareIntFloat(other.intVal, v.floatVal)
		}
	}

	switch v.kind {
	case KindText:
		return strings.Compare(v.textVal, other.textVal)
	case KindTime:
		switch {
		case v.timeVal.Before(other.timeVal):
			return -1
		case v.timeVal.After(other.timeVal):
			return 1
		}
		return 0
	}
	return 0
}

// Equal reports grouping equality: null equals null (GROUP BY semantics,
// not SQL predicate semantics), and numeric values compare across kinds.
func (v Value) Equal(other Value) bool {
	if v.kind == KindNull || other.kind == KindNull {
		return v.kind == other.kind
	}
	if v.IsNumeric() && other.IsNumeric() {
		return v.Compare(other) == 0
	}
	return v.kind == other.kind && v.Compare(other) == 0
}

// minInt64Float and maxInt64Float bracket the int64 range in float64 space.
// maxInt64Float is 2^63, the first float64 at or past every int64.
const (
	minInt64Float = -9223372036854775808.0
	maxInt64Float = 9223372036854775808.0
)

// compareIntFloat orders an int64 against a float64 exactly, comparing
// integer parts as int64 and letting any fractional remainder decide ties.
func compareIntFloat(i int64, f float64) int {
	switch {
	case math.IsNaN(f) || f >= maxInt64Float:
		return -1
	case f < minInt64Float:
		return 1
	}
	t := math.Trunc(f)
	// t is an integer within int64 range, so the conversion is exact.
	ti := int64(t)
	switch {
	case i < ti:
		return -1
	case i > ti:
		return 1
	case f > t:
		return -1
	case f < t:
		return 1
	}
	return 0
}

// exactInt64 reports whether f is an integer exactly representable as an
// int64, returning that integer.
func exactInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || f != math.Trunc(f) || f < minInt64Float || f >= maxInt64Float {
		return 0, false
	}
	return int64(f), true
}

func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "NULL"
	case KindInt:
		return strconv.FormatInt(v.intVal, 10)
	case KindFloat:
		return strconv.FormatFloat(v.floatVal, 'g', -1, 64)
	case KindText:
		return v.textVal
	case KindTime:
		return v.timeVal.Format(time.RFC3339)
	}
	return ""
}
