package table

import (
	"strconv"
	"strings"
	"time"
)

// Key encodes a value tuple into a canonical grouping key. Two tuples
// produce the same key iff each pair of values is Equal, with null a
// distinct, self-equal value. Integers encode exactly, never through
// float64, so distinct int64 values past 2^53 stay distinct; Int(3) and
// Float(3) still group together because integral floats that fit an int64
// take the integer encoding.
func Key(values []Value) string {
	var b strings.Builder
	for _, v := range values {
		switch {
		case v.IsNull():
			b.WriteByte('n')
		case v.Kind() == KindInt:
			b.WriteByte('i')
			b.WriteString(strconv.FormatInt(v.Int(), 10))
		case v.Kind() == KindFloat:
			if i, ok := exactInt64(v.Float()); ok {
				b.WriteByte('i')
				b.WriteString(strconv.FormatInt(i, 10))
				break
			}
			b.WriteByte('f')
			b.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
		case v.Kind() == KindText:
			b.WriteByte('t')
			b.WriteString(strconv.Itoa(len(v.Text())))
			b.WriteByte(':')
			b.WriteString(v.Text())
		case v.Kind() == KindTime:
			b.WriteByte('d')
			b.WriteString(v.Time().UTC().Format(time.RFC3339Nano))
		}
		b.WriteByte('|')
	}
	return b.String()
}
