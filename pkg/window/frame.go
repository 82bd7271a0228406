package window

import (
	"fmt"

	"github.com/leapstack-labs/tabwin/pkg/table"
)

// BoundType identifies one end of a window frame.
type BoundType int

// Frame bound types.
const (
	BoundUnboundedPreceding BoundType = iota
	BoundPreceding
	BoundCurrentRow
	BoundFollowing
	BoundUnboundedFollowing
)

// Bound is one frame endpoint, relative to the current row.
type Bound struct {
	Type   BoundType
	Offset int // rows, for BoundPreceding/BoundFollowing
}

// UnboundedPreceding bounds the frame at the partition start.
func UnboundedPreceding() Bound { return Bound{Type: BoundUnboundedPreceding} }

// Preceding bounds the frame n rows before the current row.
func Preceding(n int) Bound { return Bound{Type: BoundPreceding, Offset: n} }

// CurrentRow bounds the frame at the current row.
func CurrentRow() Bound { return Bound{Type: BoundCurrentRow} }

// Following bounds the frame n rows after the current row.
func Following(n int) Bound { return Bound{Type: BoundFollowing, Offset: n} }

// UnboundedFollowing bounds the frame at the partition end.
func UnboundedFollowing() Bound { return Bound{Type: BoundUnboundedFollowing} }

// Frame is a row-bounded window relative to the current row. Frames that
// extend past the partition clamp to the available rows; a frame whose
// resolved start exceeds its resolved end is empty, not an error.
type Frame struct {
	Start Bound
	End   Bound
}

// RunningTotal is the unbounded-preceding-to-current-row frame used for
// cumulative aggregates.
func RunningTotal() Frame {
	return Frame{Start: UnboundedPreceding(), End: CurrentRow()}
}

// Trailing is the n-preceding-to-current-row frame used for moving-window
// aggregates spanning n+1 rows.
func Trailing(n int) Frame {
	return Frame{Start: Preceding(n), End: CurrentRow()}
}

func (b Bound) validate(op string) error {
	if (b.Type == BoundPreceding || b.Type == BoundFollowing) && b.Offset < 0 {
		return &table.ArgumentError{Op: op, Message: fmt.Sprintf("negative frame offset %d", b.Offset)}
	}
	return nil
}

// resolve maps the bound to a raw row position for the row at pos within a
// partition of n rows. The result is unclamped.
func (b Bound) resolve(pos, n int) int {
	switch b.Type {
	case BoundUnboundedPreceding:
		return 0
	case BoundPreceding:
		return pos - b.Offset
	case BoundCurrentRow:
		return pos
	case BoundFollowing:
		return pos + b.Offset
	case BoundUnboundedFollowing:
		return n - 1
	}
	return pos
}

// span resolves the frame for the row at pos within a partition of n rows,
// clamped to the partition. ok is false for an empty frame.
func (f Frame) span(pos, n int) (start, end int, ok bool) {
	start = f.Start.resolve(pos, n)
	end = f.End.resolve(pos, n)
	if start > end || end < 0 || start > n-1 {
		return 0, 0, false
	}
	if start < 0 {
		start = 0
	}
	if end > n-1 {
		end = n - 1
	}
	return start, end, true
}
