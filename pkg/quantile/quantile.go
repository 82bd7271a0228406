// Package quantile computes order statistics (median, percentiles) over
// numeric value sets, exactly by rank interpolation or approximately via a
// t-digest sketch for large partitions.
//
// The exact path matches continuous-distribution percentile semantics:
// the requested quantile q maps to rank q*(n-1) over the sorted non-null
// values, interpolating linearly between the surrounding order statistics.
// The approximate path is a separate, explicitly requested entry point;
// exactness is never silently downgraded.
package quantile

import (
	"fmt"
	"math"
	"sort"

	"github.com/leapstack-labs/tabwin/pkg/table"
)

// Exact returns the value at quantile q in [0,1] over the non-null numeric
// values, interpolated between the two surrounding order statistics. An
// empty or all-null input yields null. Non-numeric values fail with
// TypeMismatchError.
func Exact(values []table.Value, q float64) (table.Value, error) {
	const op = "quantile.Exact"
	if q < 0 || q > 1 || math.IsNaN(q) {
		return table.Value{}, &table.ArgumentError{Op: op, Message: fmt.Sprintf("quantile %v outside [0,1]", q)}
	}

	xs := make([]float64, 0, len(values))
	for _, v := range values {
		if v.IsNull() {
			continue
		}
		f, ok := v.AsFloat()
		if !ok {
			return table.Value{}, &table.TypeMismatchError{Op: op, Kind: v.Kind()}
		}
		xs = append(xs, f)
	}
	if len(xs) == 0 {
		return table.Null(), nil
	}

	sort.Float64s(xs)
	return table.Float(interpolate(xs, q)), nil
}

// Median returns the exact 0.5 quantile: the middle value for odd counts,
// the midpoint of the two center values for even counts.
func Median(values []table.Value) (table.Value, error) {
	return Exact(values, 0.5)
}

// interpolate reads the q-th quantile from sorted xs via linear
// interpolation at rank q*(n-1).
func interpolate(xs []float64, q float64) float64 {
	rank := q * float64(len(xs)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return xs[lo]
	}
	w := rank - float64(lo)
	return xs[lo]*(1-w) + xs[hi]*w
}
