package quantile

import (
	"github.com/influxdata/tdigest"

	"github.com/leapstack-labs/tabwin/pkg/table"
)

// Estimator is a bounded-error quantile sketch over streamed numeric
// values, backed by a t-digest. Feeding values in a fixed order makes its
// estimates reproducible for the same input, but they remain approximate;
// callers needing exact determinism use the Exact path.
type Estimator struct {
	td    *tdigest.TDigest
	count int
}

// DefaultCompression trades roughly a few hundred centroids for sub-percent
// rank error, which covers reporting-grade percentiles.
const DefaultCompression = 500

// NewEstimator creates a sketch. compression <= 0 selects
// DefaultCompression; higher values cost memory for tighter error.
func NewEstimator(compression float64) *Estimator {
	if compression <= 0 {
		compression = DefaultCompression
	}
	return &Estimator{td: tdigest.NewWithCompression(compression)}
}

// Add feeds one value. Nulls are skipped; non-numeric values fail with
// TypeMismatchError.
func (e *Estimator) Add(v table.Value) error {
	if v.IsNull() {
		return nil
	}
	f, ok := v.AsFloat()
	if !ok {
		return &table.TypeMismatchError{Op: "quantile.Estimator.Add", Kind: v.Kind()}
	}
	e.td.Add(f, 1)
	e.count++
	return nil
}

// AddColumn feeds every value of the named table column.
func (e *Estimator) AddColumn(tbl *table.Table, column string) error {
	col, err := tbl.Schema().Resolve(column, "quantile.Estimator.AddColumn")
	if err != nil {
		return err
	}
	for i := 0; i < tbl.Len(); i++ {
		if err := e.Add(tbl.Row(i)[col]); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of non-null values added.
func (e *Estimator) Count() int { return e.count }

// Quantile estimates the value at q in [0,1]. An empty sketch yields null.
func (e *Estimator) Quantile(q float64) (table.Value, error) {
	if q < 0 || q > 1 {
		return table.Value{}, &table.ArgumentError{Op: "quantile.Estimator.Quantile", Message: "quantile outside [0,1]"}
	}
	if e.count == 0 {
		return table.Null(), nil
	}
	return table.Float(e.td.Quantile(q)), nil
}
