package quantile

import (
	"github.com/leapstack-labs/tabwin/pkg/table"
	"github.com/leapstack-labs/tabwin/pkg/window"
)

// Mode selects the computation path for partitioned quantiles.
type Mode int

// Computation modes. ModeExact is the zero value.
const (
	ModeExact Mode = iota
	ModeApproximate
)

// Config parameterizes ByPartition. Every field is an explicit per-call
// setting; there are no ambient defaults beyond the documented zero-value
// meanings.
type Config struct {
	// Q is the requested quantile in [0,1].
	Q float64
	// Mode selects exact rank interpolation or the t-digest sketch.
	Mode Mode
	// MaxExactRows caps the partition size the exact path will accept;
	// zero means unlimited. Exceeding it in ModeExact fails with
	// PrecisionUnavailableError rather than downgrading.
	MaxExactRows int
	// Compression configures the sketch in ModeApproximate; zero selects
	// DefaultCompression.
	Compression float64
}

// ByPartition computes the configured quantile of column within each
// partition of tbl and returns a summary table: the partition key columns
// followed by one quantile column, one row per partition, partitions in
// order of first appearance in the input.
func ByPartition(tbl *table.Table, column string, cfg Config, partitionBy window.PartitionKey) (*table.Table, error) {
	const op = "quantile.ByPartition"

	col, err := tbl.Schema().Resolve(column, op)
	if err != nil {
		return nil, err
	}
	if k := tbl.Schema().Column(col).Kind; k != table.KindInt && k != table.KindFloat {
		return nil, &table.TypeMismatchError{Column: column, Op: op, Kind: k}
	}

	ix, err := window.BuildIndex(tbl, partitionBy, nil)
	if err != nil {
		return nil, err
	}

	// Fail before emitting anything: scan partition sizes first.
	if cfg.Mode == ModeExact && cfg.MaxExactRows > 0 {
		for p := 0; p < ix.NumPartitions(); p++ {
			if n := len(ix.Partition(p).Rows); n > cfg.MaxExactRows {
				return nil, &PrecisionUnavailableError{Op: op, Rows: n, Limit: cfg.MaxExactRows}
			}
		}
	}

	cols := make([]table.Column, 0, len(partitionBy)+1)
	for _, name := range partitionBy {
		i, _ := tbl.Schema().Index(name)
		cols = append(cols, tbl.Schema().Column(i))
	}
	cols = append(cols, table.Column{Name: column + "_q", Kind: table.KindFloat})

	rows := make([]table.Row, 0, ix.NumPartitions())
	for p := 0; p < ix.NumPartitions(); p++ {
		part := ix.Partition(p)

		var qv table.Value
		switch cfg.Mode {
		case ModeApproximate:
			est := NewEstimator(cfg.Compression)
			for _, r := range part.Rows {
				if err := est.Add(tbl.Row(r)[col]); err != nil {
					return nil, err
				}
			}
			qv, err = est.Quantile(cfg.Q)
		default:
			vals := make([]table.Value, len(part.Rows))
			for i, r := range part.Rows {
				vals[i] = tbl.Row(r)[col]
			}
			qv, err = Exact(vals, cfg.Q)
		}
		if err != nil {
			return nil, err
		}

		row := make(table.Row, 0, len(part.Key)+1)
		row = append(row, part.Key...)
		row = append(row, qv)
		rows = append(rows, row)
	}

	schema, err := table.NewSchema(cols...)
	if err != nil {
		return nil, err
	}
	return table.New(schema, rows)
}
