package window

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/tabwin/pkg/table"
)

// Options configures an Evaluator.
type Options struct {
	// Parallelism caps the number of partitions evaluated concurrently.
	// Zero means GOMAXPROCS.
	Parallelism int
	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger
}

// Evaluator runs index evaluations with per-partition parallelism.
// Partitions are independent and each writes a disjoint slice of the output,
// so no locking is involved; results always join back into input row order,
// identical to the serial Index methods.
type Evaluator struct {
	parallelism int
	logger      *slog.Logger
}

// NewEvaluator creates an evaluator.
func NewEvaluator(opts Options) *Evaluator {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	par := opts.Parallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(0)
	}
	return &Evaluator{parallelism: par, logger: logger}
}

// RowNumber evaluates ROW_NUMBER across partitions in parallel.
func (e *Evaluator) RowNumber(ctx context.Context, ix *Index) ([]table.Value, error) {
	out := make([]table.Value, ix.tbl.Len())
	err := e.eachPartition(ctx, "row_number", ix, func(p Partition) error {
		rowNumberPartition(p, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Rank evaluates RANK across partitions in parallel.
func (e *Evaluator) Rank(ctx context.Context, ix *Index) ([]table.Value, error) {
	return e.rank(ctx, "rank", ix, false)
}

// DenseRank evaluates DENSE_RANK across partitions in parallel.
func (e *Evaluator) DenseRank(ctx context.Context, ix *Index) ([]table.Value, error) {
	return e.rank(ctx, "dense_rank", ix, true)
}

func (e *Evaluator) rank(ctx context.Context, op string, ix *Index, dense bool) ([]table.Value, error) {
	out := make([]table.Value, ix.tbl.Len())
	err := e.eachPartition(ctx, op, ix, func(p Partition) error {
		rankPartition(ix, p, dense, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Lag evaluates LAG across partitions in parallel.
func (e *Evaluator) Lag(ctx context.Context, ix *Index, column string, k int, def table.Value) ([]table.Value, error) {
	return e.offset(ctx, "window.Lag", ix, column, k, -1, def)
}

// Lead evaluates LEAD across partitions in parallel.
func (e *Evaluator) Lead(ctx context.Context, ix *Index, column string, k int, def table.Value) ([]table.Value, error) {
	return e.offset(ctx, "window.Lead", ix, column, k, 1, def)
}

func (e *Evaluator) offset(ctx context.Context, op string, ix *Index, column string, k, sign int, def table.Value) ([]table.Value, error) {
	col, err := ix.tbl.Schema().Resolve(column, op)
	if err != nil {
		return nil, err
	}
	if k < 0 {
		return nil, &table.ArgumentError{Op: op, Message: fmt.Sprintf("offset must be non-negative, got %d", k)}
	}
	out := make([]table.Value, ix.tbl.Len())
	err = e.eachPartition(ctx, op, ix, func(p Partition) error {
		offsetPartition(ix.tbl, p, col, k*sign, def, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Aggregate evaluates a frame aggregate across partitions in parallel.
// Validation matches Index.Aggregate and happens before any work starts.
func (e *Evaluator) Aggregate(ctx context.Context, ix *Index, column string, kind AggKind, frame Frame) ([]table.Value, error) {
	const op = "window.Aggregate"

	col, err := ix.tbl.Schema().Resolve(column, op)
	if err != nil {
		return nil, err
	}
	colKind := ix.tbl.Schema().Column(col).Kind
	if (kind == AggSum || kind == AggAvg) && colKind != table.KindInt && colKind != table.KindFloat {
		return nil, &table.TypeMismatchError{Column: column, Op: op + ": " + kind.String(), Kind: colKind}
	}
	if err := frame.Start.validate(op); err != nil {
		return nil, err
	}
	if err := frame.End.validate(op); err != nil {
		return nil, err
	}

	out := make([]table.Value, ix.tbl.Len())
	err = e.eachPartition(ctx, "aggregate "+kind.String(), ix, func(p Partition) error {
		aggregatePartition(ix.tbl, p, col, colKind, kind, frame, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (e *Evaluator) eachPartition(ctx context.Context, op string, ix *Index, fn func(Partition) error) error {
	e.logger.Debug("evaluating partitions", "op", op, "partitions", len(ix.parts), "parallelism", e.parallelism)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.parallelism)
	for _, p := range ix.parts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(p)
		})
	}
	return g.Wait()
}
