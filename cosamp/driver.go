// SPDX-License-Identifier: MIT
package cosamp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cosamp/matrix"
	"github.com/katalvlaran/cosamp/sensing"
	"github.com/katalvlaran/cosamp/signal"
)

const (
	opReconstructSignal = "ReconstructSignal"
	opColumn            = "column"
)

// SignalResult collects the per-column outcomes of ReconstructSignal.
type SignalResult struct {
	// Estimate is the N×C matrix of recovered columns, in signal order.
	// Columns that failed are left zero.
	Estimate *matrix.Dense
	// Columns holds each column's Result; nil for a failed column.
	Columns []*Result
	// Errors holds each column's *ColumnError; nil for a successful column.
	Errors []error
}

// Failed returns the number of columns that could not be reconstructed.
func (r *SignalResult) Failed() int {
	n := 0
	for _, err := range r.Errors {
		if err != nil {
			n++
		}
	}

	return n
}

// Err joins every column failure, or returns nil when all columns succeeded.
func (r *SignalResult) Err() error {
	return errors.Join(r.Errors...)
}

// ReconstructSignal recovers every column of sig. Column j is measured as
// y = Φ_j·x_j with Φ_j = src.Operator(j, measurements, N), perturbed when src
// is a sensing.Perturber, and recovered at the column's own sparsity.
//
// Columns run on up to Config.Workers goroutines. Each column only touches
// its own operator and result slot, so the output does not depend on the
// worker count.
//
// Errors:
//   - ErrNilSignal, ErrNilSource, ErrNotUndersampled on invalid input.
//   - ctx.Err() when ctx is cancelled; no partial result is returned.
//
// A failing column does not abort the others: its *ColumnError is stored in
// SignalResult.Errors and the returned error is nil.
func (e *Engine) ReconstructSignal(ctx context.Context, sig *signal.Signal, src sensing.Source, measurements int) (*SignalResult, error) {
	if sig == nil {
		return nil, cosampErrorf(opReconstructSignal, ErrNilSignal)
	}
	if src == nil {
		return nil, cosampErrorf(opReconstructSignal, ErrNilSource)
	}
	n, cols := sig.Length(), sig.Columns()
	if measurements <= 0 || measurements >= n {
		return nil, cosampErrorf(opReconstructSignal,
			fmt.Errorf("M=%d N=%d: %w", measurements, n, ErrNotUndersampled))
	}

	start := time.Now()
	out := &SignalResult{
		Columns: make([]*Result, cols),
		Errors:  make([]error, cols),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.workers)
	for col := 0; col < cols; col++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			colStart := time.Now()
			log := e.cfg.logger.WithColumn(col)
			res, err := e.reconstructColumn(gctx, log, sig, src, col, measurements)
			e.record(colStart, res, err)
			if err != nil {
				if isContextErr(err) {
					return err
				}
				out.Errors[col] = &ColumnError{Column: col, Err: err}
				log.LogColumn(gctx, nil, err)

				return nil
			}
			out.Columns[col] = res
			log.LogColumn(gctx, res, nil)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, cosampErrorf(opReconstructSignal, err)
	}

	est, err := assemble(n, out.Columns)
	if err != nil {
		return nil, cosampErrorf(opReconstructSignal, err)
	}
	out.Estimate = est

	elapsed := time.Since(start)
	failed := out.Failed()
	e.cfg.metrics.RecordSignal(cols, failed, elapsed)
	e.cfg.logger.LogSignal(ctx, cols, failed, elapsed)

	return out, nil
}

// reconstructColumn measures and recovers column col of sig.
func (e *Engine) reconstructColumn(ctx context.Context, log *Logger, sig *signal.Signal, src sensing.Source, col, m int) (*Result, error) {
	n := sig.Length()
	x, err := sig.Column(col)
	if err != nil {
		return nil, cosampErrorf(opColumn, err)
	}
	phi, err := src.Operator(col, m, n)
	if err != nil {
		return nil, cosampErrorf(opColumn, err)
	}
	if phi == nil {
		return nil, cosampErrorf(opColumn, fmt.Errorf("operator for column %d: %w", col, matrix.ErrNilMatrix))
	}
	if rows, cols := phi.Shape(); rows != m || cols != n {
		return nil, cosampErrorf(opColumn, fmt.Errorf("operator for column %d is %dx%d, want %dx%d: %w",
			col, rows, cols, m, n, matrix.ErrDimensionMismatch))
	}
	y, err := sensing.Measure(phi, x)
	if err != nil {
		return nil, cosampErrorf(opColumn, err)
	}
	if p, ok := src.(sensing.Perturber); ok {
		if y, err = p.Perturb(col, y); err != nil {
			return nil, cosampErrorf(opColumn, err)
		}
	}

	return e.reconstruct(ctx, log, y, phi, sig.Sparsity(col))
}

// assemble places each column estimate into an N×C matrix; nil columns stay zero.
func assemble(n int, columns []*Result) (*matrix.Dense, error) {
	est, err := matrix.NewZeros(n, len(columns))
	if err != nil {
		return nil, err
	}
	var vals []float64
	for j, res := range columns {
		if res == nil {
			continue
		}
		if vals, err = matrix.Values(res.Estimate); err != nil {
			return nil, err
		}
		for i, v := range vals {
			if err = est.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return est, nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
