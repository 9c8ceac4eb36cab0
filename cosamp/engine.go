// SPDX-License-Identifier: MIT
package cosamp

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/cosamp/cgls"
	"github.com/katalvlaran/cosamp/indexset"
	"github.com/katalvlaran/cosamp/matrix"
)

const opReconstruct = "Reconstruct"

// Result is the outcome of one column reconstruction.
type Result struct {
	// Estimate is the N×1 recovered vector with at most K nonzero entries.
	Estimate *matrix.Dense
	// Support holds the ascending 1-based positions of Estimate's nonzeros.
	Support *matrix.Dense
	// Iterations is the number of outer iterations executed.
	Iterations int
	// Converged reports whether the relative-change test stopped the loop.
	// False means the iteration budget ran out; that is not an error.
	Converged bool
	// Change is ||s_last − s_prev|| / ||s_last|| of the final iteration
	// (0 when the estimate is zero).
	Change float64
	// CGIterations is the total inner solver iterations over all outer iterations.
	CGIterations int
	// LastCGResidual is the relative residual of the final inner solve.
	LastCGResidual float64
	// History holds the estimate after every outer iteration when
	// WithHistory is set; History[i] is the estimate after iteration i+1.
	History []*matrix.Dense
}

// Engine runs CoSaMP with a fixed configuration. It holds no per-call state
// and is safe for concurrent use.
type Engine struct {
	cfg    Config
	cgOpts []cgls.Option
}

// NewEngine returns an engine using cfg. Zero-valued fields of a Config
// literal fall back to the defaults of NewConfig.
func NewEngine(cfg Config) *Engine {
	cfg = cfg.withDefaults()

	return &Engine{cfg: cfg, cgOpts: cfg.cgOptions()}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Reconstruct recovers a k-sparse N×1 vector from the M×1 measurements y
// taken with the M×N operator phi.
//
// Contract:
//   - 0 < M < N, y is M×1, 0 <= k <= N.
//   - k == 0 returns the zero vector immediately, without any solve.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNotVector, matrix.ErrDimensionMismatch,
//     ErrNotUndersampled, ErrBadSparsity on malformed input.
//   - ctx.Err() when ctx is cancelled between outer iterations.
//   - inner solver failures (cgls.ErrBreakdown, cgls.ErrNonFinite).
func (e *Engine) Reconstruct(ctx context.Context, y, phi matrix.Matrix, k int) (*Result, error) {
	start := time.Now()
	res, err := e.reconstruct(ctx, e.cfg.logger, y, phi, k)
	e.record(start, res, err)

	return res, err
}

func (e *Engine) record(start time.Time, res *Result, err error) {
	if err != nil || res == nil {
		e.cfg.metrics.RecordColumn(time.Since(start), 0, 0, false, err)

		return
	}
	e.cfg.metrics.RecordColumn(time.Since(start), res.Iterations, res.CGIterations, res.Converged, nil)
}

func (e *Engine) reconstruct(ctx context.Context, log *Logger, y, phi matrix.Matrix, k int) (*Result, error) {
	if err := matrix.ValidateNotNil(phi); err != nil {
		return nil, cosampErrorf(opReconstruct, err)
	}
	if err := matrix.ValidateColumnVector(y); err != nil {
		return nil, cosampErrorf(opReconstruct, err)
	}
	m, n := phi.Rows(), phi.Cols()
	if y.Rows() != m {
		return nil, cosampErrorf(opReconstruct,
			fmt.Errorf("y has %d rows, Φ is %dx%d: %w", y.Rows(), m, n, matrix.ErrDimensionMismatch))
	}
	if m <= 0 || m >= n {
		return nil, cosampErrorf(opReconstruct, fmt.Errorf("M=%d N=%d: %w", m, n, ErrNotUndersampled))
	}
	if k < 0 || k > n {
		return nil, cosampErrorf(opReconstruct, fmt.Errorf("K=%d N=%d: %w", k, n, ErrBadSparsity))
	}

	s, err := matrix.NewZeros(n, 1)
	if err != nil {
		return nil, cosampErrorf(opReconstruct, err)
	}
	res := &Result{Estimate: s, Support: matrix.NewVector(nil)}
	if k == 0 {
		res.Converged = true

		return res, nil
	}

	phiT, err := matrix.Transpose(phi)
	if err != nil {
		return nil, cosampErrorf(opReconstruct, err)
	}

	var (
		st         step
		change, sn float64
	)
	for res.Iterations < e.cfg.maxIterations {
		if err = ctx.Err(); err != nil {
			return nil, cosampErrorf(opReconstruct, err)
		}
		if st, err = e.iterate(y, phi, phiT, s, k); err != nil {
			return nil, cosampErrorf(opReconstruct, fmt.Errorf("iteration %d: %w", res.Iterations+1, err))
		}
		res.Iterations++
		res.CGIterations += st.cgIterations
		res.LastCGResidual = st.cgResidual
		if e.cfg.keepHistory {
			res.History = append(res.History, st.estimate)
		}

		if change, sn, err = relativeChange(st.estimate, s); err != nil {
			return nil, cosampErrorf(opReconstruct, err)
		}
		s = st.estimate
		res.Estimate, res.Support = s, st.support
		log.LogIteration(ctx, res.Iterations, st.merged, st.cgIterations, change)

		if sn == 0 {
			res.Change = 0
		} else {
			res.Change = change / sn
		}
		// a stationary estimate (including the zero estimate) counts as converged
		if change < e.cfg.convergenceRatio*sn || change == 0 {
			res.Converged = true

			break
		}
	}

	return res, nil
}

// step is the outcome of one backproject/merge/estimate/prune pass.
type step struct {
	estimate     *matrix.Dense
	support      *matrix.Dense
	merged       int
	cgIterations int
	cgResidual   float64
}

// iterate runs one outer iteration from the current estimate s.
func (e *Engine) iterate(y, phi, phiT matrix.Matrix, s *matrix.Dense, k int) (step, error) {
	// backproject: u = |Φᵗ(y − Φs)|
	phiS, err := matrix.Mul(phi, s)
	if err != nil {
		return step{}, err
	}
	r, err := matrix.Sub(y, phiS)
	if err != nil {
		return step{}, err
	}
	proxy, err := matrix.Mul(phiT, r)
	if err != nil {
		return step{}, err
	}
	u, err := matrix.Abs(proxy)
	if err != nil {
		return step{}, err
	}

	// merge: Ω = supp(s) ∪ top 2K of u
	_, order, err := matrix.SortColumnsDescending(u)
	if err != nil {
		return step{}, err
	}
	top, err := indexset.RankSlice(order, 1, 2*k)
	if err != nil {
		return step{}, err
	}
	prev, err := support(s)
	if err != nil {
		return step{}, err
	}
	omega, err := indexset.Union(prev, top)
	if err != nil {
		return step{}, err
	}

	// estimate: least squares on the columns in Ω
	phiO, err := matrix.GatherColumns(phi, omega)
	if err != nil {
		return step{}, err
	}
	phiOT, err := matrix.Transpose(phiO)
	if err != nil {
		return step{}, err
	}
	gram, err := matrix.Mul(phiOT, phiO)
	if err != nil {
		return step{}, err
	}
	rhs, err := matrix.Mul(phiOT, y)
	if err != nil {
		return step{}, err
	}
	sol, err := cgls.Solve(gram, rhs, e.cgOpts...)
	if err != nil {
		return step{}, err
	}
	zeros, err := matrix.ZerosLike(s)
	if err != nil {
		return step{}, err
	}
	bb, err := matrix.ScatterByIndex(zeros, omega, sol.X)
	if err != nil {
		return step{}, err
	}

	// prune: keep the K largest magnitudes of bb
	mag, err := matrix.Abs(bb)
	if err != nil {
		return step{}, err
	}
	_, order, err = matrix.SortColumnsDescending(mag)
	if err != nil {
		return step{}, err
	}
	keep, err := indexset.RankSlice(order, 1, k)
	if err != nil {
		return step{}, err
	}
	kept, err := indexset.GatherFlat(bb, keep)
	if err != nil {
		return step{}, err
	}
	next, err := matrix.ScatterByIndex(zeros, keep, kept)
	if err != nil {
		return step{}, err
	}
	nextSupport, err := support(next)
	if err != nil {
		return step{}, err
	}

	return step{
		estimate:     next,
		support:      nextSupport,
		merged:       omega.Rows(),
		cgIterations: sol.Iterations,
		cgResidual:   sol.Residual,
	}, nil
}

// support returns the ascending 1-based positions of the nonzeros of v.
func support(v matrix.Matrix) (*matrix.Dense, error) {
	mask, err := indexset.NotEqual(v, 0)
	if err != nil {
		return nil, err
	}

	return indexset.FindNonzero(mask)
}

// relativeChange returns ||next − prev|| and ||next||.
func relativeChange(next, prev matrix.Matrix) (change, norm float64, err error) {
	diff, err := matrix.Sub(next, prev)
	if err != nil {
		return 0, 0, err
	}
	if change, err = matrix.Norm(diff); err != nil {
		return 0, 0, err
	}
	if norm, err = matrix.Norm(next); err != nil {
		return 0, 0, err
	}

	return change, norm, nil
}
