// SPDX-License-Identifier: MIT
package cgls

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/cosamp/matrix"
)

const opSolve = "Solve"

// Result is the outcome of a Solve call.
type Result struct {
	// X is the best iterate found, an n×1 column vector.
	X *matrix.Dense
	// Residual is the relative residual sqrt(δ/δ₀) of X; 0 for a zero right-hand side.
	Residual float64
	// Iterations is the number of CG iterations executed.
	Iterations int
	// Converged reports whether the tolerance was met before the iteration cap.
	Converged bool
}

// Solve approximately solves A·x = b for a symmetric positive semi-definite A
// and returns the best iterate by relative residual.
//
// Contract:
//   - A is n×n and symmetric within the configured epsilon.
//   - b is an n×1 column vector. n == 0 is legal and yields an empty X.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNotVector,
//     matrix.ErrAsymmetry on malformed input.
//   - ErrBreakdown when dᵗAd ≤ 0, ErrNonFinite on NaN/Inf in the recurrence.
//
// Complexity:
//   - Time O(k·n²), Space O(n).
func Solve(a, b matrix.Matrix, opts ...Option) (Result, error) {
	cfg := newConfig(opts...)

	if err := matrix.ValidateSymmetric(a, cfg.symEps); err != nil {
		return Result{}, cglsErrorf(opSolve, err)
	}
	if err := matrix.ValidateColumnVector(b); err != nil {
		return Result{}, cglsErrorf(opSolve, err)
	}
	n := a.Rows()
	if b.Rows() != n {
		return Result{}, cglsErrorf(opSolve,
			fmt.Errorf("A is %d×%d, b has %d rows: %w", n, n, b.Rows(), matrix.ErrDimensionMismatch))
	}

	bv, err := matrix.Values(b)
	if err != nil {
		return Result{}, cglsErrorf(opSolve, err)
	}
	x := make([]float64, n)

	delta0 := floats.Dot(bv, bv)
	if delta0 == 0 {
		return Result{X: matrix.NewVector(x), Converged: true}, nil
	}

	r := append([]float64(nil), bv...)
	d := append([]float64(nil), r...)
	delta := delta0
	threshold := cfg.tol * cfg.tol * delta0

	bestX := append([]float64(nil), x...)
	bestRes := math.Sqrt(delta / delta0)

	var (
		q, ax          []float64
		alpha, dq, rel float64
		deltaOld       float64
		iter           int
	)
	for iter < cfg.maxIter && delta > threshold {
		if q, err = matrix.MatVec(a, d); err != nil {
			return Result{}, cglsErrorf(opSolve, err)
		}
		dq = floats.Dot(d, q)
		if !(dq > 0) {
			if math.IsNaN(dq) {
				return Result{}, cglsErrorf(opSolve, fmt.Errorf("iteration %d: %w", iter+1, ErrNonFinite))
			}

			return Result{}, cglsErrorf(opSolve, fmt.Errorf("iteration %d: dᵗAd=%g: %w", iter+1, dq, ErrBreakdown))
		}
		alpha = delta / dq
		floats.AddScaled(x, alpha, d)

		if (iter+1)%cfg.refreshEvery == 0 {
			if ax, err = matrix.MatVec(a, x); err != nil {
				return Result{}, cglsErrorf(opSolve, err)
			}
			floats.SubTo(r, bv, ax)
		} else {
			floats.AddScaled(r, -alpha, q)
		}

		deltaOld = delta
		delta = floats.Dot(r, r)
		if math.IsNaN(delta) || math.IsInf(delta, 0) {
			return Result{}, cglsErrorf(opSolve, fmt.Errorf("iteration %d: %w", iter+1, ErrNonFinite))
		}
		// d = r + β·d
		floats.AddScaledTo(d, r, delta/deltaOld, d)
		iter++

		if rel = math.Sqrt(delta / delta0); rel < bestRes {
			copy(bestX, x)
			bestRes = rel
		}
	}

	return Result{
		X:          matrix.NewVector(bestX),
		Residual:   bestRes,
		Iterations: iter,
		Converged:  delta <= threshold,
	}, nil
}
