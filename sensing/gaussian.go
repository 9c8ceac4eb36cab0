// SPDX-License-Identifier: MIT
package sensing

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/cosamp/matrix"
)

const (
	methodOperator = "Operator"
	methodPerturb  = "Perturb"
)

// Gaussian is a Source of i.i.d. N(0, 1/m) operators, seeded per column.
// The zero value is not usable; build one with NewGaussian.
type Gaussian struct {
	cfg config
}

// NewGaussian returns a Gaussian source configured by opts.
func NewGaussian(opts ...Option) *Gaussian {
	return &Gaussian{cfg: newConfig(opts...)}
}

// Seed returns the effective root seed.
func (g *Gaussian) Seed() int64 { return g.cfg.seed }

// Noise returns the measurement noise standard deviation (0 when disabled).
func (g *Gaussian) Noise() float64 { return g.cfg.noise }

// Operator returns an m×n matrix with entries drawn from N(0, 1/m) in
// row-major order. The same (seed, column, m, n) always yields the same matrix.
//
// Errors:
//   - ErrBadShape when m <= 0, n <= 0 or column < 0.
//
// Complexity: O(m·n).
func (g *Gaussian) Operator(column, m, n int) (*matrix.Dense, error) {
	if m <= 0 || n <= 0 || column < 0 {
		return nil, sensingErrorf(methodOperator,
			fmt.Errorf("column=%d m=%d n=%d: %w", column, m, n, ErrBadShape))
	}
	normal := distuv.Normal{
		Mu:    0,
		Sigma: 1 / math.Sqrt(float64(m)),
		Src:   streamSource(g.cfg.seed, column, purposeOperator),
	}
	data := make([]float64, m*n)
	for i := range data {
		data[i] = normal.Rand()
	}
	phi, err := matrix.NewFromData(m, n, data)
	if err != nil {
		return nil, sensingErrorf(methodOperator, err)
	}

	return phi, nil
}

// Perturb returns y plus N(0, sigma²) noise drawn from the column's noise
// stream. With noise disabled it returns an unmodified copy.
func (g *Gaussian) Perturb(column int, y matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateColumnVector(y); err != nil {
		return nil, sensingErrorf(methodPerturb, err)
	}
	vals, err := matrix.Values(y)
	if err != nil {
		return nil, sensingErrorf(methodPerturb, err)
	}
	if g.cfg.noise > 0 {
		noise := distuv.Normal{
			Mu:    0,
			Sigma: g.cfg.noise,
			Src:   streamSource(g.cfg.seed, column, purposeNoise),
		}
		for i := range vals {
			vals[i] += noise.Rand()
		}
	}

	return matrix.NewVector(vals), nil
}
