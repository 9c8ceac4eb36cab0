// SPDX-License-Identifier: MIT
package sensing

import (
	"fmt"

	"github.com/katalvlaran/cosamp/matrix"
)

// Source produces the m×n sensing operator used to measure signal column
// `column`. Implementations must be safe for concurrent use when the caller
// reconstructs columns in parallel.
type Source interface {
	Operator(column, m, n int) (*matrix.Dense, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(column, m, n int) (*matrix.Dense, error)

// Operator implements Source.
func (f SourceFunc) Operator(column, m, n int) (*matrix.Dense, error) { return f(column, m, n) }

// Perturber is implemented by sources that corrupt measurements, e.g. with
// additive noise. Perturb must not modify y.
type Perturber interface {
	Perturb(column int, y matrix.Matrix) (*matrix.Dense, error)
}

const methodMeasure = "Measure"

// Measure returns y = Φ·x for an m×n operator and an n×1 signal column.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNotVector, matrix.ErrDimensionMismatch.
func Measure(phi, x matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateColumnVector(x); err != nil {
		return nil, sensingErrorf(methodMeasure, err)
	}
	y, err := matrix.Mul(phi, x)
	if err != nil {
		return nil, sensingErrorf(methodMeasure, err)
	}
	d, ok := y.(*matrix.Dense)
	if !ok {
		return nil, sensingErrorf(methodMeasure, fmt.Errorf("unexpected %T", y))
	}

	return d, nil
}
