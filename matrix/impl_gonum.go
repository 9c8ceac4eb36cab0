// SPDX-License-Identifier: MIT
// Package matrix - bridges to gonum's mat.Dense.
//
// Both directions copy; the row-major layouts are identical so the copy is a
// single flat pass on the *Dense fast path.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies m into a new *mat.Dense.
// gonum rejects zero extents, so m must have at least one row and one column.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions (zero extent).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, matrixErrorf(opToGonum, ErrInvalidDimensions)
	}
	d, err := toDense(m, opToGonum)
	if err != nil {
		return nil, err
	}

	return mat.NewDense(d.r, d.c, d.data), nil
}

// FromGonum copies any gonum mat.Matrix into a new *Dense.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (under the default numeric policy).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, g.At(i, j))
		}
	}
	res, err := NewFromData(r, c, data)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return res, nil
}
