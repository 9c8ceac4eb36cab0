// SPDX-License-Identifier: MIT
// Package matrix - column-vector primitives used by sparse recovery.
//
// Purpose:
//   - Elementwise magnitude (Abs) and Euclidean norm (Norm).
//   - Value-preserving column extraction/insertion (Column, SetColumn).
//   - Linear-index plumbing: FlattenColumnMajor, GatherColumns, ScatterByIndex.
//
// Contract:
//   - All functions are pure: operands are never mutated, results are fresh *Dense.
//   - Index vectors carry 1-based positions stored as float64 (see types.go).
//
// Complexity quicksheet:
//   - Abs/Norm/Flatten: O(r*c); Column/SetColumn: O(r) + clone; Gather: O(r*k); Scatter: O(n+k).

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	opAbs      = "Abs"
	opNorm     = "Norm"
	opColumn   = "Column"
	opSetCol   = "SetColumn"
	opFlatten  = "FlattenColumnMajor"
	opGather   = "GatherColumns"
	opScatter  = "ScatterByIndex"
	opValues   = "Values"
	normPowerL = 2
)

// Abs returns a new matrix holding |m[i,j]|. Shape is preserved.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Abs(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAbs, err)
	}
	res, err := toDense(m, opAbs)
	if err != nil {
		return nil, err
	}
	if err = res.Apply(func(_, _ int, v float64) float64 { return math.Abs(v) }); err != nil {
		return nil, matrixErrorf(opAbs, err)
	}

	return res, nil
}

// Norm returns sqrt(sum(m[i,j]^2)) over all entries.
// For a column vector this is the Euclidean 2-norm; callers are expected to
// pass column vectors only. The zero-length vector has norm 0.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(1) on the *Dense fast path.
func Norm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	if d, ok := m.(*Dense); ok {
		if len(d.data) == 0 {
			return 0, nil
		}

		return floats.Norm(d.data, normPowerL), nil
	}
	vals, err := Values(m)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}
	if len(vals) == 0 {
		return 0, nil
	}

	return floats.Norm(vals, normPowerL), nil
}

// Values returns the entries of m in column-major order as a fresh slice.
// For an n×1 column vector this is simply its n values top-to-bottom.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Values(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opValues, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, rows*cols)

	if d, ok := m.(*Dense); ok {
		if cols == 1 {
			copy(out, d.data)

			return out, nil
		}
		var i, j int
		for j = 0; j < cols; j++ {
			for i = 0; i < rows; i++ {
				out[j*rows+i] = d.data[i*cols+j]
			}
		}

		return out, nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opValues, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			out[j*rows+i] = v
		}
	}

	return out, nil
}

// FlattenColumnMajor stacks the columns of m into one (r*c)×1 column vector,
// top-to-bottom within a column, left-to-right across columns.
// Position p (1-based) of the result is the linear index of m[(p-1)%r, (p-1)/r].
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FlattenColumnMajor(m Matrix) (*Dense, error) {
	vals, err := Values(m)
	if err != nil {
		return nil, matrixErrorf(opFlatten, err)
	}
	res := NewVector(nil)
	res.r, res.data = len(vals), vals

	return res, nil
}

// Column returns column j (0-based) of m as a fresh r×1 vector.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange.
func Column(m Matrix, j int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumn, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if j < 0 || j >= cols {
		return nil, matrixErrorf(opColumn, fmt.Errorf("col %d of %d: %w", j, cols, ErrOutOfRange))
	}
	res, err := newDenseZeroOK(rows, 1)
	if err != nil {
		return nil, matrixErrorf(opColumn, err)
	}
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			res.data[i] = d.data[i*cols+j]
		}

		return res, nil
	}
	var v float64
	for i := 0; i < rows; i++ {
		if v, err = m.At(i, j); err != nil {
			return nil, matrixErrorf(opColumn, fmt.Errorf("At(%d,%d): %w", i, j, err))
		}
		res.data[i] = v
	}

	return res, nil
}

// SetColumn returns a copy of m whose column j (0-based) is replaced by v.
// v must be a column vector of length m.Rows(); m itself is not modified.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange (bad j), ErrNotVector, ErrDimensionMismatch.
func SetColumn(m Matrix, j int, v Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSetCol, err)
	}
	if err := ValidateColumnVector(v); err != nil {
		return nil, matrixErrorf(opSetCol, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if j < 0 || j >= cols {
		return nil, matrixErrorf(opSetCol, fmt.Errorf("col %d of %d: %w", j, cols, ErrOutOfRange))
	}
	if v.Rows() != rows {
		return nil, matrixErrorf(opSetCol, fmt.Errorf("len %d want %d: %w", v.Rows(), rows, ErrDimensionMismatch))
	}
	res, err := toDense(m, opSetCol)
	if err != nil {
		return nil, err
	}
	vals, err := Values(v)
	if err != nil {
		return nil, matrixErrorf(opSetCol, err)
	}
	for i := 0; i < rows; i++ {
		if err = res.Set(i, j, vals[i]); err != nil {
			return nil, matrixErrorf(opSetCol, err)
		}
	}

	return res, nil
}

// GatherColumns builds a source.Rows()×len(idx) matrix whose k-th column is
// source[:, idx[k]-1]. idx is a column vector of 1-based column positions.
// Entries ≤ 0 leave the k-th output column zero.
//
// Errors:
//   - ErrNilMatrix, ErrNotVector (idx), ErrBadIndex (non-integral),
//     ErrOutOfRange (idx[k] > source.Cols()).
//
// Complexity:
//   - Time O(r*k), Space O(r*k).
func GatherColumns(source, idx Matrix) (*Dense, error) {
	if err := ValidateNotNil(source); err != nil {
		return nil, matrixErrorf(opGather, err)
	}
	if err := ValidateColumnVector(idx); err != nil {
		return nil, matrixErrorf(opGather, err)
	}
	positions, err := Values(idx)
	if err != nil {
		return nil, matrixErrorf(opGather, err)
	}

	rows, k := source.Rows(), len(positions)
	cols := make([]int, k)
	skipped := false
	for c, pos := range positions {
		if pos <= 0 {
			cols[c], skipped = -1, true
			continue
		}
		if cols[c], err = IndexFromValue(pos, source.Cols()); err != nil {
			return nil, matrixErrorf(opGather, fmt.Errorf("idx[%d]: %w", c, err))
		}
	}

	// fast path: every column is selected, so this is a plain induced submatrix
	if d, ok := source.(*Dense); ok && !skipped {
		all := make([]int, rows)
		for i := range all {
			all[i] = i
		}
		res, err := d.Induced(all, cols)
		if err != nil {
			return nil, matrixErrorf(opGather, err)
		}

		return res, nil
	}

	res, err := newDenseZeroOK(rows, k)
	if err != nil {
		return nil, matrixErrorf(opGather, err)
	}
	var (
		c, col, i int
		v         float64
	)
	for c, col = range cols {
		if col < 0 {
			continue
		}
		for i = 0; i < rows; i++ {
			if v, err = source.At(i, col); err != nil {
				return nil, matrixErrorf(opGather, fmt.Errorf("At(%d,%d): %w", i, col, err))
			}
			res.data[i*k+c] = v
		}
	}

	return res, nil
}

// ScatterByIndex returns a copy of the column vector dest with
// out[idx[i]-1] = values[i] for every i. idx and values must have equal length.
//
// Errors:
//   - ErrNilMatrix, ErrNotVector, ErrDimensionMismatch (len(idx) != len(values)),
//     ErrBadIndex / ErrOutOfRange for an index outside [1, dest.Rows()].
//
// Complexity:
//   - Time O(n + k), Space O(n).
func ScatterByIndex(dest, idx, values Matrix) (*Dense, error) {
	for _, v := range []Matrix{dest, idx, values} {
		if err := ValidateColumnVector(v); err != nil {
			return nil, matrixErrorf(opScatter, err)
		}
	}
	if idx.Rows() != values.Rows() {
		return nil, matrixErrorf(opScatter,
			fmt.Errorf("idx len %d, values len %d: %w", idx.Rows(), values.Rows(), ErrDimensionMismatch))
	}
	res, err := toDense(dest, opScatter)
	if err != nil {
		return nil, err
	}
	positions, err := Values(idx)
	if err != nil {
		return nil, matrixErrorf(opScatter, err)
	}
	vals, err := Values(values)
	if err != nil {
		return nil, matrixErrorf(opScatter, err)
	}

	var row int
	for i, p := range positions {
		row, err = IndexFromValue(p, res.r)
		if err != nil {
			return nil, matrixErrorf(opScatter, fmt.Errorf("idx[%d]: %w", i, err))
		}
		if err = res.Set(row, 0, vals[i]); err != nil {
			return nil, matrixErrorf(opScatter, err)
		}
	}

	return res, nil
}

// toDense returns a fresh *Dense copy of m (Clone fast path for *Dense).
func toDense(m Matrix, opTag string) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.cloneDense(), nil
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := newDenseZeroOK(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}
