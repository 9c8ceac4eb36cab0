// SPDX-License-Identifier: MIT
package indexset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/cosamp/matrix"
)

// ErrBadRange indicates a rank range that is empty or starts before rank 1.
var ErrBadRange = errors.New("indexset: invalid rank range")

const (
	opFind      = "FindNonzero"
	opNotEqual  = "NotEqual"
	opUnion     = "Union"
	opRankSlice = "RankSlice"
	opGather    = "GatherFlat"
)

// indexErrorf wraps err with the operation tag; err must be non-nil.
func indexErrorf(op string, err error) error {
	return fmt.Errorf("indexset: %s: %w", op, err)
}

// FindNonzero returns the 1-based linear indices of the nonzero entries of m,
// in ascending scan order.
//
// Shape of the result:
//   - 1×k row vector when m has exactly one row and k > 0;
//   - k×1 column vector otherwise;
//   - 0×1 when no entry is nonzero.
//
// Complexity: O(r·c).
func FindNonzero(m matrix.Matrix) (*matrix.Dense, error) {
	vals, err := matrix.Values(m)
	if err != nil {
		return nil, indexErrorf(opFind, err)
	}
	idx := make([]float64, 0, len(vals))
	for p, v := range vals {
		if v != 0 {
			idx = append(idx, float64(p+1))
		}
	}
	if m.Rows() == 1 && len(idx) > 0 {
		row, err := matrix.NewFromData(1, len(idx), idx)
		if err != nil {
			return nil, indexErrorf(opFind, err)
		}

		return row, nil
	}

	return matrix.NewVector(idx), nil
}

// NotEqual returns a matrix shaped like m holding 1 where m[i,j] != v and 0 elsewhere.
// Paired with FindNonzero it yields the support of an estimate: FindNonzero(NotEqual(s, 0)).
//
// Complexity: O(r·c).
func NotEqual(m matrix.Matrix, v float64) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, indexErrorf(opNotEqual, err)
	}
	rows, cols := m.Rows(), m.Cols()
	mask, err := matrix.NewZeros(rows, cols)
	if err != nil {
		return nil, indexErrorf(opNotEqual, err)
	}
	var x float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if x, err = m.At(i, j); err != nil {
				return nil, indexErrorf(opNotEqual, err)
			}
			if x != v {
				_ = mask.Set(i, j, 1)
			}
		}
	}

	return mask, nil
}

// Union returns the distinct values found in a and b, sorted ascending, as a
// column vector. Shapes are ignored: both operands are read as flat multisets.
// Values are compared exactly, so callers pass index vectors, not magnitudes.
//
// Complexity: O((a+b)·log(a+b)).
func Union(a, b matrix.Matrix) (*matrix.Dense, error) {
	av, err := matrix.Values(a)
	if err != nil {
		return nil, indexErrorf(opUnion, err)
	}
	bv, err := matrix.Values(b)
	if err != nil {
		return nil, indexErrorf(opUnion, err)
	}

	seen := make(map[float64]struct{}, len(av)+len(bv))
	out := make([]float64, 0, len(av)+len(bv))
	for _, src := range [][]float64{av, bv} {
		for _, v := range src {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Float64s(out)

	return matrix.NewVector(out), nil
}

// RankSlice returns, as a column vector, the entries of m occupying scan ranks
// start..end (1-based, inclusive) in column-major order.
// end is clamped to the number of entries, so asking for the top 2K of a
// vector shorter than 2K returns all of it.
//
// Errors:
//   - ErrBadRange when start < 1 or end < start.
//
// Complexity: O(r·c).
func RankSlice(m matrix.Matrix, start, end int) (*matrix.Dense, error) {
	if start < 1 || end < start {
		return nil, indexErrorf(opRankSlice, fmt.Errorf("[%d, %d]: %w", start, end, ErrBadRange))
	}
	vals, err := matrix.Values(m)
	if err != nil {
		return nil, indexErrorf(opRankSlice, err)
	}
	if end > len(vals) {
		end = len(vals)
	}
	if start > end {
		return matrix.NewVector(nil), nil
	}

	return matrix.NewVector(vals[start-1 : end]), nil
}

// GatherFlat flattens m column-major and returns the values at the 1-based
// positions listed in idx, in idx order.
//
// Errors:
//   - matrix.ErrNotVector when idx is not a column vector.
//   - matrix.ErrBadIndex / matrix.ErrOutOfRange for an invalid position.
//
// Complexity: O(r·c + k).
func GatherFlat(m, idx matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateColumnVector(idx); err != nil {
		return nil, indexErrorf(opGather, err)
	}
	flat, err := matrix.Values(m)
	if err != nil {
		return nil, indexErrorf(opGather, err)
	}
	positions, err := matrix.Values(idx)
	if err != nil {
		return nil, indexErrorf(opGather, err)
	}

	out := make([]float64, len(positions))
	var p int
	for i, v := range positions {
		if p, err = matrix.IndexFromValue(v, len(flat)); err != nil {
			return nil, indexErrorf(opGather, fmt.Errorf("idx[%d]=%g: %w", i, v, err))
		}
		out[i] = flat[p]
	}

	return matrix.NewVector(out), nil
}
