// SPDX-License-Identifier: MIT
// Package matrix - per-column descending sort with index provenance.

package matrix

import (
	"fmt"
	"math"
	"sort"
)

const opSortDesc = "SortColumnsDescending"

// SortColumnsDescending sorts every column of m independently in descending
// order and reports where each sorted value came from.
//
// Returns:
//   - sorted: same shape as m, each column in non-increasing order.
//   - originalRow: same shape as m; originalRow[i,j] is the 1-based row that
//     sorted[i,j] occupied in column j of m.
//
// Tie-break:
//   - Equal values keep their relative input order (stable sort), so among
//     duplicates the smallest original row comes first. This matches a
//     sequential "consume the first remaining match" assignment.
//
// Invariant:
//   - GatherColumns-style lookup m[originalRow[i,j]-1, j] == sorted[i,j].
//
// Complexity:
//   - Time O(c * r log r), Space O(r*c).
func SortColumnsDescending(m Matrix) (sorted, originalRow *Dense, err error) {
	src, err := toDense(m, opSortDesc)
	if err != nil {
		return nil, nil, err
	}
	rows, cols := src.r, src.c
	for idx, v := range src.data {
		if math.IsNaN(v) {
			return nil, nil, matrixErrorf(opSortDesc, fmt.Errorf("at %d: %w", idx, ErrNaNInf))
		}
	}
	if sorted, err = newDenseZeroOK(rows, cols); err != nil {
		return nil, nil, matrixErrorf(opSortDesc, err)
	}
	if originalRow, err = newDenseZeroOK(rows, cols); err != nil {
		return nil, nil, matrixErrorf(opSortDesc, err)
	}

	perm := make([]int, rows)
	col := make([]float64, rows)
	var i, j int
	for j = 0; j < cols; j++ {
		for i = 0; i < rows; i++ {
			perm[i] = i
			col[i] = src.data[i*cols+j]
		}
		sort.SliceStable(perm, func(a, b int) bool {
			return col[perm[a]] > col[perm[b]]
		})
		for i = 0; i < rows; i++ {
			sorted.data[i*cols+j] = col[perm[i]]
			originalRow.data[i*cols+j] = float64(perm[i] + 1)
		}
	}
	return sorted, originalRow, nil
}
