// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense container and kernels.
// This file intentionally contains ONLY the public Matrix interface; errors
// and options live in dedicated files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Conventions used across the recovery packages:
//   - A "column vector" is an n×1 Matrix; n may be zero for empty index sets.
//   - Index vectors carry 1-based linear/column positions stored as float64,
//     matching the value space that FindNonzero/Union/RankSlice operate on.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
