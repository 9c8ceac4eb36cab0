// SPDX-License-Identifier: MIT
package signal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cosamp/indexset"
	"github.com/katalvlaran/cosamp/matrix"
)

var (
	// ErrEmptySignal indicates a signal with no rows or no columns.
	ErrEmptySignal = errors.New("signal: empty signal")

	// ErrSparsityMismatch indicates a sparsity array inconsistent with the
	// matrix: wrong length, or a value outside [0, rows].
	ErrSparsityMismatch = errors.New("signal: sparsity inconsistent with data")
)

// Signal is an N×C matrix of independent columns with a target sparsity per column.
type Signal struct {
	data     *matrix.Dense
	sparsity []int
}

// New builds a Signal from data and an explicit per-column sparsity.
// data is copied.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrEmptySignal, ErrSparsityMismatch.
func New(data matrix.Matrix, sparsity []int) (*Signal, error) {
	if err := matrix.ValidateNotNil(data); err != nil {
		return nil, fmt.Errorf("signal: New: %w", err)
	}
	rows, cols := data.Rows(), data.Cols()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("signal: New: %dx%d: %w", rows, cols, ErrEmptySignal)
	}
	if len(sparsity) != cols {
		return nil, fmt.Errorf("signal: New: %d sparsity values for %d columns: %w",
			len(sparsity), cols, ErrSparsityMismatch)
	}
	for j, k := range sparsity {
		if k < 0 || k > rows {
			return nil, fmt.Errorf("signal: New: column %d sparsity %d not in [0,%d]: %w",
				j, k, rows, ErrSparsityMismatch)
		}
	}
	cp, ok := matrix.CloneMatrix(data).(*matrix.Dense)
	if !ok {
		vals, err := matrix.Values(data)
		if err != nil {
			return nil, fmt.Errorf("signal: New: %w", err)
		}
		if cp, err = fromColumnMajor(rows, cols, vals); err != nil {
			return nil, fmt.Errorf("signal: New: %w", err)
		}
	}

	return &Signal{data: cp, sparsity: append([]int(nil), sparsity...)}, nil
}

// FromMatrix builds a Signal whose sparsity is the nonzero count of each column.
func FromMatrix(data matrix.Matrix) (*Signal, error) {
	if err := matrix.ValidateNotNil(data); err != nil {
		return nil, fmt.Errorf("signal: FromMatrix: %w", err)
	}
	sparsity := make([]int, data.Cols())
	for j := range sparsity {
		col, err := matrix.Column(data, j)
		if err != nil {
			return nil, fmt.Errorf("signal: FromMatrix: %w", err)
		}
		support, err := indexset.FindNonzero(col)
		if err != nil {
			return nil, fmt.Errorf("signal: FromMatrix: %w", err)
		}
		sparsity[j] = support.Rows() * support.Cols()
	}

	return New(data, sparsity)
}

// FromColumns stacks n×1 column vectors side by side into a Signal.
func FromColumns(columns []matrix.Matrix, sparsity []int) (*Signal, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("signal: FromColumns: %w", ErrEmptySignal)
	}
	if err := matrix.ValidateColumnVector(columns[0]); err != nil {
		return nil, fmt.Errorf("signal: FromColumns: %w", err)
	}
	data, err := matrix.NewZeros(columns[0].Rows(), len(columns))
	if err != nil {
		return nil, fmt.Errorf("signal: FromColumns: %w", err)
	}
	for j, c := range columns {
		if data, err = matrix.SetColumn(data, j, c); err != nil {
			return nil, fmt.Errorf("signal: FromColumns: column %d: %w", j, err)
		}
	}

	return New(data, sparsity)
}

// Length returns N, the length of each column.
func (s *Signal) Length() int { return s.data.Rows() }

// Columns returns C, the number of independent columns.
func (s *Signal) Columns() int { return s.data.Cols() }

// Sparsity returns the target sparsity of column j, or -1 when j is out of range.
func (s *Signal) Sparsity(j int) int {
	if j < 0 || j >= len(s.sparsity) {
		return -1
	}

	return s.sparsity[j]
}

// SparsityAll returns a copy of the per-column sparsity array.
func (s *Signal) SparsityAll() []int { return append([]int(nil), s.sparsity...) }

// Column returns a copy of column j as an N×1 vector.
func (s *Signal) Column(j int) (*matrix.Dense, error) {
	col, err := matrix.Column(s.data, j)
	if err != nil {
		return nil, fmt.Errorf("signal: Column: %w", err)
	}

	return col, nil
}

// Matrix returns a copy of the N×C data.
func (s *Signal) Matrix() *matrix.Dense {
	return s.data.Clone().(*matrix.Dense)
}

func fromColumnMajor(rows, cols int, vals []float64) (*matrix.Dense, error) {
	rowMajor := make([]float64, len(vals))
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			rowMajor[i*cols+j] = vals[j*rows+i]
		}
	}

	return matrix.NewFromData(rows, cols, rowMajor)
}
