// SPDX-License-Identifier: MIT
package cosamp

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSparsity indicates a sparsity K outside [0, N].
	ErrBadSparsity = errors.New("cosamp: sparsity out of range")

	// ErrNotUndersampled indicates M <= 0 or M >= N.
	ErrNotUndersampled = errors.New("cosamp: measurements must satisfy 0 < M < N")

	// ErrNilSource indicates a missing sensing source.
	ErrNilSource = errors.New("cosamp: nil sensing source")

	// ErrNilSignal indicates a missing signal.
	ErrNilSignal = errors.New("cosamp: nil signal")

	// ErrColumnFailed marks a per-column reconstruction failure; every
	// *ColumnError matches it with errors.Is.
	ErrColumnFailed = errors.New("cosamp: column reconstruction failed")
)

// ColumnError reports the failure of one signal column.
type ColumnError struct {
	Column int
	Err    error
}

// Error implements error.
func (e *ColumnError) Error() string {
	return fmt.Sprintf("cosamp: column %d: %v", e.Column, e.Err)
}

// Unwrap exposes the cause.
func (e *ColumnError) Unwrap() error { return e.Err }

// Is makes every ColumnError match ErrColumnFailed.
func (e *ColumnError) Is(target error) bool { return target == ErrColumnFailed }

// cosampErrorf wraps err with the operation tag; err must be non-nil.
func cosampErrorf(op string, err error) error {
	return fmt.Errorf("cosamp: %s: %w", op, err)
}
