// SPDX-License-Identifier: MIT
package sensing

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape indicates a non-positive operator or signal dimension.
	ErrBadShape = errors.New("sensing: invalid shape")

	// ErrBadSparsity indicates a sparsity outside [0, n].
	ErrBadSparsity = errors.New("sensing: sparsity out of range")
)

// sensingErrorf wraps err with the method tag; err must be non-nil.
func sensingErrorf(method string, err error) error {
	return fmt.Errorf("sensing: %s: %w", method, err)
}
