// SPDX-License-Identifier: MIT
package cgls

import (
	"errors"
	"fmt"
)

var (
	// ErrBreakdown indicates a search direction with non-positive curvature
	// (dᵗAd ≤ 0), i.e. A is not positive definite along the Krylov space.
	ErrBreakdown = errors.New("cgls: non-positive curvature")

	// ErrNonFinite indicates a NaN or ±Inf produced during the recurrence.
	ErrNonFinite = errors.New("cgls: non-finite iterate")
)

// cglsErrorf wraps err with the operation tag; err must be non-nil.
func cglsErrorf(op string, err error) error {
	return fmt.Errorf("cgls: %s: %w", op, err)
}
