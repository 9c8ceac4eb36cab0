// SPDX-License-Identifier: MIT
package sensing

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/cosamp/matrix"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns an n×1 vector with exactly k nonzero entries: the
// first k positions of a seeded permutation of 1..n receive standard normal
// values, every other entry is zero.
//
// Errors:
//   - ErrBadShape when n <= 0.
//   - ErrBadSparsity when k < 0 or k > n.
//
// Complexity: O(n).
func RandomSparse(n, k int, opts ...Option) (*matrix.Dense, error) {
	if n <= 0 {
		return nil, sensingErrorf(methodRandomSparse, fmt.Errorf("n=%d: %w", n, ErrBadShape))
	}
	if k < 0 || k > n {
		return nil, sensingErrorf(methodRandomSparse, fmt.Errorf("k=%d n=%d: %w", k, n, ErrBadSparsity))
	}
	cfg := newConfig(opts...)

	perm := rand.New(streamSource(cfg.seed, 0, purposeSupport)).Perm(n)
	normal := distuv.Normal{Mu: 0, Sigma: 1, Src: streamSource(cfg.seed, 0, purposeValues)}

	x := make([]float64, n)
	var v float64
	for _, p := range perm[:k] {
		// a zero draw would silently lower the sparsity
		for v = 0; v == 0; {
			v = normal.Rand()
		}
		x[p] = v
	}

	return matrix.NewVector(x), nil
}
