// SPDX-License-Identifier: MIT
package cosamp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cosamp/matrix"
	"github.com/katalvlaran/cosamp/sensing"
)

const (
	testN = 64
	testM = 32
	testK = 4
)

// problem is a noiseless measurement of a K-sparse ground truth.
type problem struct {
	x, phi, y *matrix.Dense
}

func newProblem(t testing.TB, n, m, k int, seed int64) problem {
	t.Helper()
	x, err := sensing.RandomSparse(n, k, sensing.WithSeed(seed))
	require.NoError(t, err)
	phi, err := sensing.NewGaussian(sensing.WithSeed(seed)).Operator(0, m, n)
	require.NoError(t, err)
	y, err := sensing.Measure(phi, x)
	require.NoError(t, err)

	return problem{x: x, phi: phi, y: y}
}

func relativeError(t testing.TB, got, want matrix.Matrix) float64 {
	t.Helper()
	diff, err := matrix.Sub(got, want)
	require.NoError(t, err)
	dn, err := matrix.Norm(diff)
	require.NoError(t, err)
	wn, err := matrix.Norm(want)
	require.NoError(t, err)

	return dn / wn
}

func values(t testing.TB, m matrix.Matrix) []float64 {
	t.Helper()
	v, err := matrix.Values(m)
	require.NoError(t, err)

	return v
}

func nonzeros(t testing.TB, m matrix.Matrix) int {
	t.Helper()
	n := 0
	for _, v := range values(t, m) {
		if v != 0 {
			n++
		}
	}

	return n
}
