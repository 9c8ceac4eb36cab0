// SPDX-License-Identifier: MIT
package sensing_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cosamp/matrix"
	"github.com/katalvlaran/cosamp/sensing"
)

func values(t *testing.T, m matrix.Matrix) []float64 {
	t.Helper()
	v, err := matrix.Values(m)
	require.NoError(t, err)

	return v
}

func TestGaussian_SeedDeterminism(t *testing.T) {
	a, err := sensing.NewGaussian(sensing.WithSeed(42)).Operator(3, 8, 16)
	require.NoError(t, err)
	b, err := sensing.NewGaussian(sensing.WithSeed(42)).Operator(3, 8, 16)
	require.NoError(t, err)
	assert.Equal(t, values(t, a), values(t, b))
	assert.Equal(t, 8, a.Rows())
	assert.Equal(t, 16, a.Cols())
}

func TestGaussian_ColumnsAndSeedsAreIndependent(t *testing.T) {
	g := sensing.NewGaussian(sensing.WithSeed(7))
	c0, err := g.Operator(0, 4, 4)
	require.NoError(t, err)
	c1, err := g.Operator(1, 4, 4)
	require.NoError(t, err)
	assert.NotEqual(t, values(t, c0), values(t, c1))

	other, err := sensing.NewGaussian(sensing.WithSeed(8)).Operator(0, 4, 4)
	require.NoError(t, err)
	assert.NotEqual(t, values(t, c0), values(t, other))
}

func TestGaussian_ZeroSeedIsDefault(t *testing.T) {
	assert.Equal(t, sensing.NewGaussian().Seed(), sensing.NewGaussian(sensing.WithSeed(0)).Seed())
}

// Entries are N(0, 1/m): the empirical mean of squares over many draws is close to 1/m.
func TestGaussian_Scale(t *testing.T) {
	const m, n = 64, 512
	phi, err := sensing.NewGaussian(sensing.WithSeed(3)).Operator(0, m, n)
	require.NoError(t, err)

	var sum, sumSq float64
	for _, v := range values(t, phi) {
		sum += v
		sumSq += v * v
	}
	count := float64(m * n)
	assert.InDelta(t, 0, sum/count, 0.01)
	assert.InDelta(t, 1.0/m, sumSq/count, 0.1/m)
}

func TestGaussian_BadShape(t *testing.T) {
	g := sensing.NewGaussian()
	for _, tc := range []struct{ col, m, n int }{{0, 0, 4}, {0, 4, 0}, {-1, 2, 4}} {
		_, err := g.Operator(tc.col, tc.m, tc.n)
		assert.ErrorIs(t, err, sensing.ErrBadShape)
	}
}

func TestGaussian_Perturb(t *testing.T) {
	y := matrix.NewVector([]float64{1, 2, 3})

	clean, err := sensing.NewGaussian().Perturb(0, y)
	require.NoError(t, err)
	assert.Equal(t, values(t, y), values(t, clean))

	noisy := sensing.NewGaussian(sensing.WithSeed(5), sensing.WithNoise(0.1))
	p1, err := noisy.Perturb(0, y)
	require.NoError(t, err)
	p2, err := noisy.Perturb(0, y)
	require.NoError(t, err)
	assert.Equal(t, values(t, p1), values(t, p2))
	assert.NotEqual(t, values(t, y), values(t, p1))
	assert.Equal(t, []float64{1, 2, 3}, values(t, y), "input must not change")

	_, err = noisy.Perturb(0, matrix.CloneMatrix(mustDense(t, 2, 2)))
	assert.ErrorIs(t, err, matrix.ErrNotVector)
}

func TestWithNoise_Panics(t *testing.T) {
	assert.Panics(t, func() { sensing.WithNoise(-0.1) })
	assert.Panics(t, func() { sensing.WithNoise(math.Inf(1)) })
}

func TestRandomSparse(t *testing.T) {
	x, err := sensing.RandomSparse(64, 4, sensing.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, 64, x.Rows())

	nonzero := 0
	for _, v := range values(t, x) {
		if v != 0 {
			nonzero++
		}
	}
	assert.Equal(t, 4, nonzero)

	again, err := sensing.RandomSparse(64, 4, sensing.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, values(t, x), values(t, again))

	zero, err := sensing.RandomSparse(5, 0)
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 5), values(t, zero))

	_, err = sensing.RandomSparse(4, 5)
	assert.ErrorIs(t, err, sensing.ErrBadSparsity)
	_, err = sensing.RandomSparse(0, 0)
	assert.ErrorIs(t, err, sensing.ErrBadShape)
}

func TestMeasureAndSourceFunc(t *testing.T) {
	g := sensing.NewGaussian(sensing.WithSeed(2))
	shifted := sensing.SourceFunc(func(column, m, n int) (*matrix.Dense, error) {
		return g.Operator(column+1, m, n)
	})
	a, err := shifted.Operator(0, 3, 5)
	require.NoError(t, err)
	b, err := g.Operator(1, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, values(t, b), values(t, a))

	x := matrix.NewVector([]float64{0, 1, 0, 0, 0})
	y, err := sensing.Measure(a, x)
	require.NoError(t, err)
	col, err := matrix.Column(a, 1)
	require.NoError(t, err)
	assert.Equal(t, values(t, col), values(t, y))

	_, err = sensing.Measure(a, matrix.NewVector([]float64{1}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func mustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}
