// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cosamp/matrix"
)

func TestAddSub(t *testing.T) {
	a := MustFrom(t, 2, 2, 1, 2, 3, 4)
	b := MustFrom(t, 2, 2, 10, 20, 30, 40)

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{11, 33, 22, 44}, MustValues(t, sum))

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 27, 18, 36}, MustValues(t, diff))

	// operands untouched
	assert.Equal(t, []float64{1, 3, 2, 4}, MustValues(t, a))

	_, err = matrix.Add(a, MustDense(t, 3, 2))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_MatchesGonum(t *testing.T) {
	a := randDense(t, 5, 7, 1)
	b := randDense(t, 7, 3, 2)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)

	ga, err := matrix.ToGonum(a)
	require.NoError(t, err)
	gb, err := matrix.ToGonum(b)
	require.NoError(t, err)
	var want mat.Dense
	want.Mul(ga, gb)

	wantD, err := matrix.FromGonum(&want)
	require.NoError(t, err)
	ok, err := matrix.AllClose(got, wantD, 1e-12, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_ZeroInnerExtent(t *testing.T) {
	a, err := matrix.NewZeros(3, 0)
	require.NoError(t, err)
	b, err := matrix.NewZeros(0, 2)
	require.NoError(t, err)

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Rows())
	assert.Equal(t, 2, c.Cols())
	for _, v := range MustValues(t, c) {
		assert.Zero(t, v)
	}
}

func TestMul_GramIsExactlySymmetric(t *testing.T) {
	phi := randDense(t, 6, 4, 3)
	pt, err := matrix.Transpose(phi)
	require.NoError(t, err)
	g, err := matrix.Mul(pt, phi)
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateSymmetric(g, 0))
}

func TestFallbackPathsMatchDense(t *testing.T) {
	a := randDense(t, 4, 3, 5)
	b := randDense(t, 3, 4, 6)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	assert.Equal(t, MustValues(t, fast), MustValues(t, slow))

	ft, err := matrix.Transpose(a)
	require.NoError(t, err)
	st, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	assert.Equal(t, MustValues(t, ft), MustValues(t, st))

	fs, err := matrix.Scale(a, -2)
	require.NoError(t, err)
	ss, err := matrix.Scale(hide{a}, -2)
	require.NoError(t, err)
	assert.Equal(t, MustValues(t, fs), MustValues(t, ss))
}

func TestTranspose(t *testing.T) {
	m := MustFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	assert.Equal(t, 3, tr.Rows())
	assert.Equal(t, 2, tr.Cols())
	assert.Equal(t, 4.0, MustAt(t, tr, 0, 1))
	assert.Equal(t, 3.0, MustAt(t, tr, 2, 0))
}

func TestScaleZero(t *testing.T) {
	m := MustFrom(t, 1, 3, 1, -2, 3)
	s, err := matrix.Scale(m, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, MustValues(t, s))
}

func TestMatVec(t *testing.T) {
	m := MustFrom(t, 2, 3, 1, 2, 3, 4, 5, 6)
	y, err := matrix.MatVec(m, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -2}, y)

	y2, err := matrix.MatVec(hide{m}, []float64{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, y, y2)

	_, err = matrix.MatVec(m, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestIdentityAndAllClose(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	m := randDense(t, 3, 3, 9)
	p, err := matrix.Mul(I, m)
	require.NoError(t, err)
	ok, err := matrix.AllClose(p, m, 0, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	other := MustFrom(t, 1, 1, 1.0)
	near := MustFrom(t, 1, 1, 1.0+1e-7)
	ok, err = matrix.AllClose(other, near, 0, 1e-9)
	require.NoError(t, err)
	assert.False(t, ok)
}
