// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cosamp/matrix"
)

func TestSortColumnsDescending(t *testing.T) {
	m := MustFrom(t, 4, 2,
		1, 0,
		3, -1,
		2, 5,
		3, 0,
	)
	sorted, rows, err := matrix.SortColumnsDescending(m)
	require.NoError(t, err)

	// column 0: ties on 3 keep input order (row 2 before row 4)
	assert.Equal(t, []float64{3, 3, 2, 1, 5, 0, 0, -1}, MustValues(t, sorted))
	assert.Equal(t, []float64{2, 4, 3, 1, 3, 1, 4, 2}, MustValues(t, rows))
}

func TestSortColumnsDescending_GatherReproducesSorted(t *testing.T) {
	m := randDense(t, 9, 3, 42)
	sorted, rows, err := matrix.SortColumnsDescending(m)
	require.NoError(t, err)

	for j := 0; j < m.Cols(); j++ {
		for i := 0; i < m.Rows(); i++ {
			r := int(MustAt(t, rows, i, j)) - 1
			assert.Equal(t, MustAt(t, m, r, j), MustAt(t, sorted, i, j))
			if i > 0 {
				assert.GreaterOrEqual(t, MustAt(t, sorted, i-1, j), MustAt(t, sorted, i, j))
			}
		}
	}
}

func TestSortColumnsDescending_Empty(t *testing.T) {
	sorted, rows, err := matrix.SortColumnsDescending(matrix.NewVector(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, sorted.Rows())
	assert.Equal(t, 0, rows.Rows())

	_, _, err = matrix.SortColumnsDescending(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
