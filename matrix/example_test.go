// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/cosamp/matrix"
)

// ExampleSortColumnsDescending shows the value/provenance pair returned for a
// column vector, and how GatherColumns pulls columns by those 1-based positions.
func ExampleSortColumnsDescending() {
	v := matrix.NewVector([]float64{0.5, -2, 3, 0.5})
	mag, _ := matrix.Abs(v)
	sorted, rows, _ := matrix.SortColumnsDescending(mag)

	s, _ := matrix.Values(sorted)
	r, _ := matrix.Values(rows)
	fmt.Println("sorted:", s)
	fmt.Println("rows:  ", r)

	phi, _ := matrix.NewFromData(2, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
	})
	top2 := matrix.NewVector(r[:2])
	sub, _ := matrix.GatherColumns(phi, top2)
	fmt.Print(sub)
	// Output:
	// sorted: [3 2 0.5 0.5]
	// rows:   [3 2 1 4]
	// [3, 2]
	// [7, 6]
}
