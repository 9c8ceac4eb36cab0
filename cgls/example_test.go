// SPDX-License-Identifier: MIT
package cgls_test

import (
	"fmt"

	"github.com/katalvlaran/cosamp/cgls"
	"github.com/katalvlaran/cosamp/matrix"
)

func ExampleSolve() {
	a, _ := matrix.NewFromData(2, 2, []float64{
		4, 1,
		1, 3,
	})
	b := matrix.NewVector([]float64{1, 2})

	res, _ := cgls.Solve(a, b, cgls.WithTolerance(1e-10))
	x, _ := matrix.Values(res.X)
	fmt.Printf("x = [%.4f %.4f] after %d iterations\n", x[0], x[1], res.Iterations)
	// Output:
	// x = [0.0909 0.6364] after 2 iterations
}
