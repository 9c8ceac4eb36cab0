// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the kernels on the recovery hot path,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cosamp/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{64, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float64
	sinkF float64
)

func BenchmarkMul_Gram(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			phi := randDense(b, n/2, n, 1337)
			pt, err := matrix.Transpose(phi)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(pt, phi)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randDense(b, n, n, 7)
			x := make([]float64, n)
			for i := range x {
				x[i] = float64(i%5) - 2
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVec(a, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkSortColumnsDescending(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			v := randDense(b, n, 1, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s, _, err := matrix.SortColumnsDescending(v)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = s
			}
		})
	}
}

func BenchmarkNorm(b *testing.B) {
	v := randDense(b, 1024, 1, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n, err := matrix.Norm(v)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = n
	}
}
