// Package matrix offers the dense numeric containers and kernels used by
// sparse signal recovery.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 container with safe At/Set accessors and a
//     configurable NaN/Inf policy (NewDenseWith, WithNoValidateNaNInf).
//   - Pure linear-algebra kernels: Add, Sub, Mul, Transpose, Scale, MatVec.
//   - Column-vector primitives: Abs, Norm, Column, SetColumn, Values.
//   - Linear-index plumbing over 1-based index vectors: FlattenColumnMajor,
//     GatherColumns, ScatterByIndex, and SortColumnsDescending, which returns
//     the original row of every sorted value.
//   - ToGonum / FromGonum bridges for cross-checking against gonum.
//
// Vectors are n×1 matrices. Index vectors store 1-based positions as float64
// values; an index that is not an integer fails with ErrBadIndex, one outside
// the addressed range with ErrOutOfRange.
//
// Every kernel validates its inputs and returns a sentinel error wrapped with
// the operation name; use errors.Is to branch on it.
package matrix
