// Package indexset treats numeric column vectors as sets of 1-based linear
// indices, the bookkeeping layer of greedy sparse recovery.
//
// A linear index p addresses element ((p-1) % rows, (p-1) / rows) of a matrix,
// i.e. positions are counted column-major, top-to-bottom then left-to-right,
// starting at 1. Every result is a fresh *matrix.Dense; inputs are never
// mutated, and an empty result is the zero-length 0×1 vector, never nil.
//
// Operations:
//
//   - FindNonzero - linear indices of the nonzero entries, in scan order.
//   - NotEqual    - 0/1 mask of entries that differ from a test value.
//   - Union       - ascending, duplicate-free union of two index sets.
//   - RankSlice   - the entries occupying a contiguous 1-based rank range.
//   - GatherFlat  - values at given linear positions of a matrix.
//
// Complexity:
//
//	FindNonzero, NotEqual, RankSlice, GatherFlat: O(r·c)
//	Union:                                        O((a+b)·log(a+b))
package indexset
