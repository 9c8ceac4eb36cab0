// SPDX-License-Identifier: MIT
// rng.go - deterministic random streams.
//
// Every random draw comes from a stream derived from (root seed, column,
// purpose). Streams never share state, so workers may build operators for
// different columns concurrently and still reproduce a sequential run.

package sensing

import (
	"math/rand/v2"
)

// Stream purposes; mixed into the derived seed so the operator, the noise and
// the support of the same column are independent.
const (
	purposeOperator uint64 = iota + 1
	purposeNoise
	purposeSupport
	purposeValues
)

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) uint64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return x
}

// streamSource returns the PCG source for (seed, column, purpose).
func streamSource(seed int64, column int, purpose uint64) *rand.PCG {
	return rand.NewPCG(deriveSeed(seed, uint64(column)), purpose)
}
