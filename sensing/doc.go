// Package sensing supplies measurement operators and synthetic sparse signals
// for compressive sensing.
//
// A Source produces the M×N sensing operator Φ used to measure one signal
// column. The Gaussian source draws i.i.d. N(0, 1/M) entries, i.e. standard
// normals scaled by 1/sqrt(M), from a stream derived from (seed, column), so
// every column gets its own reproducible operator regardless of the order in
// which columns are processed. Sources that also implement Perturber add
// measurement noise to y = Φ·x.
//
// RandomSparse builds ground-truth K-sparse vectors: K distinct positions
// chosen by a seeded permutation, each holding a standard normal value.
//
// Options:
//
//	WithSeed(seed)    root seed for all derived streams (0 selects the default)
//	WithNoise(sigma)  additive N(0, sigma²) measurement noise (default 0)
//
// Concurrency:
//
//	A Gaussian value holds only its immutable configuration; Operator and
//	Perturb allocate a fresh RNG per call and are safe for concurrent use.
package sensing
