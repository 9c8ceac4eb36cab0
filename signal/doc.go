// Package signal holds the multi-column signal that a reconstruction job
// recovers, together with the per-column sparsity each column is recovered at.
//
// A Signal is an N×C matrix whose columns are independent sparse vectors and
// a sparsity array of length C. It is immutable after construction: accessors
// return copies.
//
// Adapters convert domain data to and from the matrix form:
//
//	img, _ := signal.NewImage(h, w, pixels)
//	sig, _ := signal.FromAdapter(img)    // sparsity inferred from nonzeros
//	... reconstruct ...
//	_ = img.FromMatrix(estimate)         // write the result back
package signal
