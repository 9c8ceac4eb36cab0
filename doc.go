// Package cosamp recovers sparse signals from undersampled linear
// measurements with Compressive Sampling Matching Pursuit.
//
// Given y = Φ·x with Φ an M×N operator (M < N) and x K-sparse, the engine
// alternates a proxy step (Φᵗ·r), a support merge, a least-squares estimate
// on the merged support and a prune back to K entries, until the estimate
// stops moving.
//
// Packages:
//
//	matrix/   — Dense storage, products, column gather/scatter, sorting
//	indexset/ — 1-based support vectors: nonzeros, union, ranking
//	cgls/     — conjugate-gradient least squares returning the best iterate
//	sensing/  — seeded Gaussian operators, noise and sparse test vectors
//	signal/   — multi-column signals with per-column sparsity, adapters
//	cosamp/   — the engine, its configuration and the multi-column driver
//
// Quick example:
//
//	phi, _ := sensing.NewGaussian(sensing.WithSeed(7)).Operator(0, 32, 64)
//	y, _ := sensing.Measure(phi, x)
//	res, _ := cosamp.NewEngine(cosamp.NewConfig()).Reconstruct(ctx, y, phi, 4)
//
// Columns of a signal.Signal are independent problems; Engine.ReconstructSignal
// runs them on a bounded worker pool and reports failures per column.
//
//	go get github.com/katalvlaran/cosamp/cosamp
package cosamp
