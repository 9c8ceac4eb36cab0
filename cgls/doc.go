// Package cgls solves the symmetric positive semi-definite systems produced by
// restricted least-squares problems (A = ΦᵗΦ, b = Φᵗy) with the conjugate
// gradient method.
//
// Algorithm:
//
//	x₀ = 0, r₀ = b, d₀ = r₀, δ = rᵗr, δ₀ = bᵗb
//	while k < maxIter and δ > tol²·δ₀:
//	    q = A·d
//	    α = δ / dᵗq
//	    x += α·d
//	    r = b − A·x       every refresh-th iteration (drift correction)
//	    r −= α·q          otherwise
//	    β = δ_new / δ;  d = r + β·d
//
// The solver returns the BEST iterate by relative residual sqrt(δ/δ₀), not
// necessarily the last one. A zero right-hand side (δ₀ = 0) returns the zero
// vector after zero iterations. Running out of iterations is not an error.
//
// Options:
//
//	WithTolerance(tol)      relative residual target (default 1e-3)
//	WithMaxIterations(n)    iteration cap (default 1000)
//	WithRefreshEvery(n)     exact residual recomputation period (default 50)
//	WithSymmetryEpsilon(e)  absolute tolerance of the symmetry check (default 1e-9)
//
// Complexity:
//
//	Time   = O(k·n²) for k iterations on an n×n system
//	Memory = O(n) beyond the inputs
package cgls
