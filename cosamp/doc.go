// Package cosamp implements Compressive Sampling Matching Pursuit: greedy
// recovery of a K-sparse vector x from undersampled measurements y = Φ·x.
//
// Outer loop, per signal column:
//
//	s = 0
//	repeat up to MaxIterations:
//	    u  = |Φᵗ(y − Φ·s)|                          backproject
//	    Ω  = supp(s) ∪ {2K largest entries of u}      merge
//	    b  = CG-LS(Φ_Ωᵗ Φ_Ω, Φ_Ωᵗ y)                  estimate
//	    s' = K largest-magnitude entries of b on Ω    prune
//	    stop when ||s' − s|| < ConvergenceRatio·||s'||
//
// Engine.Reconstruct runs the loop for one measurement vector and operator.
// Engine.ReconstructSignal drives a whole signal.Signal: every column is
// measured with its own operator from a sensing.Source and recovered
// independently, optionally on several workers. A failure in one column is
// reported in SignalResult and does not stop the others.
//
// Configuration is immutable (NewConfig with functional options). Logging
// goes through a slog-backed Logger and metrics through a MetricsCollector;
// both default to no-ops.
//
// Complexity per outer iteration, with |Ω| ≤ 3K:
//
//	O(M·N) backprojection + O(N log N) sort + O(M·|Ω|²) restricted Gram + CG
package cosamp
