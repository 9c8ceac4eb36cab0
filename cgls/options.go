// SPDX-License-Identifier: MIT
// Package: cgls
//
// options.go - functional options for Solve.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Solve itself never panics.
//   - Later options override earlier ones.

package cgls

import (
	"math"

	"github.com/katalvlaran/cosamp/matrix"
)

// Deterministic defaults (named, no magic numbers).
const (
	DefaultTolerance     = 1e-3
	DefaultMaxIterations = 1000
	DefaultRefreshEvery  = 50
)

// Option customizes a Solve call.
type Option func(*config)

type config struct {
	tol          float64
	maxIter      int
	refreshEvery int
	symEps       float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		tol:          DefaultTolerance,
		maxIter:      DefaultMaxIterations,
		refreshEvery: DefaultRefreshEvery,
		symEps:       matrix.DefaultEpsilon,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithTolerance sets the relative residual target. Panics unless tol is finite and > 0.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic("cgls: WithTolerance: tol must be finite and > 0")
	}

	return func(c *config) { c.tol = tol }
}

// WithMaxIterations caps the number of CG iterations. Panics on n < 0.
// n == 0 makes Solve return the zero vector immediately.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic("cgls: WithMaxIterations: n must be >= 0")
	}

	return func(c *config) { c.maxIter = n }
}

// WithRefreshEvery sets how often (in 1-based iterations) the residual is
// recomputed exactly as b − A·x. Panics on n < 1.
func WithRefreshEvery(n int) Option {
	if n < 1 {
		panic("cgls: WithRefreshEvery: n must be >= 1")
	}

	return func(c *config) { c.refreshEvery = n }
}

// WithSymmetryEpsilon sets the absolute tolerance used to accept A as symmetric.
func WithSymmetryEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("cgls: WithSymmetryEpsilon: eps must be finite and >= 0")
	}

	return func(c *config) { c.symEps = eps }
}
