// SPDX-License-Identifier: MIT
// Package: cosamp
//
// config.go - immutable engine configuration and its functional options.
//
// Contract:
//   - Config is built once by NewConfig and never changes afterwards; engines
//     running concurrently never share mutable settings.
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Reconstruction itself never panics.
//   - Later options override earlier ones.

package cosamp

import (
	"math"

	"github.com/katalvlaran/cosamp/cgls"
)

// Deterministic defaults (named, no magic numbers).
const (
	DefaultMaxIterations    = 10
	DefaultConvergenceRatio = 0.01
	DefaultWorkers          = 1
	DefaultCGTolerance      = cgls.DefaultTolerance
	DefaultCGMaxIterations  = cgls.DefaultMaxIterations
	DefaultResidualRefresh  = cgls.DefaultRefreshEvery
)

// Option customizes a Config.
type Option func(*Config)

// Config holds the engine settings. Read it through the getters.
type Config struct {
	maxIterations    int
	convergenceRatio float64
	cgTolerance      float64
	cgMaxIterations  int
	residualRefresh  int
	workers          int
	keepHistory      bool
	logger           *Logger
	metrics          MetricsCollector
}

// NewConfig applies opts on top of the documented defaults.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		maxIterations:    DefaultMaxIterations,
		convergenceRatio: DefaultConvergenceRatio,
		cgTolerance:      DefaultCGTolerance,
		cgMaxIterations:  DefaultCGMaxIterations,
		residualRefresh:  DefaultResidualRefresh,
		workers:          DefaultWorkers,
		logger:           NoopLogger(),
		metrics:          NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxIterations caps the number of outer iterations. Panics on n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("cosamp: WithMaxIterations: n must be >= 1")
	}

	return func(c *Config) { c.maxIterations = n }
}

// WithConvergenceRatio sets the relative-change stopping threshold.
// Panics unless ratio is finite and > 0.
func WithConvergenceRatio(ratio float64) Option {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio <= 0 {
		panic("cosamp: WithConvergenceRatio: ratio must be finite and > 0")
	}

	return func(c *Config) { c.convergenceRatio = ratio }
}

// WithCGTolerance sets the relative residual target of the inner solver.
func WithCGTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic("cosamp: WithCGTolerance: tol must be finite and > 0")
	}

	return func(c *Config) { c.cgTolerance = tol }
}

// WithCGMaxIterations caps the inner solver iterations. Panics on n < 1.
func WithCGMaxIterations(n int) Option {
	if n < 1 {
		panic("cosamp: WithCGMaxIterations: n must be >= 1")
	}

	return func(c *Config) { c.cgMaxIterations = n }
}

// WithResidualRefresh sets how often the inner solver recomputes its residual exactly.
func WithResidualRefresh(n int) Option {
	if n < 1 {
		panic("cosamp: WithResidualRefresh: n must be >= 1")
	}

	return func(c *Config) { c.residualRefresh = n }
}

// WithWorkers sets how many columns ReconstructSignal recovers concurrently.
// Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("cosamp: WithWorkers: n must be >= 1")
	}

	return func(c *Config) { c.workers = n }
}

// WithHistory keeps every intermediate estimate in Result.History.
func WithHistory() Option {
	return func(c *Config) { c.keepHistory = true }
}

// WithLogger sets the logger. Panics on nil; use NoopLogger to silence output.
func WithLogger(l *Logger) Option {
	if l == nil {
		panic("cosamp: WithLogger(nil)")
	}

	return func(c *Config) { c.logger = l }
}

// WithMetrics sets the metrics collector. Panics on nil.
func WithMetrics(m MetricsCollector) Option {
	if m == nil {
		panic("cosamp: WithMetrics(nil)")
	}

	return func(c *Config) { c.metrics = m }
}

// MaxIterations returns the outer iteration cap.
func (c Config) MaxIterations() int { return c.maxIterations }

// ConvergenceRatio returns the relative-change stopping threshold.
func (c Config) ConvergenceRatio() float64 { return c.convergenceRatio }

// CGTolerance returns the inner solver tolerance.
func (c Config) CGTolerance() float64 { return c.cgTolerance }

// CGMaxIterations returns the inner solver iteration cap.
func (c Config) CGMaxIterations() int { return c.cgMaxIterations }

// ResidualRefresh returns the inner solver residual refresh period.
func (c Config) ResidualRefresh() int { return c.residualRefresh }

// Workers returns the column concurrency of ReconstructSignal.
func (c Config) Workers() int { return c.workers }

// KeepHistory reports whether intermediate estimates are retained.
func (c Config) KeepHistory() bool { return c.keepHistory }

// Logger returns the configured logger.
func (c Config) Logger() *Logger { return c.logger }

// Metrics returns the configured metrics collector.
func (c Config) Metrics() MetricsCollector { return c.metrics }

func (c Config) cgOptions() []cgls.Option {
	return []cgls.Option{
		cgls.WithTolerance(c.cgTolerance),
		cgls.WithMaxIterations(c.cgMaxIterations),
		cgls.WithRefreshEvery(c.residualRefresh),
	}
}

// withDefaults fills zero-valued fields, so a Config literal is usable.
func (c Config) withDefaults() Config {
	d := NewConfig()
	if c.maxIterations <= 0 {
		c.maxIterations = d.maxIterations
	}
	if !(c.convergenceRatio > 0) {
		c.convergenceRatio = d.convergenceRatio
	}
	if !(c.cgTolerance > 0) {
		c.cgTolerance = d.cgTolerance
	}
	if c.cgMaxIterations <= 0 {
		c.cgMaxIterations = d.cgMaxIterations
	}
	if c.residualRefresh <= 0 {
		c.residualRefresh = d.residualRefresh
	}
	if c.workers <= 0 {
		c.workers = d.workers
	}
	if c.logger == nil {
		c.logger = d.logger
	}
	if c.metrics == nil {
		c.metrics = d.metrics
	}

	return c
}
