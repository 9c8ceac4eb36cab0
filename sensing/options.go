// SPDX-License-Identifier: MIT
// Package: sensing
//
// options.go - functional options shared by Gaussian and RandomSparse.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//   - Determinism is explicit: all randomness flows from the root seed.

package sensing

import "math"

// Deterministic defaults (named, no magic numbers).
const (
	defaultSeed  int64 = 1
	defaultNoise       = 0.0
)

// Option customizes a Gaussian source or a RandomSparse draw.
type Option func(*config)

type config struct {
	seed  int64   // root of every derived stream
	noise float64 // >= 0; additive measurement noise sigma
}

func newConfig(opts ...Option) config {
	cfg := config{
		seed:  defaultSeed,
		noise: defaultNoise,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed sets the root seed. seed == 0 selects the default seed so the zero
// value never means "random".
func WithSeed(seed int64) Option {
	return func(c *config) {
		if seed == 0 {
			seed = defaultSeed
		}
		c.seed = seed
	}
}

// WithNoise enables additive Gaussian measurement noise with standard
// deviation sigma. Panics when sigma is negative or not finite.
func WithNoise(sigma float64) Option {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		panic("sensing: WithNoise: sigma must be finite and >= 0")
	}

	return func(c *config) { c.noise = sigma }
}
