// SPDX-License-Identifier: MIT
// Package: netflow/builder
//
// config.go - resolved builder configuration.

package builder

import "math/rand"

// builderConfig is the immutable view constructors receive.
type builderConfig struct {
	rng   *rand.Rand // nil unless WithSeed/WithRand was given
	capFn CapacityFn // per-edge capacity generator
}

// newBuilderConfig applies opts in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		capFn: DefaultCapacityFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// capacity draws the next edge capacity.
func (c builderConfig) capacity() int64 {
	return c.capFn(c.rng)
}
