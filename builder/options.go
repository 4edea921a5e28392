// SPDX-License-Identifier: MIT
// Package: netflow/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; the
// constructors themselves return errors.

package builder

import (
	"math/rand"
)

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders and capacity
// generators. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithCapacityFn overrides the per-edge capacity generator. Panics on nil.
func WithCapacityFn(fn CapacityFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCapacityFn(nil)")
	}
	return func(c *builderConfig) {
		c.capFn = fn
	}
}

// WithConstantCapacity gives every generated edge the same capacity.
func WithConstantCapacity(value int64) BuilderOption {
	return WithCapacityFn(ConstantCapacityFn(value))
}

// WithUniformCapacity draws capacities uniformly from [min, max].
func WithUniformCapacity(min, max int64) BuilderOption {
	return WithCapacityFn(UniformCapacityFn(min, max))
}
