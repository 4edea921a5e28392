// SPDX-License-Identifier: MIT
// Package: netflow/builder
//
// capacity_fn.go - edge capacity generators.
//
// A CapacityFn receives the (possibly nil) RNG of the build. Generators
// that need randomness fall back to DefaultCapacity when none is set, so
// deterministic shapes can be built without a seed.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultCapacity is used for every edge when no generator is configured.
const DefaultCapacity int64 = 1

// CapacityFn produces the capacity of the next generated edge.
type CapacityFn func(rng *rand.Rand) int64

// DefaultCapacityFn always returns DefaultCapacity.
func DefaultCapacityFn(_ *rand.Rand) int64 {
	return DefaultCapacity
}

// ConstantCapacityFn returns value for every edge. Panics if value < 0.
func ConstantCapacityFn(value int64) CapacityFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantCapacityFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformCapacityFn draws from the closed range [min, max].
// Panics unless 0 ≤ min ≤ max.
func UniformCapacityFn(min, max int64) CapacityFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformCapacityFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if max == min {
			return min
		}
		if rng == nil {
			return DefaultCapacity
		}

		return min + rng.Int63n(max-min+1)
	}
}
