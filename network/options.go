// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: construction options and the registration checks shared by both backends.

package network

import (
	"fmt"
	"math"
)

// Option configures a Network at construction time.
type Option func(*config)

// config holds construction-time knobs shared by both backends.
type config struct {
	policy DuplicatePolicy
}

// defaultConfig keeps the historical overwrite semantics.
func defaultConfig() config {
	return config{policy: Overwrite}
}

// WithDuplicatePolicy selects how repeated registrations of one pair combine.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(c *config) {
		c.policy = p
	}
}

func newConfig(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// checkEndpoints validates a registration request against the node range.
func checkEndpoints(n, from, to int, capacity int64) error {
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("%w: edge %d→%d with %d nodes", ErrNodeOutOfRange, from, to, n)
	}
	if capacity < 0 {
		return fmt.Errorf("%w: edge %d→%d capacity %d", ErrNegativeCapacity, from, to, capacity)
	}

	return nil
}

// combine applies the duplicate policy to a registration of capacity on a
// pair whose current capacity is prev (seen reports a prior registration)
// and whose reverse direction currently holds reverse.
func (c config) combine(from, to int, prev int64, seen bool, capacity, reverse int64) (int64, error) {
	next := capacity
	if seen {
		switch c.policy {
		case Reject:
			return 0, fmt.Errorf("%w: %d→%d", ErrDuplicateEdge, from, to)
		case Sum:
			if prev > math.MaxInt64-capacity {
				return 0, fmt.Errorf("%w: %d→%d sum %d+%d", ErrCapacityOverflow, from, to, prev, capacity)
			}
			next = prev + capacity
		}
	}
	// self-loops never carry flow, so only distinct pairs are bounded
	if from != to && next > math.MaxInt64-reverse {
		return 0, fmt.Errorf("%w: %d→%d (%d) with reverse %d", ErrCapacityOverflow, from, to, next, reverse)
	}

	return next, nil
}
