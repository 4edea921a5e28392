// SPDX-License-Identifier: MIT
// Package network: sentinel error set.
// Every constructor and mutator of this package returns one of these
// sentinels, optionally wrapped with positional context via %w. Callers
// MUST branch with errors.Is; the message text is not part of the contract.

package network

import "errors"

var (
	// ErrBadNodeCount is returned when a network is requested with fewer than one node.
	ErrBadNodeCount = errors.New("network: node count must be >= 1")

	// ErrTooManyNodes is returned when a network is requested with more nodes
	// than its backend can allocate (MaxDenseNodes, MaxNodes).
	ErrTooManyNodes = errors.New("network: too many nodes")

	// ErrNodeOutOfRange indicates that an endpoint is outside [0, NodeCount).
	ErrNodeOutOfRange = errors.New("network: node index out of range")

	// ErrNegativeCapacity indicates that an edge was registered with capacity < 0.
	ErrNegativeCapacity = errors.New("network: negative capacity")

	// ErrDuplicateEdge is returned under the Reject policy when the same
	// ordered pair is registered twice.
	ErrDuplicateEdge = errors.New("network: duplicate edge")

	// ErrCapacityOverflow indicates that a registration would let the sum of the
	// two directions of a node pair exceed the int64 range. Keeping that sum
	// representable bounds every residual value the solver can observe.
	ErrCapacityOverflow = errors.New("network: capacity overflows int64")

	// ErrUnknownBackend is returned by ParseBackend for an unrecognized name.
	ErrUnknownBackend = errors.New("network: unknown backend")

	// ErrUnknownPolicy is returned by ParseDuplicatePolicy for an unrecognized name.
	ErrUnknownPolicy = errors.New("network: unknown duplicate policy")
)
