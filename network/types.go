// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: the Network contract shared by the dense and sparse backends, plus
// the small enums (Backend, DuplicatePolicy) that select between them.
// Policy:
//   - Capacities are fixed once registration is over; only Push mutates flow.
//   - Flow is skew-symmetric: Flow(u,v) == -Flow(v,u) at all times.
//   - Hot-path accessors (Capacity/Flow/Residual/Neighbors/Push) do not
//     revalidate indices; RegisterEdge does.

package network

import (
	"fmt"
	"strings"
)

// Network is a residual flow network over nodes 0..NodeCount()-1.
//
// A Network is owned by one computation at a time; implementations are not
// safe for concurrent mutation.
type Network interface {
	// NodeCount reports the fixed number of nodes.
	NodeCount() int

	// EdgeCount reports the number of ordered pairs with capacity > 0.
	EdgeCount() int

	// RegisterEdge records capacity on from→to and links both endpoints in
	// the adjacency structure so the reverse residual can be traversed.
	RegisterEdge(from, to int, capacity int64) error

	// Capacity returns the registered capacity of u→v (0 when absent).
	Capacity(u, v int) int64

	// Flow returns the current flow on u→v; negative on the implicit reverse
	// of a forward edge.
	Flow(u, v int) int64

	// Residual returns Capacity(u,v) - Flow(u,v).
	Residual(u, v int) int64

	// Neighbors returns the adjacency of u in insertion order. The returned
	// slice is owned by the network and must not be modified.
	Neighbors(u int) []int

	// Push adds delta to Flow(u,v) and subtracts it from Flow(v,u).
	Push(u, v int, delta int64)

	// ForEachEdge calls fn for every pair with capacity > 0 in row-major
	// order, stopping early when fn returns false.
	ForEachEdge(fn func(from, to int, capacity, flow int64) bool)

	// Reset zeroes all flow, keeping capacities and adjacency.
	Reset()
}

// Backend names a Network implementation.
type Backend int

const (
	// Auto defers the choice to Choose.
	Auto Backend = iota
	// Dense stores n×n capacity and flow matrices.
	Dense
	// Sparse stores paired arcs with an ordered (from,to) index.
	Sparse
)

// String implements fmt.Stringer.
func (b Backend) String() string {
	switch b {
	case Auto:
		return "auto"
	case Dense:
		return "dense"
	case Sparse:
		return "sparse"
	}

	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend maps "auto", "dense" or "sparse" (case-insensitive) to a Backend.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "dense":
		return Dense, nil
	case "sparse":
		return Sparse, nil
	}

	return Auto, fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// DuplicatePolicy decides what RegisterEdge does when the same ordered pair
// is registered more than once.
type DuplicatePolicy int

const (
	// Overwrite replaces the previous capacity with the new one.
	Overwrite DuplicatePolicy = iota
	// Sum adds the new capacity to the previous one (parallel edges merge).
	Sum
	// Reject fails the second registration with ErrDuplicateEdge.
	Reject
)

// String implements fmt.Stringer.
func (p DuplicatePolicy) String() string {
	switch p {
	case Overwrite:
		return "overwrite"
	case Sum:
		return "sum"
	case Reject:
		return "reject"
	}

	return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
}

// ParseDuplicatePolicy maps "overwrite", "sum" or "reject" to a DuplicatePolicy.
// The empty string selects Overwrite.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "overwrite":
		return Overwrite, nil
	case "sum":
		return Sum, nil
	case "reject":
		return Reject, nil
	}

	return Overwrite, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}
