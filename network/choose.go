// SPDX-License-Identifier: MIT
//
// File: choose.go
// Role: backend selection and the node ceilings both backends enforce.

package network

import "fmt"

// DenseNodeLimit is the node count up to which Choose always picks Dense;
// 1024² cells of int64 flow and capacity stay around 16 MiB.
const DenseNodeLimit = 1024

// MaxDenseNodes bounds NewDense: three n×n matrices of 17 bytes per cell
// stay around 1.1 GiB at 8192 nodes, and n*n cannot overflow an int.
const MaxDenseNodes = 1 << 13

// MaxNodes bounds every backend; the sparse adjacency alone is 24 bytes per
// node, and u*n+v keys stay far inside int64.
const MaxNodes = 1 << 24

// denseMinDensity is the edges/nodes² ratio above which the matrices pay off
// even for larger networks.
const denseMinDensity = 1.0 / 16

// Choose picks a backend for a network with the given node and edge counts.
// Small or dense networks use matrices; everything else uses paired arcs.
func Choose(nodes, edges int) Backend {
	if nodes > MaxDenseNodes {
		return Sparse
	}
	if nodes <= DenseNodeLimit {
		return Dense
	}
	if float64(edges) >= denseMinDensity*float64(nodes)*float64(nodes) {
		return Dense
	}

	return Sparse
}

// New constructs an empty network of the requested backend. Auto is resolved
// with Choose(n, edgeHint); edgeHint is ignored for explicit backends.
func New(b Backend, n, edgeHint int, opts ...Option) (Network, error) {
	if b == Auto {
		b = Choose(n, edgeHint)
	}
	switch b {
	case Dense:
		return NewDense(n, opts...)
	case Sparse:
		return NewSparse(n, opts...)
	}

	return nil, fmt.Errorf("%w: %v", ErrUnknownBackend, b)
}
