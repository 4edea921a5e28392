// SPDX-License-Identifier: MIT
//
// File: dense.go
// Role: the baseline residual network, backed by row-major n×n matrices.
// Complexity: O(n²) memory; O(1) Capacity/Flow/Residual/Push; O(n²) ForEachEdge.

package network

import "fmt"

// flag bits stored per ordered pair in DenseNetwork.marks.
const (
	markLinked     uint8 = 1 << iota // v is present in adj[u]
	markRegistered                   // u→v was passed to RegisterEdge
)

// DenseNetwork is a Network stored as flat row-major matrices.
// capacity, flow and marks each hold n*n entries; entry (u,v) lives at u*n+v.
type DenseNetwork struct {
	n        int
	cfg      config
	capacity []int64
	flow     []int64
	marks    []uint8
	adj      [][]int
	edges    int
}

var _ Network = (*DenseNetwork)(nil)

// NewDense allocates an empty dense network with n nodes, 1 ≤ n ≤ MaxDenseNodes.
// Complexity: O(n²) time and memory.
func NewDense(n int, opts ...Option) (*DenseNetwork, error) {
	if n < 1 {
		return nil, ErrBadNodeCount
	}
	if n > MaxDenseNodes {
		return nil, fmt.Errorf("%w: %d exceeds the dense limit %d", ErrTooManyNodes, n, MaxDenseNodes)
	}

	return &DenseNetwork{
		n:        n,
		cfg:      newConfig(opts),
		capacity: make([]int64, n*n),
		flow:     make([]int64, n*n),
		marks:    make([]uint8, n*n),
		adj:      make([][]int, n),
	}, nil
}

// NodeCount implements Network.
func (d *DenseNetwork) NodeCount() int { return d.n }

// EdgeCount implements Network.
func (d *DenseNetwork) EdgeCount() int { return d.edges }

// RegisterEdge implements Network.
//
// Steps:
//  1. Validate endpoints and capacity.
//  2. Resolve the new capacity through the duplicate policy.
//  3. Store it and keep EdgeCount in step with zero/non-zero transitions.
//  4. Link to into adj[from] and from into adj[to], each at most once.
func (d *DenseNetwork) RegisterEdge(from, to int, capacity int64) error {
	// 1) validation
	if err := checkEndpoints(d.n, from, to, capacity); err != nil {
		return err
	}

	// 2) policy
	idx := from*d.n + to
	prev := d.capacity[idx]
	next, err := d.cfg.combine(from, to, prev, d.marks[idx]&markRegistered != 0, capacity, d.capacity[to*d.n+from])
	if err != nil {
		return err
	}

	// 3) store
	d.capacity[idx] = next
	d.marks[idx] |= markRegistered
	switch {
	case prev == 0 && next > 0:
		d.edges++
	case prev > 0 && next == 0:
		d.edges--
	}

	// 4) adjacency, loops excluded
	if from != to {
		d.link(from, to)
		d.link(to, from)
	}

	return nil
}

// link appends v to adj[u] unless it is already there.
func (d *DenseNetwork) link(u, v int) {
	idx := u*d.n + v
	if d.marks[idx]&markLinked != 0 {
		return
	}
	d.marks[idx] |= markLinked
	d.adj[u] = append(d.adj[u], v)
}

// Capacity implements Network.
func (d *DenseNetwork) Capacity(u, v int) int64 { return d.capacity[u*d.n+v] }

// Flow implements Network.
func (d *DenseNetwork) Flow(u, v int) int64 { return d.flow[u*d.n+v] }

// Residual implements Network.
func (d *DenseNetwork) Residual(u, v int) int64 {
	idx := u*d.n + v

	return d.capacity[idx] - d.flow[idx]
}

// Neighbors implements Network.
func (d *DenseNetwork) Neighbors(u int) []int { return d.adj[u] }

// Push implements Network.
func (d *DenseNetwork) Push(u, v int, delta int64) {
	d.flow[u*d.n+v] += delta
	d.flow[v*d.n+u] -= delta
}

// ForEachEdge implements Network. Rows are scanned in order, so the
// enumeration is row-major by construction.
func (d *DenseNetwork) ForEachEdge(fn func(from, to int, capacity, flow int64) bool) {
	var u, v int
	for u = 0; u < d.n; u++ {
		row := u * d.n
		for v = 0; v < d.n; v++ {
			if c := d.capacity[row+v]; c > 0 {
				if !fn(u, v, c, d.flow[row+v]) {
					return
				}
			}
		}
	}
}

// Reset implements Network.
func (d *DenseNetwork) Reset() {
	clear(d.flow)
}
