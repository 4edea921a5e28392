// SPDX-License-Identifier: MIT
//
// File: sparse.go
// Role: residual network for large sparse graphs.
// Every node pair touched by RegisterEdge owns two arcs stored side by side,
// so the reverse of arc id is always id^1. An ordered red-black tree maps
// the pair key u*n+v to its arc id; walking the tree in key order is the
// row-major enumeration the reporter needs.
// Complexity: O(V + E) memory; O(log E) Capacity/Flow/Residual/Push.

package network

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// arc is one direction of a node pair.
type arc struct {
	to         int
	capacity   int64
	flow       int64
	registered bool
}

// SparseNetwork is a Network stored as paired arcs.
type SparseNetwork struct {
	n     int
	cfg   config
	arcs  []arc
	index *redblacktree.Tree // int64 pair key -> arc id
	adj   [][]int
	edges int
}

var _ Network = (*SparseNetwork)(nil)

// NewSparse allocates an empty sparse network with n nodes, 1 ≤ n ≤ MaxNodes.
// Complexity: O(n).
func NewSparse(n int, opts ...Option) (*SparseNetwork, error) {
	if n < 1 {
		return nil, ErrBadNodeCount
	}
	if n > MaxNodes {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyNodes, n, MaxNodes)
	}

	return &SparseNetwork{
		n:     n,
		cfg:   newConfig(opts),
		index: redblacktree.NewWith(utils.Int64Comparator),
		adj:   make([][]int, n),
	}, nil
}

func (s *SparseNetwork) key(u, v int) int64 {
	return int64(u)*int64(s.n) + int64(v)
}

// lookup returns the arc id of u→v.
func (s *SparseNetwork) lookup(u, v int) (int, bool) {
	id, ok := s.index.Get(s.key(u, v))
	if !ok {
		return 0, false
	}

	return id.(int), true
}

// NodeCount implements Network.
func (s *SparseNetwork) NodeCount() int { return s.n }

// EdgeCount implements Network.
func (s *SparseNetwork) EdgeCount() int { return s.edges }

// RegisterEdge implements Network. The first registration touching a pair
// allocates both of its arcs and links both endpoints; later ones only
// update capacity.
func (s *SparseNetwork) RegisterEdge(from, to int, capacity int64) error {
	if err := checkEndpoints(s.n, from, to, capacity); err != nil {
		return err
	}

	id, ok := s.lookup(from, to)
	if !ok {
		id = s.allocate(from, to)
	}

	var reverse int64
	if from != to {
		reverse = s.arcs[id^1].capacity
	}
	prev := s.arcs[id].capacity
	next, err := s.cfg.combine(from, to, prev, s.arcs[id].registered, capacity, reverse)
	if err != nil {
		return err
	}

	s.arcs[id].capacity = next
	s.arcs[id].registered = true
	switch {
	case prev == 0 && next > 0:
		s.edges++
	case prev > 0 && next == 0:
		s.edges--
	}

	return nil
}

// allocate creates the arc pair for {from,to} and returns the id of from→to.
// A self-loop gets a pair too, to keep ids even-aligned, but only its first
// arc is indexed and neither enters the adjacency.
func (s *SparseNetwork) allocate(from, to int) int {
	id := len(s.arcs)
	s.arcs = append(s.arcs, arc{to: to}, arc{to: from})
	s.index.Put(s.key(from, to), id)
	if from == to {
		return id
	}
	s.index.Put(s.key(to, from), id+1)
	s.adj[from] = append(s.adj[from], to)
	s.adj[to] = append(s.adj[to], from)

	return id
}

// Capacity implements Network.
func (s *SparseNetwork) Capacity(u, v int) int64 {
	if id, ok := s.lookup(u, v); ok {
		return s.arcs[id].capacity
	}

	return 0
}

// Flow implements Network.
func (s *SparseNetwork) Flow(u, v int) int64 {
	if id, ok := s.lookup(u, v); ok {
		return s.arcs[id].flow
	}

	return 0
}

// Residual implements Network.
func (s *SparseNetwork) Residual(u, v int) int64 {
	if id, ok := s.lookup(u, v); ok {
		return s.arcs[id].capacity - s.arcs[id].flow
	}

	return 0
}

// Neighbors implements Network.
func (s *SparseNetwork) Neighbors(u int) []int { return s.adj[u] }

// Push implements Network. Pushing across a pair that was never registered
// is a caller bug and panics.
func (s *SparseNetwork) Push(u, v int, delta int64) {
	id, ok := s.lookup(u, v)
	if !ok || u == v {
		panic(fmt.Sprintf("network: push on unknown pair %d→%d", u, v))
	}
	s.arcs[id].flow += delta
	s.arcs[id^1].flow -= delta
}

// ForEachEdge implements Network.
func (s *SparseNetwork) ForEachEdge(fn func(from, to int, capacity, flow int64) bool) {
	it := s.index.Iterator()
	for it.Next() {
		a := s.arcs[it.Value().(int)]
		if a.capacity <= 0 {
			continue
		}
		k := it.Key().(int64)
		if !fn(int(k/int64(s.n)), a.to, a.capacity, a.flow) {
			return
		}
	}
}

// Reset implements Network.
func (s *SparseNetwork) Reset() {
	for i := range s.arcs {
		s.arcs[i].flow = 0
	}
}
