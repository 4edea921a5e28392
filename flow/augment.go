package flow

import (
	"fmt"
	"math"
)

// Augment pushes the bottleneck capacity along the path described by pred
// (as produced by FindPath) and returns the applied Step. Step.Total is left
// zero; the orchestrator owns the running total.
//
// Steps:
//  1. Walk sink→source through pred, taking the minimum residual (walk).
//  2. For every arc (u,v) on the path: flow[u][v] += b, flow[v][u] -= b.
//
// Skew-symmetry and the capacity bound hold afterwards, and no residual goes
// negative, since b never exceeds any residual on the path.
// On error the network is left untouched.
//
// Complexity: O(path length).
func (s *Solver) Augment(source, sink int, pred []int) (Step, error) {
	path, bottleneck, err := s.walk(source, sink, pred)
	if err != nil {
		return Step{}, err
	}
	s.apply(path, bottleneck)

	return Step{Path: path, Bottleneck: bottleneck}, nil
}

// walk reconstructs the source→sink path encoded in pred and its bottleneck.
func (s *Solver) walk(source, sink int, pred []int) ([]int, int64, error) {
	if source == sink {
		return nil, 0, ErrSourceIsSink
	}
	n := s.net.NodeCount()
	if len(pred) != n {
		return nil, 0, fmt.Errorf("%w: %d slots for %d nodes", ErrBrokenPath, len(pred), n)
	}

	bottleneck := int64(math.MaxInt64)
	reversed := []int{sink}
	// a simple path has at most n-1 arcs; more means pred has a cycle
	for v, hops := sink, 0; v != source; hops++ {
		u := pred[v]
		if u < 0 || u >= n || hops >= n {
			return nil, 0, fmt.Errorf("%w: chain from %d stops at %d", ErrBrokenPath, sink, v)
		}
		r := s.net.Residual(u, v)
		if r <= 0 {
			return nil, 0, fmt.Errorf("%w: arc %d→%d has residual %d", ErrBrokenPath, u, v, r)
		}
		bottleneck = min(bottleneck, r)
		reversed = append(reversed, u)
		v = u
	}

	// reverse in place to get source→sink order
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	return reversed, bottleneck, nil
}

// apply pushes b along consecutive arcs of path.
func (s *Solver) apply(path []int, b int64) {
	for i := 0; i+1 < len(path); i++ {
		s.net.Push(path[i], path[i+1], b)
	}
}
