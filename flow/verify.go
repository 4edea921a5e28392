package flow

import (
	"fmt"

	"github.com/katalvlaran/netflow/network"
)

// Verify checks the flow invariants of net and returns the first violation
// wrapped in ErrInvariant:
//
//  1. skew-symmetry:  Flow(u,v) == -Flow(v,u)
//  2. capacity bound: Flow(u,v) <= Capacity(u,v)
//  3. conservation:   net outflow is zero at every node except source and sink
//
// Flow only ever moves along adjacency pairs, so checking those is complete.
//
// Complexity: O(V + E) lookups.
func Verify(net network.Network, source, sink int) error {
	n := net.NodeCount()
	for u := 0; u < n; u++ {
		var out int64
		for _, v := range net.Neighbors(u) {
			f := net.Flow(u, v)
			if back := net.Flow(v, u); f != -back {
				return fmt.Errorf("%w: skew-symmetry %d→%d has %d, reverse %d", ErrInvariant, u, v, f, back)
			}
			if c := net.Capacity(u, v); f > c {
				return fmt.Errorf("%w: capacity %d→%d carries %d over %d", ErrInvariant, u, v, f, c)
			}
			out += f
		}
		if u != source && u != sink && out != 0 {
			return fmt.Errorf("%w: conservation at %d, net outflow %d", ErrInvariant, u, out)
		}
	}

	return nil
}
