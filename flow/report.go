package flow

import (
	"fmt"
	"sort"

	"github.com/gammazero/deque"

	"github.com/katalvlaran/netflow/network"
)

// ActiveEdges lists every edge with capacity > 0 and flow > 0 in row-major
// order. It only reads net.
//
// Complexity: O(V²) on the dense backend, O(E) on the sparse one.
func ActiveEdges(net network.Network) []EdgeFlow {
	var out []EdgeFlow
	net.ForEachEdge(func(from, to int, capacity, flow int64) bool {
		if flow > 0 {
			out = append(out, EdgeFlow{From: from, To: to, Flow: flow, Capacity: capacity})
		}
		return true
	})

	return out
}

// Cut is an s–t cut derived from a saturated residual network.
//   - Source:   nodes reachable from the source through positive residuals, ascending.
//   - Edges:    original edges leaving the Source side, row-major.
//   - Capacity: sum of Edges capacities; equals the maximum flow.
type Cut struct {
	Source   []int      `json:"source_side"`
	Edges    []EdgeFlow `json:"edges"`
	Capacity int64      `json:"capacity"`
}

// MinCut computes the cut induced by residual reachability from source.
// On a saturated network its Capacity equals the maximum flow.
//
// Complexity: O(V + E) for the search plus one ForEachEdge pass.
func MinCut(net network.Network, source int) (Cut, error) {
	n := net.NodeCount()
	if source < 0 || source >= n {
		return Cut{}, fmt.Errorf("%w: source %d with %d nodes", ErrNodeOutOfRange, source, n)
	}

	reach := Reachable(net, source)
	var cut Cut
	for v, ok := range reach {
		if ok {
			cut.Source = append(cut.Source, v)
		}
	}
	sort.Ints(cut.Source)

	net.ForEachEdge(func(from, to int, capacity, flow int64) bool {
		if reach[from] && !reach[to] {
			cut.Edges = append(cut.Edges, EdgeFlow{From: from, To: to, Flow: flow, Capacity: capacity})
			cut.Capacity += capacity
		}
		return true
	})

	return cut, nil
}

// Reachable marks every node reachable from source over arcs with positive
// residual capacity.
func Reachable(net network.Network, source int) []bool {
	seen := make([]bool, net.NodeCount())
	seen[source] = true

	var q deque.Deque[int]
	q.PushBack(source)
	for q.Len() > 0 {
		u := q.PopFront()
		for _, v := range net.Neighbors(u) {
			if !seen[v] && net.Residual(u, v) > 0 {
				seen[v] = true
				q.PushBack(v)
			}
		}
	}

	return seen
}
