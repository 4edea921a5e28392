package flow_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/katalvlaran/netflow/network"
)

//
// Helpers
// // // // // // // // // //

// randomEdges samples each ordered pair u≠v with probability p and a
// capacity uniform in [0, maxCap].
func randomEdges(r *rand.Rand, n int, p float64, maxCap int64) []edge {
	var out []edge
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || r.Float64() >= p {
				continue
			}
			out = append(out, edge{from: u, to: v, capacity: r.Int63n(maxCap + 1)})
		}
	}

	return out
}

// snapshot copies the full flow matrix of net.
func snapshot(net network.Network) [][]int64 {
	n := net.NodeCount()
	out := make([][]int64, n)
	for u := range out {
		out[u] = make([]int64, n)
		for v := range out[u] {
			out[u][v] = net.Flow(u, v)
		}
	}

	return out
}

// assertConservation checks Σ flow into node == Σ flow out of node for every
// non-terminal node, counting only positive entries of the flow matrix.
func assertConservation(t *testing.T, net network.Network, source, sink int) {
	t.Helper()
	n := net.NodeCount()
	for x := 0; x < n; x++ {
		if x == source || x == sink {
			continue
		}
		var in, out int64
		for y := 0; y < n; y++ {
			if f := net.Flow(y, x); f > 0 {
				in += f
			}
			if f := net.Flow(x, y); f > 0 {
				out += f
			}
		}
		require.Equal(t, in, out, "conservation at node %d", x)
	}
}

// gonumCutCapacity rebuilds the residual graph as a gonum directed graph,
// finds the source side with gonum's BFS and sums the capacity of the
// original edges leaving it.
func gonumCutCapacity(net network.Network, source int) int64 {
	n := net.NodeCount()
	g := simple.NewDirectedGraph()
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && net.Residual(u, v) > 0 {
				g.SetEdge(g.NewEdge(simple.Node(u), simple.Node(v)))
			}
		}
	}

	side := make(map[int64]bool, n)
	bf := traverse.BreadthFirst{
		Visit: func(nd graph.Node) { side[nd.ID()] = true },
	}
	bf.Walk(g, simple.Node(source), nil)

	var capacity int64
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if side[int64(u)] && !side[int64(v)] {
				capacity += net.Capacity(u, v)
			}
		}
	}

	return capacity
}

// lineCounter counts newline-terminated writes.
type lineCounter struct {
	lines int
}

func (c *lineCounter) Write(p []byte) (int, error) {
	c.lines += bytes.Count(p, []byte{'\n'})

	return len(p), nil
}
