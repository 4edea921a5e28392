package flow_test

import (
	"fmt"

	"github.com/katalvlaran/netflow/flow"
	"github.com/katalvlaran/netflow/network"
)

// ExampleEdmondsKarp_parallel computes the flow of two disjoint routes.
//
//	0→1(10)→3
//	0→2(10)→3
func ExampleEdmondsKarp_parallel() {
	net, _ := network.NewDense(4)
	_ = net.RegisterEdge(0, 1, 10)
	_ = net.RegisterEdge(0, 2, 10)
	_ = net.RegisterEdge(1, 3, 10)
	_ = net.RegisterEdge(2, 3, 10)

	res, _ := flow.EdmondsKarp(net, 0, 3)
	fmt.Println(res.Total)
	// Output:
	// 20
}

// ExampleEdmondsKarp_trace prints every augmentation recorded in the trace.
func ExampleEdmondsKarp_trace() {
	net, _ := network.NewSparse(4)
	_ = net.RegisterEdge(0, 1, 3)
	_ = net.RegisterEdge(0, 2, 2)
	_ = net.RegisterEdge(1, 2, 5)
	_ = net.RegisterEdge(1, 3, 2)
	_ = net.RegisterEdge(2, 3, 3)

	res, _ := flow.EdmondsKarp(net, 0, 3, flow.WithTrace(true))
	for _, st := range res.Trace {
		fmt.Printf("path %v: +%d = %d\n", st.Path, st.Bottleneck, st.Total)
	}
	// Output:
	// path [0 1 3]: +2 = 2
	// path [0 2 3]: +2 = 4
	// path [0 1 2 3]: +1 = 5
}

// ExampleActiveEdges lists the final flow distribution.
func ExampleActiveEdges() {
	net, _ := network.NewDense(4)
	_ = net.RegisterEdge(0, 1, 10)
	_ = net.RegisterEdge(1, 2, 1)
	_ = net.RegisterEdge(2, 3, 10)

	_, _ = flow.EdmondsKarp(net, 0, 3)
	for _, e := range flow.ActiveEdges(net) {
		fmt.Printf("Edge (%d,%d): Flow = %d / Capacity = %d\n", e.From, e.To, e.Flow, e.Capacity)
	}
	// Output:
	// Edge (0,1): Flow = 1 / Capacity = 10
	// Edge (1,2): Flow = 1 / Capacity = 1
	// Edge (2,3): Flow = 1 / Capacity = 10
}

// ExampleMinCut shows max-flow/min-cut duality.
func ExampleMinCut() {
	net, _ := network.NewDense(4)
	_ = net.RegisterEdge(0, 1, 10)
	_ = net.RegisterEdge(1, 2, 1)
	_ = net.RegisterEdge(2, 3, 10)

	res, _ := flow.EdmondsKarp(net, 0, 3)
	cut, _ := flow.MinCut(net, 0)
	fmt.Println(res.Total, cut.Capacity, cut.Source)
	// Output:
	// 1 1 [0 1]
}
