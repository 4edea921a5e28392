// Package flow computes maximum flows on a network.Network with the
// Edmonds–Karp method: Ford–Fulkerson with breadth-first selection of the
// shortest (fewest-arc) augmenting path.
//
// The computation is split into the pieces it is made of:
//
//   - FindPath - BFS over arcs with positive residual capacity, producing
//     a predecessor map. O(V + E).
//   - Augment - bottleneck of the path in the predecessor map, then
//     flow[u][v] += b, flow[v][u] -= b along it. O(path).
//   - MaxFlow - Searching → Augmenting → … → Saturated. O(V · E²).
//   - ActiveEdges, MinCut, Reachable, Verify - read-only diagnostics for a
//     network after (or during) a computation.
//
// # API
//
//	net, _ := network.NewDense(4)
//	_ = net.RegisterEdge(0, 1, 10)
//	...
//	res, err := flow.EdmondsKarp(net, 0, 3, flow.WithTrace(true))
//
// Result.Total is the flow added by the call; with WithTrace every
// augmentation is recorded as a Step (path, bottleneck, running total), so
// callers decide how to present progress instead of the algorithm printing.
// WithLogger sends the same events to a zerolog.Logger at debug level.
//
// # Errors
//
//	ErrNodeOutOfRange - source or sink outside the network.
//	ErrSourceIsSink   - source == sink; rejected rather than answered with
//	                    an arbitrary value.
//	ErrFlowOverflow   - the total would not fit in int64; the offending
//	                    augmentation is not applied.
//	ErrBrokenPath     - Augment was handed a map that is not a valid path.
//	ErrInvariant      - wrapped by Verify.
//
// "No augmenting path" is not an error: it is how MaxFlow terminates.
//
// # Concurrency
//
// A Solver exclusively owns its network for the duration of MaxFlow and is
// strictly sequential: each augmentation changes the residual graph the next
// search observes. Independent networks may be solved in parallel.
package flow
