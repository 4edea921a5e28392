// Package network holds the residual network that the flow package
// saturates: per-pair capacity, skew-symmetric flow, and an adjacency
// structure that can be walked in both directions.
//
// Two interchangeable backends implement the Network interface:
//
//   - DenseNetwork - row-major n×n matrices. O(1) lookups, O(n²) memory.
//     The natural choice for small or dense graphs.
//   - SparseNetwork - paired arcs (reverse of arc id is id^1) indexed by an
//     ordered red-black tree. O(log E) lookups, O(V + E) memory.
//
// Choose (and New with Auto) selects one from the node and edge counts.
//
// # Registration
//
//	net, _ := network.NewDense(4)
//	_ = net.RegisterEdge(0, 1, 10) // capacity 0→1, adjacency 0↔1
//
// RegisterEdge validates its arguments and returns ErrNodeOutOfRange or
// ErrNegativeCapacity rather than corrupting state. Registering the same
// ordered pair twice is governed by DuplicatePolicy:
//
//	Overwrite (default) - the last capacity wins
//	Sum - parallel edges merge
//	Reject - ErrDuplicateEdge
//
// Capacities are also bounded so that Capacity(u,v)+Capacity(v,u) fits in
// an int64; the residual of any arc therefore never overflows.
//
// # Ownership
//
// A Network is mutated in place by flow augmentations and is not safe for
// concurrent use. Build one per computation.
package network
