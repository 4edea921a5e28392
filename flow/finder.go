package flow

// FindPath runs a breadth-first search from source over arcs with positive
// residual capacity and reports whether sink was reached.
//
// The returned predecessor map has one slot per node: pred[v] is the node
// from which v was first discovered, -1 for the source and for unreached
// nodes. Because BFS expands by hop count, the path it encodes is a
// shortest (fewest-arc) augmenting path; ties are broken by adjacency order.
//
// source == sink is reachable trivially and yields an empty path.
// Out-of-range terminals are reported as not found.
//
// Complexity: O(V + E) time, O(V) memory.
func (s *Solver) FindPath(source, sink int) (pred []int, found bool) {
	n := s.net.NodeCount()
	if source < 0 || source >= n || sink < 0 || sink >= n {
		return nil, false
	}

	// fresh map per search; -1 marks "not reached"
	pred = make([]int, n)
	for i := range pred {
		pred[i] = -1
	}
	if source == sink {
		return pred, true
	}

	visited := make([]bool, n)
	visited[source] = true

	s.queue.Clear()
	s.queue.PushBack(source)
	for s.queue.Len() > 0 {
		u := s.queue.PopFront()
		for _, v := range s.net.Neighbors(u) {
			if visited[v] || s.net.Residual(u, v) <= 0 {
				continue
			}
			visited[v] = true
			pred[v] = u
			// the sink's predecessor chain is final once it is discovered
			if v == sink {
				return pred, true
			}
			s.queue.PushBack(v)
		}
	}

	return pred, false
}
