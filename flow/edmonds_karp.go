package flow

import (
	"fmt"
	"math"

	"github.com/gammazero/deque"

	"github.com/katalvlaran/netflow/network"
)

// Solver runs Edmonds–Karp over one network it exclusively owns.
// A Solver is not safe for concurrent use; build one per network.
type Solver struct {
	net   network.Network
	opts  Options
	queue deque.Deque[int]
}

// NewSolver binds a solver to net, applying opts over DefaultOptions.
func NewSolver(net network.Network, opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Solver{net: net, opts: o}
}

// Network returns the network the solver mutates.
func (s *Solver) Network() network.Network { return s.net }

// MaxFlow saturates the network from source to sink and returns the flow
// added by this call.
//
// The loop alternates Searching (FindPath) and Augmenting (walk + apply)
// until a search fails, which is the Saturated state. Calling MaxFlow again
// on a saturated network adds nothing and leaves the flow unchanged.
//
// Errors:
//   - ErrNodeOutOfRange if a terminal is not a node.
//   - ErrSourceIsSink   if source == sink.
//   - ErrFlowOverflow   if the total would exceed int64; the result then
//     carries the total reached before the offending path, which was not applied.
//
// Complexity: O(V · E²) time, O(V) extra memory per search.
func (s *Solver) MaxFlow(source, sink int) (Result, error) {
	// 1) validate terminals
	n := s.net.NodeCount()
	if source < 0 || source >= n || sink < 0 || sink >= n {
		return Result{}, fmt.Errorf("%w: source %d, sink %d with %d nodes", ErrNodeOutOfRange, source, sink, n)
	}
	if source == sink {
		return Result{}, fmt.Errorf("%w: %d", ErrSourceIsSink, source)
	}

	var res Result
	log := s.opts.Logger
	for {
		// 2) Searching
		s.opts.OnPhase(Searching)
		pred, found := s.FindPath(source, sink)
		if !found {
			break
		}

		// 3) Augmenting
		s.opts.OnPhase(Augmenting)
		path, bottleneck, err := s.walk(source, sink, pred)
		if err != nil {
			return res, err
		}
		if res.Total > math.MaxInt64-bottleneck {
			return res, fmt.Errorf("%w: %d + %d", ErrFlowOverflow, res.Total, bottleneck)
		}
		s.apply(path, bottleneck)

		res.Total += bottleneck
		res.Augmentations++
		if s.opts.Trace {
			res.Trace = append(res.Trace, Step{Path: path, Bottleneck: bottleneck, Total: res.Total})
		}
		log.Debug().
			Ints("path", path).
			Int64("bottleneck", bottleneck).
			Int64("total", res.Total).
			Msg("augmenting path")
	}

	// 4) Saturated
	s.opts.OnPhase(Saturated)
	log.Debug().
		Int64("total", res.Total).
		Int("augmentations", res.Augmentations).
		Msg("network saturated")

	return res, nil
}

// EdmondsKarp computes the maximum flow from source to sink in net in one
// call. It is shorthand for NewSolver(net, opts...).MaxFlow(source, sink).
func EdmondsKarp(net network.Network, source, sink int, opts ...Option) (Result, error) {
	return NewSolver(net, opts...).MaxFlow(source, sink)
}
