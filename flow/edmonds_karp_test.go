package flow_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/netflow/flow"
	"github.com/katalvlaran/netflow/network"
)

// edge is a registration triple used by fixtures.
type edge struct {
	from, to int
	capacity int64
}

// EdmondsKarpSuite groups Edmonds–Karp tests for one backend.
type EdmondsKarpSuite struct {
	suite.Suite
	backend network.Backend
}

func (s *EdmondsKarpSuite) build(n int, edges ...edge) network.Network {
	net, err := network.New(s.backend, n, len(edges))
	require.NoError(s.T(), err)
	for _, e := range edges {
		require.NoError(s.T(), net.RegisterEdge(e.from, e.to, e.capacity))
	}

	return net
}

// TestParallelPaths: two disjoint routes of 10 => 20.
func (s *EdmondsKarpSuite) TestParallelPaths() {
	net := s.build(4, edge{0, 1, 10}, edge{0, 2, 10}, edge{1, 3, 10}, edge{2, 3, 10})

	res, err := flow.EdmondsKarp(net, 0, 3, flow.WithTrace(true))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(20), res.Total)
	require.Equal(s.T(), 2, res.Augmentations)
	require.Equal(s.T(), []flow.Step{
		{Path: []int{0, 1, 3}, Bottleneck: 10, Total: 10},
		{Path: []int{0, 2, 3}, Bottleneck: 10, Total: 20},
	}, res.Trace)
	require.NoError(s.T(), flow.Verify(net, 0, 3))
}

// TestSingleEdge: 0→1 (5) => 5.
func (s *EdmondsKarpSuite) TestSingleEdge() {
	net := s.build(2, edge{0, 1, 5})

	res, err := flow.EdmondsKarp(net, 0, 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), res.Total)
	require.Nil(s.T(), res.Trace, "trace is off by default")
	require.Equal(s.T(), int64(0), net.Residual(0, 1), "forward exhausted")
	require.Equal(s.T(), int64(5), net.Residual(1, 0), "reverse carries the flow")
}

// TestDisconnected: no edges => 0 and an empty trace.
func (s *EdmondsKarpSuite) TestDisconnected() {
	net := s.build(2)

	res, err := flow.EdmondsKarp(net, 0, 1, flow.WithTrace(true))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), res.Total)
	require.Empty(s.T(), res.Trace)
	require.Empty(s.T(), flow.ActiveEdges(net))
}

// TestBottleneckChain: 10 → 1 → 10 => 1.
func (s *EdmondsKarpSuite) TestBottleneckChain() {
	net := s.build(4, edge{0, 1, 10}, edge{1, 2, 1}, edge{2, 3, 10})

	res, err := flow.EdmondsKarp(net, 0, 3, flow.WithTrace(true))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1), res.Total)
	require.Equal(s.T(), []flow.Step{{Path: []int{0, 1, 2, 3}, Bottleneck: 1, Total: 1}}, res.Trace)
}

// TestPushBackThroughReverse needs the residual of a used arc to reach optimum.
func (s *EdmondsKarpSuite) TestPushBackThroughReverse() {
	// BFS takes 0-1-2-5 first; the second path 0-3-2-1-4-5 cancels the
	// flow on 1→2 through its reverse.
	net := s.build(6,
		edge{0, 1, 1}, edge{1, 2, 1}, edge{2, 5, 1},
		edge{0, 3, 1}, edge{3, 2, 1}, edge{1, 4, 1}, edge{4, 5, 1},
	)

	res, err := flow.EdmondsKarp(net, 0, 5, flow.WithTrace(true))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.Total)
	require.Equal(s.T(), []int{0, 3, 2, 1, 4, 5}, res.Trace[1].Path)
	require.Equal(s.T(), int64(0), net.Flow(1, 2), "cancelled")
	require.NoError(s.T(), flow.Verify(net, 0, 5))

	cut, err := flow.MinCut(net, 0)
	require.NoError(s.T(), err)
	require.Equal(s.T(), res.Total, cut.Capacity)
}

// TestReinvocationIsIdempotent: a saturated network yields no more flow.
func (s *EdmondsKarpSuite) TestReinvocationIsIdempotent() {
	net := s.build(4, edge{0, 1, 3}, edge{0, 2, 2}, edge{1, 2, 5}, edge{1, 3, 2}, edge{2, 3, 3})
	solver := flow.NewSolver(net, flow.WithTrace(true))

	first, err := solver.MaxFlow(0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), first.Total)
	before := snapshot(net)

	again, err := solver.MaxFlow(0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), again.Total)
	require.Empty(s.T(), again.Trace)
	require.Equal(s.T(), before, snapshot(net))
}

// TestSourceIsSink is rejected explicitly.
func (s *EdmondsKarpSuite) TestSourceIsSink() {
	net := s.build(2, edge{0, 1, 5})

	_, err := flow.EdmondsKarp(net, 1, 1)
	require.ErrorIs(s.T(), err, flow.ErrSourceIsSink)
	require.Equal(s.T(), int64(0), net.Flow(0, 1))
}

// TestTerminalOutOfRange is rejected explicitly.
func (s *EdmondsKarpSuite) TestTerminalOutOfRange() {
	net := s.build(2, edge{0, 1, 5})

	_, err := flow.EdmondsKarp(net, 0, 2)
	require.ErrorIs(s.T(), err, flow.ErrNodeOutOfRange)
	_, err = flow.EdmondsKarp(net, -1, 1)
	require.ErrorIs(s.T(), err, flow.ErrNodeOutOfRange)
}

// TestOverflowAborts: two full-range routes cannot be summed in int64.
func (s *EdmondsKarpSuite) TestOverflowAborts() {
	net := s.build(4,
		edge{0, 1, math.MaxInt64}, edge{1, 3, math.MaxInt64},
		edge{0, 2, 10}, edge{2, 3, 10},
	)

	res, err := flow.EdmondsKarp(net, 0, 3)
	require.ErrorIs(s.T(), err, flow.ErrFlowOverflow)
	require.Equal(s.T(), int64(math.MaxInt64), res.Total)
	require.Equal(s.T(), int64(0), net.Flow(0, 2), "offending path is not applied")
	require.NoError(s.T(), flow.Verify(net, 0, 3))
}

// TestPhases follows the state machine through one augmentation.
func (s *EdmondsKarpSuite) TestPhases() {
	net := s.build(2, edge{0, 1, 5})

	var phases []flow.Phase
	_, err := flow.EdmondsKarp(net, 0, 1, flow.WithOnPhase(func(p flow.Phase) {
		phases = append(phases, p)
	}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []flow.Phase{flow.Searching, flow.Augmenting, flow.Searching, flow.Saturated}, phases)
	require.Equal(s.T(), "saturated", flow.Saturated.String())
}

// TestActiveEdgesRowMajor lists only edges carrying flow.
func (s *EdmondsKarpSuite) TestActiveEdgesRowMajor() {
	net := s.build(4, edge{2, 3, 10}, edge{0, 2, 4}, edge{0, 1, 10}, edge{1, 3, 3}, edge{3, 0, 7})

	_, err := flow.EdmondsKarp(net, 0, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []flow.EdgeFlow{
		{From: 0, To: 1, Flow: 3, Capacity: 10},
		{From: 0, To: 2, Flow: 4, Capacity: 4},
		{From: 1, To: 3, Flow: 3, Capacity: 3},
		{From: 2, To: 3, Flow: 4, Capacity: 10},
	}, flow.ActiveEdges(net))
}

// TestLoggerReceivesEvents checks the debug stream.
func (s *EdmondsKarpSuite) TestLoggerReceivesEvents() {
	net := s.build(2, edge{0, 1, 5})

	var sink lineCounter
	logger := zerolog.New(&sink).Level(zerolog.DebugLevel)
	_, err := flow.EdmondsKarp(net, 0, 1, flow.WithLogger(logger))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, sink.lines, "one augmentation event plus the saturation event")
}

// TestRandomNetworksSatisfyInvariants checks every testable property on
// seeded random networks.
func (s *EdmondsKarpSuite) TestRandomNetworksSatisfyInvariants() {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 60; round++ {
		n := 2 + r.Intn(11)
		edges := randomEdges(r, n, 0.35, 20)
		net := s.build(n, edges...)
		sink := n - 1

		res, err := flow.EdmondsKarp(net, 0, sink, flow.WithTrace(true))
		require.NoError(s.T(), err)
		require.NoError(s.T(), flow.Verify(net, 0, sink), "round %d", round)
		assertConservation(s.T(), net, 0, sink)

		// totals never decrease
		var prev int64
		for _, st := range res.Trace {
			require.Greater(s.T(), st.Bottleneck, int64(0))
			require.GreaterOrEqual(s.T(), st.Total, prev)
			prev = st.Total
		}

		// duality, with the cut side found independently
		require.Equal(s.T(), res.Total, gonumCutCapacity(net, 0), "round %d", round)
		cut, err := flow.MinCut(net, 0)
		require.NoError(s.T(), err)
		require.Equal(s.T(), res.Total, cut.Capacity, "round %d", round)
		require.NotContains(s.T(), cut.Source, sink)
	}
}

func TestEdmondsKarpDense(t *testing.T) {
	suite.Run(t, &EdmondsKarpSuite{backend: network.Dense})
}

func TestEdmondsKarpSparse(t *testing.T) {
	suite.Run(t, &EdmondsKarpSuite{backend: network.Sparse})
}

// TestBackendsAgree: identical registrations give identical traces.
func TestBackendsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for round := 0; round < 40; round++ {
		n := 2 + r.Intn(14)
		edges := randomEdges(r, n, 0.3, 9)

		var traces [2]flow.Result
		for i, b := range []network.Backend{network.Dense, network.Sparse} {
			net, err := network.New(b, n, len(edges))
			require.NoError(t, err)
			for _, e := range edges {
				require.NoError(t, net.RegisterEdge(e.from, e.to, e.capacity))
			}
			traces[i], err = flow.EdmondsKarp(net, 0, n-1, flow.WithTrace(true))
			require.NoError(t, err)
		}
		require.Equal(t, traces[0], traces[1], "round %d", round)
	}
}

func TestAugmentRejectsBrokenPath(t *testing.T) {
	net, err := network.NewDense(3)
	require.NoError(t, err)
	require.NoError(t, net.RegisterEdge(0, 1, 2))
	solver := flow.NewSolver(net)

	// 2 was never reached
	_, err = solver.Augment(0, 2, []int{-1, 0, -1})
	require.True(t, errors.Is(err, flow.ErrBrokenPath))

	// 1→2 has no residual
	_, err = solver.Augment(0, 2, []int{-1, 0, 1})
	require.ErrorIs(t, err, flow.ErrBrokenPath)

	// cyclic map
	_, err = solver.Augment(0, 2, []int{-1, 2, 1})
	require.ErrorIs(t, err, flow.ErrBrokenPath)

	_, err = solver.Augment(1, 1, []int{-1, -1, -1})
	require.ErrorIs(t, err, flow.ErrSourceIsSink)
	require.Equal(t, int64(0), net.Flow(0, 1), "nothing applied on error")
}

func TestFindPathAndAugment(t *testing.T) {
	net, err := network.NewDense(4)
	require.NoError(t, err)
	for _, e := range []edge{{0, 1, 4}, {1, 3, 2}, {0, 2, 1}, {2, 3, 9}} {
		require.NoError(t, net.RegisterEdge(e.from, e.to, e.capacity))
	}
	solver := flow.NewSolver(net)

	pred, ok := solver.FindPath(0, 3)
	require.True(t, ok)
	require.Equal(t, []int{-1, 0, 0, 1}, pred)

	step, err := solver.Augment(0, 3, pred)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3}, step.Path)
	require.Equal(t, int64(2), step.Bottleneck)
	require.Equal(t, int64(2), net.Flow(1, 3))
	require.Equal(t, int64(-2), net.Flow(3, 1))

	pred, ok = solver.FindPath(0, 0)
	require.True(t, ok, "source reaches itself trivially")
	require.Equal(t, []int{-1, -1, -1, -1}, pred)

	_, ok = solver.FindPath(0, 9)
	require.False(t, ok)
}

func TestVerifyDetectsViolations(t *testing.T) {
	net, err := network.NewDense(3)
	require.NoError(t, err)
	require.NoError(t, net.RegisterEdge(0, 1, 2))
	require.NoError(t, net.RegisterEdge(1, 2, 2))

	net.Push(0, 1, 3)
	require.ErrorIs(t, flow.Verify(net, 0, 2), flow.ErrInvariant, "over capacity")

	net.Reset()
	net.Push(0, 1, 1)
	require.ErrorIs(t, flow.Verify(net, 0, 2), flow.ErrInvariant, "node 1 keeps one unit")
	net.Push(1, 2, 1)
	require.NoError(t, flow.Verify(net, 0, 2))
}

func TestMinCutOutOfRange(t *testing.T) {
	net, err := network.NewSparse(2)
	require.NoError(t, err)
	_, err = flow.MinCut(net, 5)
	require.ErrorIs(t, err, flow.ErrNodeOutOfRange)
}
