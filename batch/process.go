package batch

import (
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/netflow/edgelist"
	"github.com/katalvlaran/netflow/flow"
	"github.com/katalvlaran/netflow/network"
)

// FileResult is the outcome of solving one file.
type FileResult struct {
	Path    string
	Nodes   int
	Edges   int
	Source  int
	Sink    int
	MaxFlow int64

	Augmentations int
	Traced        bool
	Trace         []flow.Step
	Active        []flow.EdgeFlow // edges with positive flow, row-major

	ParseTime time.Duration
	AlgoTime  time.Duration
	TotalTime time.Duration

	Err error
}

// Options controls how files are built and solved.
type Options struct {
	Backend network.Backend
	Policy  network.DuplicatePolicy
	Trace   bool

	// MaxNodes rejects files declaring more nodes; 0 leaves only the
	// network ceilings.
	MaxNodes int
	Logger   zerolog.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Auto backend, Overwrite duplicates, no trace and a
// silent logger.
func DefaultOptions() Options {
	return Options{
		Backend: network.Auto,
		Policy:  network.Overwrite,
		Logger:  zerolog.Nop(),
	}
}

// WithBackend selects the network backend; Auto picks per file.
func WithBackend(b network.Backend) Option {
	return func(o *Options) { o.Backend = b }
}

// WithDuplicatePolicy sets how repeated edges of one file combine.
func WithDuplicatePolicy(p network.DuplicatePolicy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithTrace records the augmenting paths of every solve.
func WithTrace(on bool) Option {
	return func(o *Options) { o.Trace = on }
}

// WithMaxNodes caps the node count a file may declare.
func WithMaxNodes(n int) Option {
	return func(o *Options) { o.MaxNodes = n }
}

// WithLogger routes per-file and per-augmentation events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// ProcessFile parses path, builds the network and solves it from node 0 to
// node Nodes-1. TotalTime is ParseTime + AlgoTime; building the network
// counts as parsing.
func ProcessFile(path string, opts ...Option) FileResult {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	res := FileResult{Path: path}

	start := time.Now()
	doc, err := edgelist.ParseFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	if err = doc.CheckNodeLimit(o.MaxNodes); err != nil {
		res.ParseTime = time.Since(start)
		res.Err = err
		return res
	}
	net, err := doc.Build(o.Backend, network.WithDuplicatePolicy(o.Policy))
	res.ParseTime = time.Since(start)
	if err != nil {
		res.Err = errors.Wrapf(err, "build %s", path)
		return res
	}

	res.Nodes = net.NodeCount()
	res.Edges = net.EdgeCount()
	res.Source, res.Sink = 0, res.Nodes-1

	start = time.Now()
	out, err := flow.EdmondsKarp(net, res.Source, res.Sink,
		flow.WithTrace(o.Trace),
		flow.WithLogger(o.Logger.With().Str("file", path).Logger()),
	)
	res.AlgoTime = time.Since(start)
	res.TotalTime = res.ParseTime + res.AlgoTime
	if err != nil {
		res.Err = errors.Wrapf(err, "solve %s", path)
		return res
	}

	res.MaxFlow = out.Total
	res.Augmentations = out.Augmentations
	res.Traced = o.Trace
	res.Trace = out.Trace
	res.Active = flow.ActiveEdges(net)

	return res
}
