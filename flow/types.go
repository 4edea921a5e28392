package flow

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by the solver and its diagnostics.
var (
	// ErrSourceIsSink is returned when source and sink name the same node;
	// the flow between a node and itself is not defined.
	ErrSourceIsSink = errors.New("flow: source and sink are the same node")

	// ErrNodeOutOfRange is returned when source or sink is not a node of the network.
	ErrNodeOutOfRange = errors.New("flow: terminal out of range")

	// ErrBrokenPath is returned by Augment when the predecessor map does not
	// describe a source→sink path of positive residual capacity.
	ErrBrokenPath = errors.New("flow: predecessor map is not an augmenting path")

	// ErrFlowOverflow aborts a computation whose total would exceed int64.
	// The offending augmentation is not applied.
	ErrFlowOverflow = errors.New("flow: total flow overflows int64")

	// ErrInvariant is wrapped by Verify for every detected violation.
	ErrInvariant = errors.New("flow: invariant violated")
)

// Phase is a state of the Edmonds–Karp loop.
type Phase int

const (
	// Searching: a BFS for an augmenting path is running.
	Searching Phase = iota
	// Augmenting: a path was found and flow is being pushed along it.
	Augmenting
	// Saturated: no augmenting path remains; terminal.
	Saturated
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Searching:
		return "searching"
	case Augmenting:
		return "augmenting"
	case Saturated:
		return "saturated"
	}

	return fmt.Sprintf("Phase(%d)", int(p))
}

// Step records one augmentation: the nodes of the path from source to sink,
// the bottleneck pushed along it and the running total afterwards.
type Step struct {
	Path       []int `json:"path"`
	Bottleneck int64 `json:"bottleneck"`
	Total      int64 `json:"total"`
}

// Result is the outcome of one MaxFlow call.
//   - Total: flow added by this call.
//   - Augmentations: number of augmenting paths applied.
//   - Trace: one Step per augmentation, only when tracing is enabled.
type Result struct {
	Total         int64  `json:"max_flow"`
	Augmentations int    `json:"augmentations"`
	Trace         []Step `json:"trace,omitempty"`
}

// EdgeFlow is a read-only view of one edge with its flow.
type EdgeFlow struct {
	From     int   `json:"from"`
	To       int   `json:"to"`
	Flow     int64 `json:"flow"`
	Capacity int64 `json:"capacity"`
}

// Options tunes a Solver.
type Options struct {
	// Trace records every augmentation in Result.Trace.
	Trace bool

	// Logger receives one debug event per augmentation. Defaults to a
	// disabled logger.
	Logger zerolog.Logger

	// OnPhase is called on every state transition of the loop.
	OnPhase func(Phase)
}

// Option configures a Solver via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with tracing off, a no-op logger and a
// no-op phase hook.
func DefaultOptions() Options {
	return Options{
		Trace:   false,
		Logger:  zerolog.Nop(),
		OnPhase: func(Phase) {},
	}
}

// WithTrace toggles recording of Result.Trace.
func WithTrace(on bool) Option {
	return func(o *Options) {
		o.Trace = on
	}
}

// WithLogger routes per-augmentation debug events to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnPhase registers a hook for loop state transitions.
func WithOnPhase(fn func(Phase)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}
