package batch

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/netflow/flow"
)

// Report renders results as text.
type Report struct {
	// VerboseLimit is the largest batch rendered in detail; bigger batches
	// get one summary line per file.
	VerboseLimit int
	// DetailNodeLimit is the largest network whose final flow distribution
	// is printed.
	DetailNodeLimit int
}

// DefaultReport matches the batch.verbose_limit and report.detail_node_limit
// defaults.
func DefaultReport() Report {
	return Report{VerboseLimit: 3, DetailNodeLimit: 30}
}

// Verbose reports whether a batch of n files is rendered in detail.
func (rp Report) Verbose(n int) bool {
	return n <= rp.VerboseLimit
}

// Render writes every result, detailed or summarized depending on the
// batch size.
func (rp Report) Render(w io.Writer, results []FileResult) error {
	verbose := rp.Verbose(len(results))
	for _, r := range results {
		var err error
		if verbose {
			err = rp.RenderDetailed(w, r)
		} else {
			err = RenderSummary(w, r)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// RenderDetailed writes the full report for one file: sizes, timings, the
// augmenting paths when traced and the final flow distribution of small
// networks.
func (rp Report) RenderDetailed(w io.Writer, r FileResult) error {
	p := &printer{w: w}
	p.line("")
	p.line("----------------------------------------")
	p.line("Processing file: %s", r.Path)
	if r.Err != nil && r.Nodes == 0 {
		p.line("Error: %v", r.Err)
		return p.err
	}
	p.line("Network loaded with %d nodes and %d edges", r.Nodes, r.Edges)
	p.line("Parsing time: %d ms", r.ParseTime.Milliseconds())
	p.line("Calculating maximum flow from node %d to node %d", r.Source, r.Sink)
	if r.Err != nil {
		p.line("Error: %v", r.Err)
		return p.err
	}
	if r.Traced {
		p.line("Edmonds-Karp Algorithm Steps:")
		for _, s := range r.Trace {
			p.line("%s", FormatStep(s))
		}
	}
	p.line("")
	p.line("Maximum Flow: %d", r.MaxFlow)
	p.line("Algorithm execution time: %d ms", r.AlgoTime.Milliseconds())
	p.line("Total time: %d ms", r.TotalTime.Milliseconds())
	if r.Nodes <= rp.DetailNodeLimit {
		p.line("")
		p.line("Final Flow Distribution:")
		for _, e := range r.Active {
			p.line("Edge (%d,%d): Flow = %d / Capacity = %d", e.From, e.To, e.Flow, e.Capacity)
		}
	}

	return p.err
}

// RenderSummary writes "path: N nodes, E edges, Max Flow = F, Time = T ms".
func RenderSummary(w io.Writer, r FileResult) error {
	if r.Err != nil {
		_, err := fmt.Fprintf(w, "%s: error: %v\n", r.Path, r.Err)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %d nodes, %d edges, Max Flow = %d, Time = %d ms\n",
		r.Path, r.Nodes, r.Edges, r.MaxFlow, r.TotalTime.Milliseconds())

	return err
}

// FormatStep renders one augmentation as
// "Path: 0 → 1 → 3, Flow added: 5, Total flow: 5".
func FormatStep(s flow.Step) string {
	nodes := make([]string, len(s.Path))
	for i, v := range s.Path {
		nodes[i] = strconv.Itoa(v)
	}

	return fmt.Sprintf("Path: %s, Flow added: %d, Total flow: %d", strings.Join(nodes, " → "), s.Bottleneck, s.Total)
}

// printer keeps the first write error so rendering code stays linear.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}
