// Package edgelist reads and writes the plain-text network format:
//
//	4          # node count
//	0 1 10     # from to capacity
//	0 2 10
//	1 3 10
//	2 3 10
//
// Tokens are whitespace separated integers; '#' starts a comment that runs
// to the end of the line. Parsing produces a Document, which is validated
// before it can be built into a network.Network.
package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/katalvlaran/netflow/network"
)

// Errors
var (
	ErrSyntax           = errors.New("edgelist: syntax error")
	ErrBadNodeCount     = errors.New("edgelist: node count must be >= 1")
	ErrTooManyNodes     = errors.New("edgelist: node count above limit")
	ErrNodeOutOfRange   = errors.New("edgelist: node index out of range")
	ErrNegativeCapacity = errors.New("edgelist: negative capacity")
)

// Parse reads a document from r and validates it. name is used in error
// positions only.
func Parse(name string, r io.Reader) (*Document, error) {
	doc, err := parseDocument.Parse(name, r)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}
	if err = doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(name, s string) (*Document, error) {
	doc, err := parseDocument.ParseString(name, s)
	if err != nil {
		return nil, errors.Wrap(ErrSyntax, err.Error())
	}
	if err = doc.Validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

// ParseFile opens and parses the file at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "edgelist: open %s", path)
	}
	defer f.Close()

	return Parse(path, bufio.NewReader(f))
}

// Validate checks the node count, every index and every capacity, so that
// building the network cannot fail on a validated document. The node count
// is capped at network.MaxNodes; CheckNodeLimit applies a tighter bound.
func (d *Document) Validate() error {
	if d.Nodes < 1 {
		return errors.Wrapf(ErrBadNodeCount, "%s: got %d", d.Pos, d.Nodes)
	}
	if err := d.CheckNodeLimit(network.MaxNodes); err != nil {
		return err
	}
	for _, t := range d.Edges {
		if t.From < 0 || t.From >= d.Nodes || t.To < 0 || t.To >= d.Nodes {
			return errors.Wrapf(ErrNodeOutOfRange, "%s: edge %d→%d with %d nodes", t.Pos, t.From, t.To, d.Nodes)
		}
		if t.Capacity < 0 {
			return errors.Wrapf(ErrNegativeCapacity, "%s: edge %d→%d capacity %d", t.Pos, t.From, t.To, t.Capacity)
		}
	}

	return nil
}

// CheckNodeLimit fails with ErrTooManyNodes when the document declares more
// than max nodes. max <= 0 disables the check.
func (d *Document) CheckNodeLimit(max int) error {
	if max > 0 && d.Nodes > max {
		return errors.Wrapf(ErrTooManyNodes, "%s: %d nodes, limit %d", d.Pos, d.Nodes, max)
	}

	return nil
}

// Build registers every triple, in order, into a fresh network of backend b.
// Auto is resolved from the node and triple counts.
func (d *Document) Build(b network.Backend, opts ...network.Option) (network.Network, error) {
	net, err := network.New(b, d.Nodes, len(d.Edges), opts...)
	if err != nil {
		return nil, err
	}
	for _, t := range d.Edges {
		if err = net.RegisterEdge(t.From, t.To, t.Capacity); err != nil {
			return nil, errors.Wrapf(err, "%s", t.Pos)
		}
	}

	return net, nil
}

// Add appends a triple; used by generators.
func (d *Document) Add(from, to int, capacity int64) {
	d.Edges = append(d.Edges, &Triple{From: from, To: to, Capacity: capacity})
}

// Write renders d in the text format Parse accepts.
func Write(w io.Writer, d *Document) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, d.Nodes); err != nil {
		return err
	}
	for _, t := range d.Edges {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", t.From, t.To, t.Capacity); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteFile renders d into the file at path, truncating it.
func WriteFile(path string, d *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "edgelist: create %s", path)
	}
	if err = Write(f, d); err != nil {
		f.Close()
		return errors.Wrapf(err, "edgelist: write %s", path)
	}

	return f.Close()
}
