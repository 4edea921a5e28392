// SPDX-License-Identifier: MIT
// Package: netflow/builder
//
// impl_parallel.go - Parallel(k, length): k vertex-disjoint source→sink paths.
//
// Layout: node 0 is the source, node k*length+1 the sink; path p owns the
// inner nodes 1+p*length … (p+1)*length in order. Paths are emitted one
// after another, so breadth-first search saturates them in index order.

package builder

import "github.com/katalvlaran/netflow/edgelist"

const (
	methodParallel = "Parallel"
	minPaths       = 1
	minPathLength  = 1
)

// Parallel returns a Constructor for k disjoint paths of length inner nodes.
func Parallel(k, length int) Constructor {
	return func(doc *edgelist.Document, cfg builderConfig) error {
		if err := validateMin(methodParallel, "paths", k, minPaths); err != nil {
			return err
		}
		if err := validateMin(methodParallel, "length", length, minPathLength); err != nil {
			return err
		}
		sink := k*length + 1
		doc.Nodes = sink + 1

		for p := 0; p < k; p++ {
			first := 1 + p*length
			doc.Add(0, first, cfg.capacity())
			for i := 0; i+1 < length; i++ {
				doc.Add(first+i, first+i+1, cfg.capacity())
			}
			doc.Add(first+length-1, sink, cfg.capacity())
		}

		return nil
	}
}
