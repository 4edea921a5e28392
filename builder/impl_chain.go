// SPDX-License-Identifier: MIT
// Package: netflow/builder
//
// impl_chain.go - Chain(n): a single path 0 → 1 → … → n-1.
//
// The max flow equals the smallest capacity on the path.

package builder

import "github.com/katalvlaran/netflow/edgelist"

const (
	methodChain      = "Chain"
	minChainVertices = 2
)

// Chain returns a Constructor for a directed path over n nodes.
func Chain(n int) Constructor {
	return func(doc *edgelist.Document, cfg builderConfig) error {
		if err := validateMin(methodChain, "n", n, minChainVertices); err != nil {
			return err
		}
		doc.Nodes = n
		for i := 0; i+1 < n; i++ {
			doc.Add(i, i+1, cfg.capacity())
		}

		return nil
	}
}
