// SPDX-License-Identifier: MIT
// Package: netflow/builder
//
// impl_bridge.go - Bridge(k): a chain of k diamond gadgets.
//
// Gadget j spans nodes a=3j … d=3j+3 (d is the next gadget's a):
//
//	    b
//	  ↗ ↓ ↘
//	a   ↓   d
//	  ↘ ↓ ↗
//	    c
//
// The four outer edges draw from the capacity generator; the cross edge
// b → c always has capacity BridgeCapacity. A search that follows the
// cross edge first augments by only that amount, which is the classic bad
// case for depth-first Ford-Fulkerson.

package builder

import "github.com/katalvlaran/netflow/edgelist"

const (
	methodBridge = "Bridge"
	minGadgets   = 1

	// BridgeCapacity is the capacity of every b → c cross edge.
	BridgeCapacity int64 = 1
)

// Bridge returns a Constructor for k chained diamond gadgets (3k+1 nodes).
func Bridge(k int) Constructor {
	return func(doc *edgelist.Document, cfg builderConfig) error {
		if err := validateMin(methodBridge, "gadgets", k, minGadgets); err != nil {
			return err
		}
		doc.Nodes = 3*k + 1

		for j := 0; j < k; j++ {
			a, b, c, d := 3*j, 3*j+1, 3*j+2, 3*j+3
			doc.Add(a, b, cfg.capacity())
			doc.Add(a, c, cfg.capacity())
			doc.Add(b, c, BridgeCapacity)
			doc.Add(b, d, cfg.capacity())
			doc.Add(c, d, cfg.capacity())
		}

		return nil
	}
}
