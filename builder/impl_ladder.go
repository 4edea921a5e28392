// SPDX-License-Identifier: MIT
// Package: netflow/builder
//
// impl_ladder.go - Ladder(rungs): two rails joined by bidirectional rungs.
//
// Layout for r rungs (2r+2 nodes):
//
//	      1 → 2 → … → r
//	    ↗ ↕   ↕       ↕ ↘
//	  0                   2r+1
//	    ↘ ↕   ↕       ↕ ↗
//	    r+1 → r+2 → … → 2r
//
// Top rail i is node 1+i, bottom rail i is node 1+r+i. The rungs create
// many long detours, which is what makes the shape a useful benchmark.

package builder

import "github.com/katalvlaran/netflow/edgelist"

const (
	methodLadder = "Ladder"
	minRungs     = 1
)

// Ladder returns a Constructor for a ladder with the given number of rungs.
func Ladder(rungs int) Constructor {
	return func(doc *edgelist.Document, cfg builderConfig) error {
		if err := validateMin(methodLadder, "rungs", rungs, minRungs); err != nil {
			return err
		}
		top := func(i int) int { return 1 + i }
		bottom := func(i int) int { return 1 + rungs + i }
		sink := 2*rungs + 1
		doc.Nodes = sink + 1

		doc.Add(0, top(0), cfg.capacity())
		doc.Add(0, bottom(0), cfg.capacity())
		for i := 0; i < rungs; i++ {
			doc.Add(top(i), bottom(i), cfg.capacity())
			doc.Add(bottom(i), top(i), cfg.capacity())
			if i+1 < rungs {
				doc.Add(top(i), top(i+1), cfg.capacity())
				doc.Add(bottom(i), bottom(i+1), cfg.capacity())
			}
		}
		doc.Add(top(rungs-1), sink, cfg.capacity())
		doc.Add(bottom(rungs-1), sink, cfg.capacity())

		return nil
	}
}
