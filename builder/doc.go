// SPDX-License-Identifier: MIT
// Package: netflow/builder
//
// Package builder generates flow networks as edge-list documents.
//
// Every constructor numbers its nodes so that the source is node 0 and the
// sink is the highest index, matching the convention of the batch runner:
//
//	doc, err := builder.Build(builder.Ladder(50), builder.WithUniformCapacity(1, 100), builder.WithSeed(7))
//	if err != nil { ... }
//	_ = edgelist.WriteFile("ladder_50.txt", doc)
//
// Shapes:
//
//	Chain(n)              0 → 1 → … → n-1
//	Parallel(k, length)   k disjoint paths of `length` inner nodes
//	Ladder(rungs)         two rails joined by rungs in both directions
//	Bridge(k)             k diamond gadgets with a unit cross edge
//	RandomSparse(n, p)    each ordered pair with probability p
//
// Ladders and bridges are the shapes that punish a depth-first path search
// and are used as benchmark inputs.
//
// Determinism: for a fixed option list (and seed) constructors emit the same
// triples in the same order.
package builder
