// Package netflow computes maximum flows in directed capacity networks with
// the Edmonds–Karp algorithm, and ships the tooling around it: an edge-list
// file format, network generators, a batch runner with CSV reports, a CLI
// and an HTTP API.
//
// 🚀 What is inside?
//
//	network/ - residual networks: dense n×n matrices or sparse paired arcs
//	flow/ - BFS path finder, augmentation, Edmonds–Karp, min cut, verification
//	edgelist/ - the "n, then from to capacity" text format (parse & write)
//	builder/ - ladder, bridge, chain, parallel and random network generators
//	batch/ - timed per-file solving, detailed / summary reports, CSV
//	config/ - viper-backed settings and the zerolog logger
//	server/ - POST /v1/maxflow over chi
//	cmd/netflow - the command-line entry point
//
// Quick example:
//
//	    0 ──10──▶ 1
//	    │         │
//	   10        10
//	    ▼         ▼
//	    2 ──10──▶ 3
//
//	net, _ := network.New(network.Auto, 4, 4)
//	_ = net.RegisterEdge(0, 1, 10)
//	_ = net.RegisterEdge(0, 2, 10)
//	_ = net.RegisterEdge(1, 3, 10)
//	_ = net.RegisterEdge(2, 3, 10)
//	res, _ := flow.EdmondsKarp(net, 0, 3)
//	fmt.Println(res.Total) // 20
//
// Every augmenting path is a shortest path in the residual network, so the
// number of augmentations is O(V·E) and the whole run is O(V·E²).
package netflow
