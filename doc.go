// Package wgraph is an in-memory undirected weighted graph with
// single-source shortest paths.
//
// What is wgraph?
//
//	A small, generic library built around three packages:
//		• core     – Graph[T] and Node[T]: symmetric adjacency with positive int64 weights
//		• dijkstra – Run, Result and Path: distances, predecessors, route snapshots
//		• codec    – YAML and Graphviz DOT encoding for loading and exporting graphs
//
//	plus cmd/wgpath, a command-line front end over the same packages.
//
// Guarantees:
//
//   - Every edge is stored on both endpoints with the same weight.
//   - Weights are at least 1; self-loops are rejected.
//   - Iteration follows insertion order, so equal-length routes resolve the
//     same way on every run.
//   - Unreachable nodes keep the dijkstra.Infinity sentinel and never make
//     FindPath spin; the call returns dijkstra.ErrPathNotFound instead.
//
// Quick example:
//
//	    a──2──b
//	    │     │
//	    3     1
//	    │     │
//	    c──4──d
//
//	g := core.NewGraph[string]()
//	g.AddIsolatedNode("a")
//	_ = g.AddNode("b", "a", 2)
//	_ = g.AddNode("c", "a", 3)
//	_ = g.AddNode("d", "b", 1)
//	_ = g.AddNode("d", "c", 4)
//	p, _ := g.FindPath("a", "d") // [a b d], length 3
//
// Graphs are not safe for concurrent mutation; guard shared graphs externally.
//
//	go get github.com/katalvlaran/wgraph
package wgraph
