// SPDX-License-Identifier: MIT

// Package core provides the in-memory weighted graph used by wgraph: a
// generic, undirected Graph[T] of Node[T] values joined by positive integer
// weights, plus the FindPath query backed by package dijkstra.
//
// Model:
//
//   - Nodes are keyed by their value; T must be comparable (equality and
//     hashing, i.e. a valid Go map key).
//   - Each Node keeps a neighbor map id → weight. Edges are symmetric:
//     adding a—b with weight w stores b→w on a and a→w on b.
//   - Weights are always ≥ 1. Self-edges and parallel edges do not exist;
//     re-adding an edge overwrites its weight on both sides.
//   - Every neighbor id is itself a node of the graph. Graph operations keep
//     this true; Node.AddNeighbor does not check it and should only be used
//     by code that maintains both sides.
//
// Determinism:
//
//   - Nodes(), Node.NeighborIDs(), Edges() and String() follow insertion
//     order, so output and equal-length tie-breaking in FindPath are
//     reproducible across runs.
//
// Errors:
//
//	ErrInvalidWeight - edge weight below 1.
//	ErrNodeNotFound  - referenced node is not in the graph.
//	ErrEdgeNotFound  - referenced edge is not in the graph.
//	ErrSelfLoop      - edge from a node to itself.
//
// A failing call leaves the graph unchanged.
//
// Concurrency:
//
//   - Graph has no internal locking. One goroutine may mutate or query a
//     Graph at a time; callers sharing a Graph must synchronize externally.
//
// Quick example:
//
//	g := core.NewGraph[string]()
//	g.AddIsolatedNode("a")
//	g.AddIsolatedNode("b")
//	_ = g.AddNode("c", "a", 2)   // c—a (2)
//	_ = g.AddNode("c", "b", 1)   // c—b (1)
//	p, _ := g.FindPath("a", "b") // [a c b], length 3
package core
