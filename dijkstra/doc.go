// SPDX-License-Identifier: MIT

// Package dijkstra runs single-source Dijkstra over undirected graphs with
// positive integer edge weights and turns the result into immutable Path
// snapshots.
//
// Overview:
//
//   - Run computes the minimum distance from one source to every node the
//     graph knows about. It is a full computation: the main loop stops only
//     when the priority queue is drained, never on reaching a given target.
//   - Result keeps the distance and predecessor maps of that run and can
//     build a Path to any target with PathTo.
//   - Path answers sequence and length queries and is never mutated after
//     construction.
//
// Graph contract:
//
//	type Graph[T comparable] interface {
//	    Nodes() []T                           // every node, stable order
//	    Neighbors(id T) ([]T, error)          // adjacent ids, stable order
//	    Weight(a, b T) (int64, bool)          // weight of edge a—b
//	}
//
// core.Graph satisfies it; so can any adapter over an existing structure.
//
// Distances:
//
//   - Unreached nodes keep the Infinity sentinel (math.MaxInt64) in the
//     distance map. Only reached nodes are relaxed, so the sentinel never
//     takes part in arithmetic, and finite sums are checked for overflow.
//
// Priority queue:
//
//   - Binary heap (container/heap) with lazy deletion. A shorter distance
//     pushes a fresh entry; stale entries are dropped when popped.
//   - Entries are ordered by (distance, push sequence), so equal-distance
//     ties resolve the same way on every run.
//
// Path reconstruction:
//
//   - PathTo follows predecessor links from the target back to the source
//     and gives up with ErrPathNotFound after |nodes| steps or on a missing
//     link. It never loops on broken input.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy heap may hold one entry per relaxation)
//
// Thread safety:
//
//   - Run reads the graph without locking. Do not mutate the graph while a
//     run is in progress.
package dijkstra
