// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Query facade over package dijkstra plus read-only summaries.
// Policy:
//   - No algorithms here; FindPath and ShortestPaths delegate to dijkstra.Run.

package core

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wgraph/dijkstra"
)

// FindPath returns the shortest path from source to target.
//
// Implementation:
//   - Stage 1: Reject absent endpoints.
//   - Stage 2: Run a full single-source Dijkstra from source.
//   - Stage 3: Reconstruct the path to target from the predecessor map.
//
// Errors:
//   - Absent source or target: matches both dijkstra.ErrPathNotFound and
//     ErrNodeNotFound under errors.Is.
//   - Unreachable target: dijkstra.ErrPathNotFound.
//   - dijkstra.ErrDistanceOverflow if the distances do not fit in int64.
//
// Complexity:
//   - Time O((V + E) log V), Space O(V + E).
func (g *Graph[T]) FindPath(source, target T, opts ...dijkstra.Option) (*dijkstra.Path[T], error) {
	for _, id := range []T{source, target} {
		if !g.HasNode(id) {
			return nil, fmt.Errorf("%w: %w: %v", dijkstra.ErrPathNotFound, ErrNodeNotFound, id)
		}
	}
	res, err := g.ShortestPaths(source, opts...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(target)
}

// ShortestPaths runs Dijkstra from source and returns the raw result, for
// callers that need distances or paths to several targets.
//
// Errors:
//   - ErrNodeNotFound if source is absent.
func (g *Graph[T]) ShortestPaths(source T, opts ...dijkstra.Option) (*dijkstra.Result[T], error) {
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, source)
	}

	return dijkstra.Run[T](g, source, opts...)
}

// IsolatedNodes returns ids with no neighbors, in insertion order.
func (g *Graph[T]) IsolatedNodes() []T {
	var out []T
	for _, id := range g.order {
		if g.nodes[id].IsIsolated() {
			out = append(out, id)
		}
	}

	return out
}

// String dumps the graph: a header line followed by every node.
func (g *Graph[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "WeightedGraph with %d nodes\n", len(g.nodes))
	for _, id := range g.order {
		sb.WriteString(g.nodes[id].String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
