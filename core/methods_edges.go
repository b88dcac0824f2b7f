// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge queries and in-place updates: SetWeight/RemoveEdge/HasEdge/
//       Weight/Neighbors/Edges/EdgeCount.
// Determinism:
//   - Edges() lists each undirected edge once, ordered by the insertion
//     position of its first endpoint, then by that endpoint's neighbor order.

package core

import "fmt"

// SetWeight changes the weight of the existing edge a—b on both endpoints.
//
// Errors:
//   - ErrInvalidWeight if weight < 1.
//   - ErrNodeNotFound if a or b is absent.
//   - ErrEdgeNotFound if a and b are not adjacent.
//
// Complexity: O(1).
func (g *Graph[T]) SetWeight(a, b T, weight int64) error {
	if weight < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWeight, weight)
	}
	na, nb, err := g.endpoints(a, b)
	if err != nil {
		return err
	}
	if !na.IsNeighbor(b) {
		return fmt.Errorf("%w: %v—%v", ErrEdgeNotFound, a, b)
	}
	na.neighbors[b] = weight
	nb.neighbors[a] = weight

	return nil
}

// RemoveEdge disconnects a and b; both nodes stay in the graph.
//
// Errors:
//   - ErrNodeNotFound if a or b is absent.
//   - ErrEdgeNotFound if a and b are not adjacent.
func (g *Graph[T]) RemoveEdge(a, b T) error {
	na, nb, err := g.endpoints(a, b)
	if err != nil {
		return err
	}
	if !na.IsNeighbor(b) {
		return fmt.Errorf("%w: %v—%v", ErrEdgeNotFound, a, b)
	}
	na.RemoveNeighbor(b)
	nb.RemoveNeighbor(a)

	return nil
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph[T]) HasEdge(a, b T) bool {
	_, ok := g.Weight(a, b)

	return ok
}

// Weight returns the weight of edge a—b.
func (g *Graph[T]) Weight(a, b T) (int64, bool) {
	n, ok := g.nodes[a]
	if !ok {
		return 0, false
	}

	return n.Weight(b)
}

// Neighbors returns the ids adjacent to id in insertion order.
func (g *Graph[T]) Neighbors(id T) ([]T, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, id)
	}

	return n.NeighborIDs(), nil
}

// Edges lists every undirected edge exactly once.
// Complexity: O(V + E).
func (g *Graph[T]) Edges() []Edge[T] {
	pos := make(map[T]int, len(g.order))
	for i, id := range g.order {
		pos[id] = i
	}

	var out []Edge[T]
	for _, u := range g.order {
		n := g.nodes[u]
		for _, v := range n.order {
			if pos[u] < pos[v] {
				out = append(out, Edge[T]{From: u, To: v, Weight: n.neighbors[v]})
			}
		}
	}

	return out
}

// EdgeCount returns the number of undirected edges.
func (g *Graph[T]) EdgeCount() int {
	sum := 0
	for _, n := range g.nodes {
		sum += len(n.neighbors)
	}

	return sum / 2
}

// endpoints resolves both nodes of a prospective edge.
func (g *Graph[T]) endpoints(a, b T) (*Node[T], *Node[T], error) {
	na, ok := g.nodes[a]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrNodeNotFound, a)
	}
	nb, ok := g.nodes[b]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrNodeNotFound, b)
	}

	return na, nb, nil
}
