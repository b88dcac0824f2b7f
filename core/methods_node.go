// SPDX-License-Identifier: MIT
//
// File: methods_node.go
// Role: Node adjacency mutation and radius/closest-neighbor queries.
// Determinism:
//   - Scans follow neighbor insertion order; ClosestNeighbor ties go to the
//     earliest-inserted neighbor.

package core

import (
	"fmt"
	"slices"
	"strings"
)

// Value returns the identifier held by the node.
func (n *Node[T]) Value() T { return n.value }

// AddNeighbor inserts or overwrites the weight to id.
//
// No check is made that id exists in any graph or that weight ≥ 1; Graph
// methods validate before calling this and update both endpoints.
//
// Complexity: O(1) amortized.
func (n *Node[T]) AddNeighbor(id T, weight int64) {
	if _, exists := n.neighbors[id]; !exists {
		n.order = append(n.order, id)
	}
	n.neighbors[id] = weight
}

// RemoveNeighbor deletes the entry for id; no-op if absent.
// Complexity: O(deg).
func (n *Node[T]) RemoveNeighbor(id T) {
	if _, exists := n.neighbors[id]; !exists {
		return
	}
	delete(n.neighbors, id)
	if i := slices.Index(n.order, id); i >= 0 {
		n.order = slices.Delete(n.order, i, i+1)
	}
}

// clearNeighbors drops the whole adjacency.
func (n *Node[T]) clearNeighbors() {
	clear(n.neighbors)
	n.order = nil
}

// IsIsolated reports whether the node has no neighbors.
func (n *Node[T]) IsIsolated() bool { return len(n.neighbors) == 0 }

// IsNeighbor reports whether id is adjacent to the node.
func (n *Node[T]) IsNeighbor(id T) bool {
	_, ok := n.neighbors[id]

	return ok
}

// Weight returns the weight of the edge to id.
func (n *Node[T]) Weight(id T) (int64, bool) {
	w, ok := n.neighbors[id]

	return w, ok
}

// Degree returns the number of neighbors.
func (n *Node[T]) Degree() int { return len(n.neighbors) }

// Neighbors returns a copy of the neighbor → weight map.
func (n *Node[T]) Neighbors() map[T]int64 {
	out := make(map[T]int64, len(n.neighbors))
	for k, v := range n.neighbors {
		out[k] = v
	}

	return out
}

// NeighborIDs returns neighbor ids in insertion order.
func (n *Node[T]) NeighborIDs() []T {
	return slices.Clone(n.order)
}

// ClosestNeighbor returns the neighbor reached by the lightest edge.
// Among equal weights the earliest-inserted neighbor wins. The boolean is
// false for an isolated node.
func (n *Node[T]) ClosestNeighbor() (T, bool) {
	var best T
	found := false
	var bestW int64
	for _, id := range n.order {
		w := n.neighbors[id]
		if !found || w < bestW {
			best, bestW, found = id, w, true
		}
	}

	return best, found
}

// AnyNodeAtDistance reports whether some neighbor sits at exactly d.
func (n *Node[T]) AnyNodeAtDistance(d int64) bool {
	for _, w := range n.neighbors {
		if w == d {
			return true
		}
	}

	return false
}

// AnyNodeWithinRadius reports whether some neighbor sits at distance ≤ r.
func (n *Node[T]) AnyNodeWithinRadius(r int64) bool {
	for _, w := range n.neighbors {
		if w <= r {
			return true
		}
	}

	return false
}

// CountNodesWithinRadius counts neighbors at distance ≤ r.
func (n *Node[T]) CountNodesWithinRadius(r int64) int {
	count := 0
	for _, w := range n.neighbors {
		if w <= r {
			count++
		}
	}

	return count
}

// String renders the node and its adjacency, one neighbor per line:
//
//	a
//		"b" at a distance of 2
func (n *Node[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v", n.value)
	if n.IsIsolated() {
		sb.WriteString("\n\tno neighbors")

		return sb.String()
	}
	for _, id := range n.order {
		fmt.Fprintf(&sb, "\n\t%q at a distance of %d", fmt.Sprint(id), n.neighbors[id])
	}

	return sb.String()
}
