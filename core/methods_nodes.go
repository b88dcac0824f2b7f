// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle on the Graph: AddIsolatedNode/AddNode/GetNode/HasNode/
//       RemoveNode, plus Nodes/Len enumeration.
// Determinism:
//   - Nodes() returns ids in insertion order.
// Atomicity:
//   - Every mutating method validates all inputs before touching state.

package core

import (
	"fmt"
	"slices"
)

// AddIsolatedNode inserts a node with no neighbors if value is missing and
// returns the node stored under value.
//
// Behavior highlights:
//   - Idempotent: an existing node is returned untouched, adjacency intact.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddIsolatedNode(value T) *Node[T] {
	if n, exists := g.nodes[value]; exists {
		return n
	}
	n := NewNode(value)
	g.nodes[value] = n
	g.order = append(g.order, value)

	return n
}

// AddNode ensures value is present and connects it to an existing neighbor
// with weight, overwriting any previous weight between the two.
//
// Steps:
//  1. weight < 1 ⇒ ErrInvalidWeight.
//  2. value == neighbor ⇒ ErrSelfLoop.
//  3. neighbor absent ⇒ ErrNodeNotFound.
//  4. AddIsolatedNode(value), then write the weight on both endpoints.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddNode(value, neighbor T, weight int64) error {
	if weight < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWeight, weight)
	}
	if value == neighbor {
		return fmt.Errorf("%w: %v", ErrSelfLoop, value)
	}
	other, ok := g.nodes[neighbor]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, neighbor)
	}

	n := g.AddIsolatedNode(value)
	n.AddNeighbor(neighbor, weight)
	other.AddNeighbor(value, weight)

	return nil
}

// GetNode returns the node stored under id.
func (g *Graph[T]) GetNode(id T) (*Node[T], bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// HasNode reports whether id is a node of the graph.
func (g *Graph[T]) HasNode(id T) bool {
	_, ok := g.nodes[id]

	return ok
}

// RemoveNode deletes id and every edge touching it.
//
// Steps:
//  1. id absent ⇒ ErrNodeNotFound.
//  2. Remove the back-reference to id from each neighbor.
//  3. Clear id's own adjacency and drop it from the catalog.
//
// Complexity: O(deg(id) · deg(neighbor) + V).
func (g *Graph[T]) RemoveNode(id T) error {
	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, id)
	}
	for _, nb := range n.order {
		if other, exists := g.nodes[nb]; exists {
			other.RemoveNeighbor(id)
		}
	}
	n.clearNeighbors()
	delete(g.nodes, id)
	if i := slices.Index(g.order, id); i >= 0 {
		g.order = slices.Delete(g.order, i, i+1)
	}

	return nil
}

// Nodes returns every node id in insertion order.
func (g *Graph[T]) Nodes() []T {
	return slices.Clone(g.order)
}

// Len returns the number of nodes.
func (g *Graph[T]) Len() int { return len(g.nodes) }
