// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.

package core

import "slices"

// CloneEmpty returns a new Graph with the same nodes, in the same order, and
// no edges.
// Complexity: O(V).
func (g *Graph[T]) CloneEmpty() *Graph[T] {
	clone := NewGraph[T]()
	for _, id := range g.order {
		clone.AddIsolatedNode(id)
	}

	return clone
}

// Clone returns a deep copy: nodes, adjacency and both insertion orders.
// Mutating the clone never affects g.
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	clone := &Graph[T]{
		nodes: make(map[T]*Node[T], len(g.nodes)),
		order: slices.Clone(g.order),
	}
	for id, n := range g.nodes {
		cn := &Node[T]{
			value:     n.value,
			neighbors: make(map[T]int64, len(n.neighbors)),
			order:     slices.Clone(n.order),
		}
		for k, w := range n.neighbors {
			cn.neighbors[k] = w
		}
		clone.nodes[id] = cn
	}

	return clone
}

// Clear removes every node and edge.
func (g *Graph[T]) Clear() {
	clear(g.nodes)
	g.order = nil
}
