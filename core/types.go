// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Graph and Edge declarations, sentinel errors, constructors.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrInvalidWeight indicates an edge weight below 1.
	ErrInvalidWeight = errors.New("core: edge weight must be at least 1")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrSelfLoop indicates an edge from a node to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Node is a graph vertex: a value plus its weighted adjacency.
//
// neighbors maps neighbor id → weight; order keeps the ids in first-insertion
// order so every scan over the adjacency is deterministic.
type Node[T comparable] struct {
	value     T
	neighbors map[T]int64
	order     []T
}

// NewNode returns an isolated node holding value.
func NewNode[T comparable](value T) *Node[T] {
	return &Node[T]{value: value, neighbors: make(map[T]int64)}
}

// Edge is one undirected connection as reported by Graph.Edges.
// From is the endpoint inserted into the graph first.
type Edge[T comparable] struct {
	From   T
	To     T
	Weight int64
}

// Graph is an undirected weighted graph keyed by node value.
//
// nodes maps id → Node; order keeps ids in insertion order.
type Graph[T comparable] struct {
	nodes map[T]*Node[T]
	order []T
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[T comparable]() *Graph[T] {
	return &Graph[T]{nodes: make(map[T]*Node[T])}
}
