// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
)

// Common node ids used across core tests.
const (
	NodeA = "a"
	NodeB = "b"
	NodeC = "c"
	NodeD = "d"
	NodeE = "e"
	NodeF = "f"
	NodeG = "g"
	NodeX = "x"
)

// classicEdges is the seven-node fixture: a..g, ten undirected edges.
var classicEdges = []core.Edge[string]{
	{From: NodeA, To: NodeB, Weight: 2},
	{From: NodeA, To: NodeC, Weight: 3},
	{From: NodeB, To: NodeD, Weight: 1},
	{From: NodeC, To: NodeD, Weight: 4},
	{From: NodeB, To: NodeE, Weight: 5},
	{From: NodeC, To: NodeF, Weight: 7},
	{From: NodeD, To: NodeE, Weight: 3},
	{From: NodeE, To: NodeF, Weight: 4},
	{From: NodeE, To: NodeG, Weight: 6},
	{From: NodeF, To: NodeG, Weight: 2},
}

// newClassicGraph builds the seven-node fixture, isolated nodes first.
func newClassicGraph(t testing.TB) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	for _, id := range []string{NodeA, NodeB, NodeC, NodeD, NodeE, NodeF, NodeG} {
		g.AddIsolatedNode(id)
	}
	for _, e := range classicEdges {
		require.NoError(t, g.AddNode(e.From, e.To, e.Weight))
	}

	return g
}

// requireSymmetric asserts that every adjacency entry has its mirror with
// the same weight and that every neighbor is a graph node.
func requireSymmetric[T comparable](t *testing.T, g *core.Graph[T]) {
	t.Helper()
	for _, id := range g.Nodes() {
		n, ok := g.GetNode(id)
		require.True(t, ok)
		for nb, w := range n.Neighbors() {
			other, ok := g.GetNode(nb)
			require.Truef(t, ok, "neighbor %v of %v is not a node", nb, id)
			back, ok := other.Weight(id)
			require.Truef(t, ok, "%v missing back-reference to %v", nb, id)
			require.Equal(t, w, back)
		}
	}
}

// bruteForceShortest enumerates every simple path from src to dst and
// returns the minimum total weight, or false if none exists.
func bruteForceShortest[T comparable](g *core.Graph[T], src, dst T) (int64, bool) {
	best, found := int64(0), false
	visited := map[T]bool{src: true}
	var walk func(u T, acc int64)
	walk = func(u T, acc int64) {
		if u == dst {
			if !found || acc < best {
				best, found = acc, true
			}

			return
		}
		n, _ := g.GetNode(u)
		for _, v := range n.NeighborIDs() {
			if visited[v] {
				continue
			}
			w, _ := n.Weight(v)
			visited[v] = true
			walk(v, acc+w)
			visited[v] = false
		}
	}
	walk(src, 0)

	return best, found
}
