// SPDX-License-Identifier: MIT
// Package core_test verifies Graph lifecycle and query contracts.

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
)

// TestGraph_AddIsolatedNodeIdempotent checks that re-adding a node keeps its adjacency.
func TestGraph_AddIsolatedNodeIdempotent(t *testing.T) {
	g := core.NewGraph[string]()
	first := g.AddIsolatedNode(NodeA)
	g.AddIsolatedNode(NodeB)
	require.NoError(t, g.AddNode(NodeA, NodeB, 4))

	again := g.AddIsolatedNode(NodeA)
	assert.Same(t, first, again)
	assert.Equal(t, 2, g.Len())
	w, ok := again.Weight(NodeB)
	require.True(t, ok)
	assert.Equal(t, int64(4), w)
}

// TestGraph_AddNodeSymmetry checks that an edge is stored on both endpoints.
func TestGraph_AddNodeSymmetry(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddIsolatedNode(NodeA)

	// NodeB does not exist yet; AddNode creates it.
	require.NoError(t, g.AddNode(NodeB, NodeA, 7))
	assert.True(t, g.HasNode(NodeB))

	wAB, ok := g.Weight(NodeA, NodeB)
	require.True(t, ok)
	wBA, ok := g.Weight(NodeB, NodeA)
	require.True(t, ok)
	assert.Equal(t, int64(7), wAB)
	assert.Equal(t, wAB, wBA)

	// Re-adding overwrites both sides.
	require.NoError(t, g.AddNode(NodeA, NodeB, 3))
	wAB, _ = g.Weight(NodeA, NodeB)
	wBA, _ = g.Weight(NodeB, NodeA)
	assert.Equal(t, int64(3), wAB)
	assert.Equal(t, int64(3), wBA)
	assert.Equal(t, 1, g.EdgeCount())

	requireSymmetric(t, newClassicGraph(t))
}

// TestGraph_AddNodeRejects checks every rejection path and that the graph stays unchanged.
func TestGraph_AddNodeRejects(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		neighbor string
		weight   int64
		want     error
	}{
		{"zero weight", NodeX, NodeA, 0, core.ErrInvalidWeight},
		{"negative weight", NodeX, NodeA, -3, core.ErrInvalidWeight},
		{"missing neighbor", NodeX, "missing", 1, core.ErrNodeNotFound},
		{"self loop", NodeA, NodeA, 1, core.ErrSelfLoop},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newClassicGraph(t)
			before := g.String()

			err := g.AddNode(tt.value, tt.neighbor, tt.weight)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, before, g.String())
			assert.False(t, g.HasNode(NodeX))
		})
	}
}

// TestGraph_GetNode covers present and absent lookups.
func TestGraph_GetNode(t *testing.T) {
	g := newClassicGraph(t)

	n, ok := g.GetNode(NodeE)
	require.True(t, ok)
	assert.Equal(t, NodeE, n.Value())
	assert.Equal(t, []string{NodeB, NodeD, NodeF, NodeG}, n.NeighborIDs())

	_, ok = g.GetNode(NodeX)
	assert.False(t, ok)
}

// TestGraph_RemoveNode checks back-reference cleanup and the not-found policy.
func TestGraph_RemoveNode(t *testing.T) {
	g := newClassicGraph(t)
	e, _ := g.GetNode(NodeE)
	formerNeighbors := e.NeighborIDs()

	require.NoError(t, g.RemoveNode(NodeE))
	assert.False(t, g.HasNode(NodeE))
	assert.True(t, e.IsIsolated(), "removed node keeps no adjacency")
	for _, id := range formerNeighbors {
		n, ok := g.GetNode(id)
		require.True(t, ok)
		assert.Falsef(t, n.IsNeighbor(NodeE), "%s still points at e", id)
	}
	assert.Equal(t, []string{NodeA, NodeB, NodeC, NodeD, NodeF, NodeG}, g.Nodes())
	assert.Equal(t, len(classicEdges)-4, g.EdgeCount())
	requireSymmetric(t, g)

	err := g.RemoveNode(NodeE)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestGraph_SetWeightAndRemoveEdge covers in-place edge updates.
func TestGraph_SetWeightAndRemoveEdge(t *testing.T) {
	g := newClassicGraph(t)

	require.NoError(t, g.SetWeight(NodeA, NodeB, 9))
	w, _ := g.Weight(NodeB, NodeA)
	assert.Equal(t, int64(9), w)

	require.ErrorIs(t, g.SetWeight(NodeA, NodeB, 0), core.ErrInvalidWeight)
	require.ErrorIs(t, g.SetWeight(NodeA, NodeG, 1), core.ErrEdgeNotFound)
	require.ErrorIs(t, g.SetWeight(NodeA, NodeX, 1), core.ErrNodeNotFound)

	require.NoError(t, g.RemoveEdge(NodeA, NodeB))
	assert.False(t, g.HasEdge(NodeA, NodeB))
	assert.False(t, g.HasEdge(NodeB, NodeA))
	assert.True(t, g.HasNode(NodeA))
	require.ErrorIs(t, g.RemoveEdge(NodeA, NodeB), core.ErrEdgeNotFound)
	require.ErrorIs(t, g.RemoveEdge(NodeX, NodeB), core.ErrNodeNotFound)
	requireSymmetric(t, g)
}

// TestGraph_EdgesOrder checks that Edges lists each edge once in insertion order.
func TestGraph_EdgesOrder(t *testing.T) {
	g := newClassicGraph(t)
	edges := g.Edges()
	require.Len(t, edges, len(classicEdges))
	assert.Equal(t, core.Edge[string]{From: NodeA, To: NodeB, Weight: 2}, edges[0])
	assert.Equal(t, core.Edge[string]{From: NodeF, To: NodeG, Weight: 2}, edges[len(edges)-1])

	_, err := g.Neighbors(NodeX)
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestGraph_CloneIsDeep checks that mutating a clone leaves the original intact.
func TestGraph_CloneIsDeep(t *testing.T) {
	g := newClassicGraph(t)
	clone := g.Clone()
	assert.Equal(t, g.String(), clone.String())

	require.NoError(t, clone.RemoveNode(NodeA))
	require.NoError(t, clone.SetWeight(NodeF, NodeG, 50))
	assert.True(t, g.HasNode(NodeA))
	w, _ := g.Weight(NodeF, NodeG)
	assert.Equal(t, int64(2), w)

	empty := g.CloneEmpty()
	assert.Equal(t, g.Nodes(), empty.Nodes())
	assert.Zero(t, empty.EdgeCount())

	g.Clear()
	assert.Zero(t, g.Len())
	assert.Empty(t, g.Nodes())
}

// TestGraph_FindPathClassic checks the seven-node fixture against brute force.
func TestGraph_FindPathClassic(t *testing.T) {
	g := newClassicGraph(t)
	nodes := g.Nodes()
	for _, src := range nodes {
		for _, dst := range nodes {
			p, err := g.FindPath(src, dst)
			require.NoError(t, err)
			want, ok := bruteForceShortest(g, src, dst)
			require.True(t, ok)
			got, ok := p.ShortestPathLength()
			require.True(t, ok)
			assert.Equalf(t, want, got, "%s→%s", src, dst)

			seq := p.ShortestPath()
			assert.Equal(t, src, seq[0])
			assert.Equal(t, dst, seq[len(seq)-1])

			// The sequence must be a real walk whose weights add up to the length.
			var sum int64
			for i := 1; i < len(seq); i++ {
				w, ok := g.Weight(seq[i-1], seq[i])
				require.Truef(t, ok, "%s—%s is not an edge", seq[i-1], seq[i])
				sum += w
			}
			assert.Equal(t, got, sum)
		}
	}

	p, err := g.FindPath(NodeA, NodeG)
	require.NoError(t, err)
	assert.Equal(t, []string{NodeA, NodeB, NodeD, NodeE, NodeG}, p.ShortestPath())
}

// TestGraph_FindPathSelf checks that source == target yields [source] with length 0.
func TestGraph_FindPathSelf(t *testing.T) {
	g := newClassicGraph(t)
	p, err := g.FindPath(NodeC, NodeC)
	require.NoError(t, err)
	assert.Equal(t, []string{NodeC}, p.ShortestPath())
	assert.Equal(t, 1, p.NodeCount())
	l, ok := p.ShortestPathLength()
	require.True(t, ok)
	assert.Zero(t, l)
}

// TestGraph_FindPathErrors covers absent endpoints and unreachable targets.
func TestGraph_FindPathErrors(t *testing.T) {
	g := newClassicGraph(t)
	g.AddIsolatedNode(NodeX)

	_, err := g.FindPath("missing", NodeA)
	require.ErrorIs(t, err, dijkstra.ErrPathNotFound)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = g.FindPath(NodeA, "missing")
	require.ErrorIs(t, err, dijkstra.ErrPathNotFound)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = g.FindPath(NodeA, NodeX)
	require.ErrorIs(t, err, dijkstra.ErrPathNotFound)
	assert.False(t, errors.Is(err, core.ErrNodeNotFound))

	_, err = g.ShortestPaths("missing")
	require.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestGraph_FindPathAfterRemoval checks that routes avoid removed nodes.
func TestGraph_FindPathAfterRemoval(t *testing.T) {
	g := newClassicGraph(t)
	require.NoError(t, g.RemoveNode(NodeD))

	p, err := g.FindPath(NodeA, NodeG)
	require.NoError(t, err)
	assert.NotContains(t, p.ShortestPath(), NodeD)
	l, _ := p.ShortestPathLength()
	want, _ := bruteForceShortest(g, NodeA, NodeG)
	assert.Equal(t, want, l)

	d, ok := p.Distances()[NodeD]
	assert.False(t, ok, "removed node has no distance entry, got %d", d)
}

// TestGraph_IntKeys checks that non-string comparable keys work.
func TestGraph_IntKeys(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddIsolatedNode(1)
	require.NoError(t, g.AddNode(2, 1, 5))
	require.NoError(t, g.AddNode(3, 2, 5))
	require.NoError(t, g.AddNode(3, 1, 11))

	p, err := g.FindPath(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, p.ShortestPath())
	assert.Equal(t, "[1 2 3]", p.String())
	assert.Equal(t, []int(nil), g.IsolatedNodes())
}
