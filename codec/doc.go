// SPDX-License-Identifier: MIT

// Package codec moves core.Graph[string] values in and out of text:
//
//   - YAML edge lists (gopkg.in/yaml.v3):
//
//     nodes: [a, b, c, lonely]
//     edges:
//     - {from: a, to: b, weight: 2}
//     - {from: b, to: c, weight: 1}
//
//   - Graphviz DOT (github.com/awalterschulze/gographviz), undirected, one
//     `weight` and `label` attribute per edge. EncodeDOT can highlight a
//     dijkstra.Path for rendering.
//
// Decoding rebuilds the graph through core.Graph's own validation, so a
// document with a weight below 1, a self-edge or an empty id is rejected
// with ErrBadDocument. Encode followed by Decode yields a graph with the same
// nodes and the same weights on both sides of every edge.
package codec
