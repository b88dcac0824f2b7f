// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/dijkstra"
)

// DOT attribute values used for highlighting.
const (
	defaultGraphName    = "wgraph"
	highlightColor      = "red"
	highlightPenWidth   = "2"
	attrWeight          = "weight"
	attrLabel           = "label"
	attrColor           = "color"
	attrPenWidth        = "penwidth"
	dotAttrRankDir      = "rankdir"
	dotAttrRankDirValue = "LR"
)

type dotConfig struct {
	name string
	path []string
}

// DOTOption configures EncodeDOT.
type DOTOption func(*dotConfig)

// WithGraphName sets the DOT graph identifier (default "wgraph").
func WithGraphName(name string) DOTOption {
	return func(c *dotConfig) { c.name = name }
}

// WithPath highlights the nodes and edges of p.
func WithPath(p *dijkstra.Path[string]) DOTOption {
	return func(c *dotConfig) {
		if p != nil {
			c.path = p.ShortestPath()
		}
	}
}

// EncodeDOT writes g as an undirected Graphviz graph. Node ids are always
// quoted so any string survives the round trip.
func EncodeDOT(w io.Writer, g *core.Graph[string], opts ...DOTOption) error {
	cfg := dotConfig{name: defaultGraphName}
	for _, opt := range opts {
		opt(&cfg)
	}

	onPath := make(map[string]bool, len(cfg.path))
	pathEdge := make(map[[2]string]bool, len(cfg.path))
	for i, id := range cfg.path {
		onPath[id] = true
		if i > 0 {
			pathEdge[[2]string{cfg.path[i-1], id}] = true
			pathEdge[[2]string{id, cfg.path[i-1]}] = true
		}
	}

	gv := gographviz.NewGraph()
	if err := gv.SetName(cfg.name); err != nil {
		return fmt.Errorf("codec: dot graph name: %w", err)
	}
	if err := gv.SetDir(false); err != nil {
		return fmt.Errorf("codec: dot direction: %w", err)
	}
	if err := gv.AddAttr(cfg.name, dotAttrRankDir, dotAttrRankDirValue); err != nil {
		return fmt.Errorf("codec: dot attr: %w", err)
	}

	for _, id := range g.Nodes() {
		attrs := map[string]string{}
		if onPath[id] {
			attrs[attrColor] = highlightColor
			attrs[attrPenWidth] = highlightPenWidth
		}
		if err := gv.AddNode(cfg.name, strconv.Quote(id), attrs); err != nil {
			return fmt.Errorf("codec: dot node %q: %w", id, err)
		}
	}
	for _, e := range g.Edges() {
		weight := strconv.FormatInt(e.Weight, 10)
		attrs := map[string]string{
			attrWeight: weight,
			attrLabel:  weight,
		}
		if pathEdge[[2]string{e.From, e.To}] {
			attrs[attrColor] = highlightColor
			attrs[attrPenWidth] = highlightPenWidth
		}
		if err := gv.AddEdge(strconv.Quote(e.From), strconv.Quote(e.To), false, attrs); err != nil {
			return fmt.Errorf("codec: dot edge %q—%q: %w", e.From, e.To, err)
		}
	}

	if _, err := io.WriteString(w, gv.String()); err != nil {
		return fmt.Errorf("codec: write dot: %w", err)
	}

	return nil
}

// DecodeDOT parses an undirected Graphviz graph. Every edge must carry a
// positive integer `weight` attribute; `digraph` input is rejected.
func DecodeDOT(r io.Reader) (*core.Graph[string], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("codec: read dot: %w", err)
	}
	gv, err := gographviz.Read(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}
	if gv.Directed {
		return nil, fmt.Errorf("%w: directed graphs are not supported", ErrBadDocument)
	}

	var doc Document
	for _, n := range gv.Nodes.Nodes {
		doc.Nodes = append(doc.Nodes, unquoteID(n.Name))
	}
	for i, e := range gv.Edges.Edges {
		raw, ok := e.Attrs[attrWeight]
		if !ok {
			return nil, fmt.Errorf("%w: edge %d (%s—%s) has no weight", ErrBadDocument, i, e.Src, e.Dst)
		}
		w, err := strconv.ParseInt(unquoteID(raw), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: edge %d weight %q: %w", ErrBadDocument, i, raw, err)
		}
		doc.Edges = append(doc.Edges, EdgeDoc{From: unquoteID(e.Src), To: unquoteID(e.Dst), Weight: w})
	}

	return doc.Build()
}

// unquoteID strips DOT double quotes; unquoted ids are returned as-is.
func unquoteID(id string) string {
	if len(id) >= 2 && strings.HasPrefix(id, `"`) && strings.HasSuffix(id, `"`) {
		if s, err := strconv.Unquote(id); err == nil {
			return s
		}

		return strings.ReplaceAll(id[1:len(id)-1], `\"`, `"`)
	}

	return id
}
