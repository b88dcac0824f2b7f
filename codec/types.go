// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/wgraph/core"
)

// Sentinel errors returned by codec functions.
var (
	// ErrBadDocument indicates input that does not describe a valid graph.
	ErrBadDocument = errors.New("codec: bad graph document")

	// ErrUnsupportedFormat indicates an unknown Format value or file extension.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")
)

// Format names a text representation.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatDOT  Format = "dot"
)

// FormatFromPath picks a Format from a file extension:
// .yaml/.yml → FormatYAML, .dot/.gv → FormatDOT.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".dot", ".gv":
		return FormatDOT, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// ParseFormat validates a user-supplied format name. "yml" and "gv" are
// accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "dot", "gv":
		return FormatDOT, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Document is the serialized form of a graph: every node once, in graph
// order, and every undirected edge once.
type Document struct {
	Nodes []string  `yaml:"nodes,omitempty"`
	Edges []EdgeDoc `yaml:"edges,omitempty"`
}

// EdgeDoc is one undirected edge of a Document.
type EdgeDoc struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// FromGraph captures g as a Document.
func FromGraph(g *core.Graph[string]) Document {
	doc := Document{Nodes: g.Nodes()}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeDoc{From: e.From, To: e.To, Weight: e.Weight})
	}

	return doc
}

// Build creates a graph from the document. Listed nodes are added first, in
// order; edge endpoints missing from Nodes are added as they appear.
func (d Document) Build() (*core.Graph[string], error) {
	g := core.NewGraph[string]()
	for i, id := range d.Nodes {
		if id == "" {
			return nil, fmt.Errorf("%w: node %d has an empty id", ErrBadDocument, i)
		}
		g.AddIsolatedNode(id)
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge %d has an empty endpoint", ErrBadDocument, i)
		}
		if g.HasEdge(e.From, e.To) {
			return nil, fmt.Errorf("%w: edge %d duplicates %s—%s", ErrBadDocument, i, e.From, e.To)
		}
		g.AddIsolatedNode(e.To)
		if err := g.AddNode(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrBadDocument, i, err)
		}
	}

	return g, nil
}
