// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wgraph/core"
)

// yamlIndent matches the two-space style of hand-written graph files.
const yamlIndent = 2

// EncodeYAML writes g as a YAML Document.
func EncodeYAML(w io.Writer, g *core.Graph[string]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("codec: encode yaml: %w", err)
	}

	return enc.Close()
}

// DecodeYAML reads one YAML Document and builds the graph it describes.
// Unknown keys are rejected. An empty stream yields an empty graph.
func DecodeYAML(r io.Reader) (*core.Graph[string], error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}

	return doc.Build()
}
