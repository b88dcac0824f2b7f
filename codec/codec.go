// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"io"

	"github.com/katalvlaran/wgraph/core"
)

// Encode writes g in the given format.
func Encode(w io.Writer, g *core.Graph[string], f Format) error {
	switch f {
	case FormatYAML:
		return EncodeYAML(w, g)
	case FormatDOT:
		return EncodeDOT(w, g)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Decode reads a graph in the given format.
func Decode(r io.Reader, f Format) (*core.Graph[string], error) {
	switch f {
	case FormatYAML:
		return DecodeYAML(r)
	case FormatDOT:
		return DecodeDOT(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
