// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/wgraph/codec"
	"github.com/katalvlaran/wgraph/core"
)

// errNoGraph is returned when --graph is missing.
var errNoGraph = errors.New("no graph file given (use --graph)")

// parseLevel maps --log-level values onto slog levels.
func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}

	return lvl, nil
}

// loadGraph reads the graph file, choosing the codec from its extension.
func loadGraph(logger *slog.Logger, path string) (*core.Graph[string], error) {
	if path == "" {
		return nil, errNoGraph
	}
	format, err := codec.FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open graph: %w", err)
	}
	defer f.Close()

	g, err := codec.Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	logger.Debug("graph loaded",
		"path", path,
		"format", format,
		"nodes", g.Len(),
		"edges", g.EdgeCount(),
	)

	return g, nil
}
