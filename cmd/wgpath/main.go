// SPDX-License-Identifier: MIT

// Command wgpath loads a weighted graph from a YAML or DOT file and answers
// shortest-path questions about it.
//
// Usage:
//
//	wgpath --graph roads.yaml path --from a --to g
//	wgpath --graph roads.yaml dists --from a
//	wgpath --graph roads.yaml convert --to dot --highlight-from a --highlight-to g
//	wgpath --graph roads.dot stats
//
// Logs go to stderr via log/slog; results go to stdout.
package main

import (
	"log/slog"
	"os"
)

const (
	exitSuccess = 0
	exitError   = 1
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		slog.Error("wgpath failed", "error", err)
		os.Exit(exitError)
	}
	os.Exit(exitSuccess)
}
