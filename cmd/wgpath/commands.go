// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/codec"
	"github.com/katalvlaran/wgraph/dijkstra"
)

// errHighlightPair is returned when only one highlight endpoint is set.
var errHighlightPair = errors.New("--highlight-from and --highlight-to must be used together")

// app carries the state shared by every subcommand.
type app struct {
	out      io.Writer
	errOut   io.Writer
	logger   *slog.Logger
	graph    string
	logLevel string
}

// newRootCmd builds the command tree. Output streams are injected so tests
// can capture them.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "wgpath",
		Short:         "Shortest paths over undirected weighted graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := parseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: lvl}))
			slog.SetDefault(a.logger)

			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVarP(&a.graph, "graph", "g", "", "graph file (.yaml, .yml, .dot, .gv)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(
		a.pathCmd(),
		a.distsCmd(),
		a.convertCmd(),
		a.statsCmd(),
	)

	return root
}

func (a *app) pathCmd() *cobra.Command {
	var from, to string
	var maxDist, wall int64
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the shortest path between two nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(a.logger, a.graph)
			if err != nil {
				return err
			}
			p, err := g.FindPath(from, to, runOptions(maxDist, wall)...)
			if err != nil {
				return err
			}
			length, _ := p.ShortestPathLength()
			a.logger.Debug("path found", "from", from, "to", to, "length", length, "hops", p.NodeCount()-1)
			fmt.Fprintf(a.out, "path: %s\n", strings.Join(p.ShortestPath(), " -> "))
			fmt.Fprintf(a.out, "length: %d\n", length)
			fmt.Fprintf(a.out, "nodes: %d\n", p.NodeCount())

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "source node")
	cmd.Flags().StringVar(&to, "to", "", "target node")
	addRunFlags(cmd, &maxDist, &wall)
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func (a *app) distsCmd() *cobra.Command {
	var from string
	var maxDist, wall int64
	cmd := &cobra.Command{
		Use:   "dists",
		Short: "Print the distance from one node to every node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(a.logger, a.graph)
			if err != nil {
				return err
			}
			res, err := g.ShortestPaths(from, runOptions(maxDist, wall)...)
			if err != nil {
				return err
			}
			ids := g.Nodes()
			slices.Sort(ids)
			for _, id := range ids {
				d, _ := res.Distance(id)
				if d == dijkstra.Infinity {
					fmt.Fprintf(a.out, "%s\tinf\n", id)
					continue
				}
				fmt.Fprintf(a.out, "%s\t%d\n", id, d)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "source node")
	addRunFlags(cmd, &maxDist, &wall)
	_ = cmd.MarkFlagRequired("from")

	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	var to, hlFrom, hlTo string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Re-encode the graph as yaml or dot on stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := codec.ParseFormat(to)
			if err != nil {
				return err
			}
			g, err := loadGraph(a.logger, a.graph)
			if err != nil {
				return err
			}
			if (hlFrom == "") != (hlTo == "") {
				return errHighlightPair
			}
			if hlFrom == "" {
				return codec.Encode(a.out, g, format)
			}
			if format != codec.FormatDOT {
				a.logger.Warn("highlighting only applies to dot output", "format", format)

				return codec.Encode(a.out, g, format)
			}
			p, err := g.FindPath(hlFrom, hlTo)
			if err != nil {
				return err
			}

			return codec.EncodeDOT(a.out, g, codec.WithPath(p))
		},
	}
	cmd.Flags().StringVar(&to, "to", string(codec.FormatYAML), "output format: yaml or dot")
	cmd.Flags().StringVar(&hlFrom, "highlight-from", "", "highlight the shortest path starting here (dot only)")
	cmd.Flags().StringVar(&hlTo, "highlight-to", "", "highlight the shortest path ending here (dot only)")

	return cmd
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print node, edge and isolated-node counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(a.logger, a.graph)
			if err != nil {
				return err
			}
			isolated := g.IsolatedNodes()
			fmt.Fprintf(a.out, "nodes: %d\n", g.Len())
			fmt.Fprintf(a.out, "edges: %d\n", g.EdgeCount())
			fmt.Fprintf(a.out, "isolated: %d", len(isolated))
			if len(isolated) > 0 {
				fmt.Fprintf(a.out, " (%s)", strings.Join(isolated, ", "))
			}
			fmt.Fprintln(a.out)

			return nil
		},
	}
}

// addRunFlags registers the Dijkstra tuning flags; zero means unset.
func addRunFlags(cmd *cobra.Command, maxDist, wall *int64) {
	cmd.Flags().Int64Var(maxDist, "max-distance", 0, "ignore nodes farther than this (0 = no cap)")
	cmd.Flags().Int64Var(wall, "wall", 0, "treat edges with weight >= this as closed (0 = none)")
}

// runOptions translates flag values into dijkstra options.
func runOptions(maxDist, wall int64) []dijkstra.Option {
	var opts []dijkstra.Option
	if maxDist > 0 {
		opts = append(opts, dijkstra.WithMaxDistance(maxDist))
	}
	if wall > 0 {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(wall))
	}

	return opts
}
