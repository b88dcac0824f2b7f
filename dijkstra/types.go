// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Infinity is the distance recorded for nodes the run never reached.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by Run, Result and Path.
var (
	// ErrNilGraph indicates that a nil graph was passed to Run.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceNotFound indicates that the source node is not part of the graph.
	ErrSourceNotFound = errors.New("dijkstra: source node not found in graph")

	// ErrInvalidWeight indicates an edge weight below 1 found during the pre-scan.
	ErrInvalidWeight = errors.New("dijkstra: edge weight must be at least 1")

	// ErrUnknownNeighbor indicates a neighbor id that the graph does not list as a node.
	ErrUnknownNeighbor = errors.New("dijkstra: neighbor not listed as graph node")

	// ErrDistanceOverflow indicates that a path length does not fit in int64.
	ErrDistanceOverflow = errors.New("dijkstra: distance overflows int64")

	// ErrPathNotFound indicates that no path connects the requested endpoints.
	ErrPathNotFound = errors.New("dijkstra: path not found")

	// ErrNotFound indicates a node that has no entry in a Path's distance map.
	ErrNotFound = errors.New("dijkstra: node not found in distance map")

	// ErrUnreachable indicates a node whose recorded distance is Infinity.
	ErrUnreachable = errors.New("dijkstra: node unreachable from source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Graph is the read-only view Run needs. Iteration order of Nodes and
// Neighbors decides tie-breaking between equal-length paths, so both should
// be stable.
type Graph[T comparable] interface {
	Nodes() []T
	Neighbors(id T) ([]T, error)
	Weight(a, b T) (int64, bool)
}

// Options configures a single run.
//
// MaxDistance      – nodes whose distance would exceed this stay unreached.
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable.
//
//	Must be > 0. Default is Infinity (no walls).
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// WithMaxDistance caps exploration at max. Panics if max < 0.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks every edge with weight ≥ threshold as impassable.
// Panics if threshold <= 0.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns the configuration used when no options are passed:
// full exploration and every edge traversable.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}
