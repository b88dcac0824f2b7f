// SPDX-License-Identifier: MIT

package dijkstra

import (
	"cmp"
	"fmt"
)

// Path is an immutable snapshot of one shortest-path query: the node
// sequence from source to target and the full distance map of the run that
// produced it. Accessors return copies.
type Path[T comparable] struct {
	sequence  []T
	distances map[T]int64
}

// newPath takes ownership of seq and distances.
func newPath[T comparable](seq []T, distances map[T]int64) *Path[T] {
	return &Path[T]{sequence: seq, distances: distances}
}

// ShortestPath returns the node sequence, source first and target last.
func (p *Path[T]) ShortestPath() []T {
	out := make([]T, len(p.sequence))
	copy(out, p.sequence)

	return out
}

// Distances returns the distance map of the originating run. Nodes the run
// never reached carry Infinity.
func (p *Path[T]) Distances() map[T]int64 {
	out := make(map[T]int64, len(p.distances))
	for k, v := range p.distances {
		out[k] = v
	}

	return out
}

// NodeCount returns the number of nodes on the path, endpoints included.
func (p *Path[T]) NodeCount() int { return len(p.sequence) }

// Source returns the first node of the path. The boolean is false for an
// empty path.
func (p *Path[T]) Source() (T, bool) {
	var zero T
	if len(p.sequence) == 0 {
		return zero, false
	}

	return p.sequence[0], true
}

// Target returns the last node of the path. The boolean is false for an
// empty path.
func (p *Path[T]) Target() (T, bool) {
	var zero T
	if len(p.sequence) == 0 {
		return zero, false
	}

	return p.sequence[len(p.sequence)-1], true
}

// ShortestPathLength returns the distance between the first and last node
// of the path. The boolean is false when the path holds no nodes.
func (p *Path[T]) ShortestPathLength() (int64, bool) {
	first, ok := p.Source()
	if !ok {
		return 0, false
	}
	last, _ := p.Target()
	d, err := p.DistanceBetween(first, last)
	if err != nil {
		return 0, false
	}

	return d, true
}

// DistanceBetween returns distance[b] - distance[a] as recorded by the run.
// The result is signed: pass a before b in traversal order for a
// non-negative value.
//
// Errors:
//   - ErrNotFound if a or b has no entry in the distance map.
//   - ErrUnreachable if a or b was never reached by the run.
func (p *Path[T]) DistanceBetween(a, b T) (int64, error) {
	da, okA := p.distances[a]
	db, okB := p.distances[b]
	if !okA || !okB {
		return 0, fmt.Errorf("%w: %v, %v", ErrNotFound, a, b)
	}
	if da == Infinity || db == Infinity {
		return 0, fmt.Errorf("%w: %v, %v", ErrUnreachable, a, b)
	}

	return db - da, nil
}

// String formats the node sequence, e.g. "[a b d]".
func (p *Path[T]) String() string {
	return fmt.Sprint(p.sequence)
}

// Compare orders paths by ShortestPathLength, shorter first, so that
// slices.SortFunc(paths, dijkstra.Compare[T]) yields the best path at index 0.
// Empty paths sort after every non-empty one.
func Compare[T comparable](a, b *Path[T]) int {
	la, okA := a.ShortestPathLength()
	lb, okB := b.ShortestPathLength()
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}

	return cmp.Compare(la, lb)
}
