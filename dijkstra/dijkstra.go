// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
)

// Run computes shortest distances from source to every node of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrSourceNotFound).
//  3. Every edge weight must be ≥ 1 (ErrInvalidWeight) and every neighbor
//     must be a listed node (ErrUnknownNeighbor). Checked by an O(E) pre-scan.
//
// The run is exhaustive: it returns once every reachable node is settled.
// ErrDistanceOverflow is returned if a path length would not fit in int64.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Run[T comparable](g Graph[T], source T, opts ...Option) (*Result[T], error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph
	if g == nil {
		return nil, ErrNilGraph
	}
	nodes := g.Nodes()

	// 3) Initialize distances; every known node starts at Infinity.
	dist := make(map[T]int64, len(nodes))
	for _, v := range nodes {
		dist[v] = Infinity
	}
	if _, ok := dist[source]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}

	// 4) Pre-scan adjacency so the main loop can trust weights and ids.
	if err := prescan(g, nodes, dist); err != nil {
		return nil, err
	}

	r := &runner[T]{
		g:       g,
		options: cfg,
		dist:    dist,
		prev:    make(map[T]T, len(nodes)),
		settled: make(map[T]bool, len(nodes)),
		pq:      make(nodePQ[T], 0, len(nodes)),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result[T]{
		source: source,
		dist:   r.dist,
		prev:   r.prev,
		size:   len(nodes),
	}, nil
}

// prescan walks every adjacency entry once and fails fast on weights below 1
// or on neighbors the graph does not list.
func prescan[T comparable](g Graph[T], nodes []T, known map[T]int64) error {
	for _, u := range nodes {
		neighbors, err := g.Neighbors(u)
		if err != nil {
			return fmt.Errorf("dijkstra: failed to get neighbors of %v: %w", u, err)
		}
		for _, v := range neighbors {
			if _, ok := known[v]; !ok {
				return fmt.Errorf("%w: %v—%v", ErrUnknownNeighbor, u, v)
			}
			w, ok := g.Weight(u, v)
			if !ok || w < 1 {
				return fmt.Errorf("%w: edge %v—%v weight=%d", ErrInvalidWeight, u, v, w)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single execution.
type runner[T comparable] struct {
	g       Graph[T]
	options Options
	dist    map[T]int64
	prev    map[T]T
	settled map[T]bool
	pq      nodePQ[T]
	seq     uint64 // push counter, breaks distance ties
}

// init seeds the heap with the source at distance zero.
func (r *runner[T]) init(source T) {
	r.dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)
}

// process pops the closest unsettled node until the heap is empty.
func (r *runner[T]) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[T])
		u := item.id

		// Stale entry from an earlier, longer distance.
		if r.settled[u] || item.dist != r.dist[u] {
			continue
		}
		r.settled[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to shorten the distance of every unsettled neighbor of u.
// Assumes r.dist[u] is final and finite.
func (r *runner[T]) relax(u T) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %v: %w", u, err)
	}

	du := r.dist[u]
	for _, v := range neighbors {
		if r.settled[v] {
			continue
		}
		w, _ := r.g.Weight(u, v) // validated by prescan

		// Walls are skipped entirely.
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		// alt must stay strictly below the Infinity sentinel.
		if w >= Infinity-du {
			return fmt.Errorf("%w: %v + %d via %v", ErrDistanceOverflow, du, w, u)
		}
		alt := du + w
		if alt > r.options.MaxDistance {
			continue
		}
		// Strict comparison keeps the first predecessor found among equals.
		if alt >= r.dist[v] {
			continue
		}

		r.dist[v] = alt
		r.prev[v] = u
		r.push(v, alt)
	}

	return nil
}

// push adds a heap entry stamped with the next sequence number.
func (r *runner[T]) push(id T, dist int64) {
	heap.Push(&r.pq, &nodeItem[T]{id: id, dist: dist, seq: r.seq})
	r.seq++
}

// Result is the outcome of one Run: distances and predecessors for every
// node of the graph at the time of the run.
type Result[T comparable] struct {
	source T
	dist   map[T]int64
	prev   map[T]T
	size   int
}

// Source returns the node the run started from.
func (res *Result[T]) Source() T { return res.source }

// Distance returns the shortest distance to id. The boolean is false when id
// was not part of the graph; unreached nodes report Infinity with true.
func (res *Result[T]) Distance(id T) (int64, bool) {
	d, ok := res.dist[id]

	return d, ok
}

// Reachable reports whether id was reached from the source.
func (res *Result[T]) Reachable(id T) bool {
	d, ok := res.dist[id]

	return ok && d != Infinity
}

// Distances returns a copy of the full distance map, unreached nodes included.
func (res *Result[T]) Distances() map[T]int64 {
	out := make(map[T]int64, len(res.dist))
	for k, v := range res.dist {
		out[k] = v
	}

	return out
}

// Predecessor returns the node preceding id on its shortest path.
// The source and unreached nodes have no predecessor.
func (res *Result[T]) Predecessor(id T) (T, bool) {
	p, ok := res.prev[id]

	return p, ok
}

// PathTo reconstructs the shortest path from the source to target.
//
// The walk follows predecessor links backward and is bounded by the node
// count of the run; a missing link or an exhausted bound yields
// ErrPathNotFound.
func (res *Result[T]) PathTo(target T) (*Path[T], error) {
	if _, ok := res.dist[target]; !ok {
		return nil, fmt.Errorf("%w: target %v not in graph", ErrPathNotFound, target)
	}
	if !res.Reachable(target) {
		return nil, fmt.Errorf("%w: %v unreachable from %v", ErrPathNotFound, target, res.source)
	}

	seq := []T{target}
	cur := target
	for steps := 0; cur != res.source; steps++ {
		if steps >= res.size {
			return nil, fmt.Errorf("%w: predecessor chain from %v exceeds %d nodes", ErrPathNotFound, target, res.size)
		}
		p, ok := res.prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: broken predecessor chain at %v", ErrPathNotFound, cur)
		}
		seq = append(seq, p)
		cur = p
	}
	reverse(seq)

	return newPath(seq, res.Distances()), nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// nodeItem is one heap entry: a node, the distance it was pushed with, and
// its push sequence number.
type nodeItem[T comparable] struct {
	id   T
	dist int64
	seq  uint64
}

// nodePQ is a min-heap ordered by (dist, seq). Outdated entries stay in the
// heap and are skipped when popped.
type nodePQ[T comparable] []*nodeItem[T]

// Len returns the number of items in the heap.
func (pq nodePQ[T]) Len() int { return len(pq) }

// Less orders by distance, then by push order.
func (pq nodePQ[T]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ[T]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *nodeItem[T].
func (pq *nodePQ[T]) Push(x any) { *pq = append(*pq, x.(*nodeItem[T])) }

// Pop is called by heap.Pop.
func (pq *nodePQ[T]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
