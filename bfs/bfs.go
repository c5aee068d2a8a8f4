package bfs

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// queueItem pairs a vertex id with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from source,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrVertexOutOfRange for invalid input,
// ErrWeightedGraph for weighted graphs, ErrOptionViolation for bad options,
// or any user-supplied hook error.
//
// Dist[source] is 0 and Dist[v] is the minimum number of edges from source
// to v (Unreached for vertices in other components). Each vertex is enqueued
// at most once, and vertices are finalized in non-decreasing distance order.
// Complexity: O(V + E).
func BFS(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate source vertex
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source=%d, n=%d", ErrVertexOutOfRange, source, g.N())
	}
	// Disallow weighted graphs
	if g.Weighted() {
		return nil, ErrWeightedGraph
	}

	// Prepare walker
	n := g.N()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Dist:   make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Dist[v] = Unreached
		w.res.Parent[v] = -1
	}

	// Seed queue with source (depth 0, no parent)
	w.enqueue(source, 0, -1)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks v reached at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue. Dist doubles as the visited marker.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Dist[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// unseen neighbor of item.v.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.v)
	if err != nil {
		// unreachable once the source passed validation; surfaced for safety
		return fmt.Errorf("bfs: failed to get neighbors of %d: %w", item.v, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		// first time seen?
		if w.res.Dist[nbr] == Unreached {
			w.enqueue(nbr, nextDepth, item.v)
		}
	}

	return nil
}
