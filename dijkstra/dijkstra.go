package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// Result holds the outcome of a Dijkstra run:
//   - Dist: minimum sum of edge weights from the source per vertex,
//     Inf for vertices no path reaches.
//   - Prev: predecessor on a shortest path per vertex (-1 = none);
//     nil unless WithReturnPath was supplied.
type Result struct {
	Dist []int64
	Prev []int
}

// PathTo reconstructs a shortest path from the source vertex to dest.
// Requires the run to have recorded predecessors (WithReturnPath);
// returns ErrNoPredecessors otherwise, ErrVertexOutOfRange for an invalid
// dest, and ErrUnreachable if no path exists.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return nil, fmt.Errorf("%w: dest=%d, n=%d", ErrVertexOutOfRange, dest, len(r.Dist))
	}
	if r.Prev == nil {
		return nil, ErrNoPredecessors
	}
	if r.Dist[dest] == Inf {
		return nil, fmt.Errorf("%w: dest=%d", ErrUnreachable, dest)
	}
	path := []int{}
	for cur := dest; cur != -1; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Dijkstra computes shortest distances from the source vertex (Source option)
// to all other vertices in the weighted graph g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Options must be valid (e.g. ErrBadMaxDistance).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. Source must lie in [0, n) (ErrVertexOutOfRange).
//  5. No edge in g can have negative weight (ErrNegativeWeight).
//
// The negative-weight precondition is validated defensively: all edges are
// scanned upfront (O(E)) so a bad graph fails fast instead of producing
// silently wrong distances.
//
// Options customization:
//
//   - Source(v):         starting vertex (required).
//   - WithReturnPath():  record the predecessor slice for PathTo.
//   - WithMaxDistance(x): vertices with distance > x are not explored (x ≥ 0).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Surface any option violation
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 4) Validate graph supports weights
	if !g.Weighted() {
		return nil, ErrUnweightedGraph
	}

	// 5) Validate Source lies in range
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: source=%d, n=%d", ErrVertexOutOfRange, cfg.Source, g.N())
	}

	// 6) Pre-scan all edges to detect negative weights. Fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 7) Prepare per-run state.
	n := g.N()
	res := &Result{Dist: make([]int64, n)}
	if cfg.ReturnPath {
		res.Prev = make([]int, n)
	}
	r := &runner{
		g:       g,
		options: cfg,
		res:     res,
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 8) Initialize algorithm state and run the main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // the input graph; read-only within Dijkstra
	options Options
	res     *Result
	visited []bool // visited[v] = distance finalized
	pq      nodePQ // min-heap for the lazy priority queue
}

// init sets up initial distances and predecessors, and seeds the heap
// with (0, source).
func (r *runner) init() {
	for v := range r.res.Dist {
		r.res.Dist[v] = Inf
		if r.res.Prev != nil {
			r.res.Prev[v] = -1 // no predecessor yet
		}
	}
	// Distance to the source is zero.
	r.res.Dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{v: r.options.Source, dist: 0})
}

// process is the core loop. It repeatedly extracts the vertex with the
// minimum distance from the source and relaxes its outgoing edges.
//
// Loop termination:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.v

		// 2) Skip stale heap entries: the vertex was already finalized
		//    through a shorter path pushed later.
		if r.visited[u] {
			continue
		}

		// 3) Past the exploration cap, every remaining entry is at least as
		//    far; stop without finalizing u.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Mark u as visited. Its shortest distance is now final.
		r.visited[u] = true

		// 5) Relax all outgoing edges from u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from vertex u and attempts to improve
// distances to its neighbors. If a strictly shorter path to neighbor v is
// found, the distance and predecessor are updated and a fresh heap entry is
// pushed (lazy decrease-key: stale entries stay behind and are skipped on pop).
//
// Assumes Dist[u] is finalized before relax(u) is called.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	du := r.res.Dist[u]
	for _, e := range neighbors {
		// Safety net behind the pre-scan: a negative weight here would
		// invalidate every finalized distance.
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, u, e.To, e.Weight)
		}

		// An edge heavy enough to push the path to Inf or beyond cannot lie
		// on any shortest path; skipping it also keeps the int64 sum from
		// wrapping negative.
		if e.Weight >= Inf-du {
			continue
		}

		// Candidate distance Source → … → u → v.
		newDist := du + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only; "<" avoids duplicate pushes on ties.
		if newDist >= r.res.Dist[e.To] {
			continue
		}

		r.res.Dist[e.To] = newDist
		if r.res.Prev != nil {
			r.res.Prev[e.To] = u
		}
		heap.Push(&r.pq, &nodeItem{v: e.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	v    int   // vertex id
	dist int64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Under the
// lazy-decrease-key strategy outdated entries remain in the heap and are
// discarded when popped (checked via visited[v]).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
