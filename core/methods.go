package core

import "fmt"

// N returns the number of vertices in the graph.
func (g *Graph) N() int { return len(g.adj) }

// M returns the number of edges added via AddEdge. Undirected edges count once.
func (g *Graph) M() int { return len(g.edges) }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether the graph allows non-zero edge weights.
func (g *Graph) Weighted() bool { return g.weighted }

// HasVertex reports whether v is a valid vertex id, i.e. v ∈ [0, n).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adj) }

// AddEdge inserts an edge u→v with the given weight.
//
// Undirected graphs (the default) also insert the mirror entry v→u, so the
// adjacency lists stay symmetric; a self-loop is stored once either way.
// Parallel edges and self-loops are not deduplicated — callers that need a
// simple graph must filter upstream. Weighted graphs accept any int64 weight,
// negatives included; algorithms that require non-negative weights (dijkstra)
// validate that precondition themselves.
//
// Errors:
//   - ErrVertexOutOfRange if u or v lies outside [0, n); the graph is untouched.
//   - ErrBadWeight if weight != 0 on an unweighted graph.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, weight int64) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("%w: u=%d, n=%d", ErrVertexOutOfRange, u, len(g.adj))
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: v=%d, n=%d", ErrVertexOutOfRange, v, len(g.adj))
	}
	if !g.weighted && weight != 0 {
		return fmt.Errorf("%w: weight=%d", ErrBadWeight, weight)
	}

	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: weight})
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], Edge{To: u, Weight: weight})
	}
	g.edges = append(g.edges, EdgeListEntry{From: u, To: v, Weight: weight})

	return nil
}

// Neighbors returns a copy of the adjacency entries leaving u, in insertion
// order. Returns ErrVertexOutOfRange if u lies outside [0, n).
// Complexity: O(deg(u))
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if !g.HasVertex(u) {
		return nil, fmt.Errorf("%w: u=%d, n=%d", ErrVertexOutOfRange, u, len(g.adj))
	}
	out := make([]Edge, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// NeighborIDs returns the destination ids of the edges leaving u, in
// insertion order. Parallel edges yield repeated ids.
// Returns ErrVertexOutOfRange if u lies outside [0, n).
// Complexity: O(deg(u))
func (g *Graph) NeighborIDs(u int) ([]int, error) {
	if !g.HasVertex(u) {
		return nil, fmt.Errorf("%w: u=%d, n=%d", ErrVertexOutOfRange, u, len(g.adj))
	}
	out := make([]int, len(g.adj[u]))
	for i, e := range g.adj[u] {
		out[i] = e.To
	}

	return out, nil
}

// Degree returns the number of edges leaving u.
// Returns ErrVertexOutOfRange if u lies outside [0, n).
func (g *Graph) Degree(u int) (int, error) {
	if !g.HasVertex(u) {
		return 0, fmt.Errorf("%w: u=%d, n=%d", ErrVertexOutOfRange, u, len(g.adj))
	}

	return len(g.adj[u]), nil
}

// Edges returns a copy of all edges in insertion order, each exactly as it
// was passed to AddEdge (undirected edges appear once).
// Complexity: O(M)
func (g *Graph) Edges() []EdgeListEntry {
	out := make([]EdgeListEntry, len(g.edges))
	copy(out, g.edges)

	return out
}

// Clone returns a deep copy of the graph: same flags, independent adjacency
// and edge storage. Mutating the clone never affects the original.
// Complexity: O(N + M)
func (g *Graph) Clone() *Graph {
	c := &Graph{
		directed: g.directed,
		weighted: g.weighted,
		adj:      make([][]Edge, len(g.adj)),
		edges:    make([]EdgeListEntry, len(g.edges)),
	}
	for u, list := range g.adj {
		if list == nil {
			continue
		}
		c.adj[u] = make([]Edge, len(list))
		copy(c.adj[u], list)
	}
	copy(c.edges, g.edges)

	return c
}
