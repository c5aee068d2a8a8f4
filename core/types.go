// Package core defines the central Graph and Edge types for dense
// integer-id graphs, plus construction options and sentinel errors.
//
// Vertices are identified by ints in [0, n) fixed at construction time.
// Adjacency is slice-backed: adj[u] holds every edge leaving u.
//
// Errors:
//
//	ErrBadVertexCount   - negative vertex count passed to NewGraph.
//	ErrVertexOutOfRange - vertex id outside [0, n).
//	ErrBadWeight        - non-zero weight provided to an unweighted graph.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrBadVertexCount indicates a negative vertex count was passed to NewGraph.
	ErrBadVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates a vertex id outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex id out of range")

	// ErrBadWeight indicates a non-zero weight provided to an unweighted graph.
	ErrBadWeight = errors.New("core: bad weight for unweighted graph")
)

// Edge is a single adjacency entry: the target vertex and the edge weight.
// On unweighted graphs Weight is always 0.
type Edge struct {
	// To is the destination vertex id.
	To int

	// Weight is the cost of the edge.
	Weight int64
}

// EdgeListEntry is a fully qualified edge as enumerated by Graph.Edges,
// in the exact order the edges were added.
type EdgeListEntry struct {
	// From is the source vertex id as passed to AddEdge.
	From int

	// To is the destination vertex id as passed to AddEdge.
	To int

	// Weight is the cost of the edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness for all edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithWeighted allows non-zero edge weights in the Graph.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is the core in-memory graph data structure.
//
// It holds a fixed set of vertices 0..n-1 and an adjacency list per vertex.
// A Graph is built once by a single owner and then read by traversals; it
// performs no internal locking.
type Graph struct {
	// Configuration flags
	directed bool // edges are one-way
	weighted bool // allow non-zero weights

	// Storage
	adj   [][]Edge        // adj[u] = edges leaving u
	edges []EdgeListEntry // edges in insertion order, as passed to AddEdge
}

// NewGraph creates a Graph with n vertices (ids 0..n-1) and no edges.
// By default the Graph is undirected and unweighted.
// Returns ErrBadVertexCount if n is negative.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadVertexCount
	}
	g := &Graph{adj: make([][]Edge, n)}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
