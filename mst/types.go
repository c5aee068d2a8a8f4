// Package mst provides a Kruskal Minimum Spanning Tree implementation.
// It assumes an undirected, weighted *core.Graph and produces the slice of
// edges forming the MST plus their total weight.
package mst

import "errors"

// Sentinel errors for MST construction.
var (
	// ErrInvalidGraph indicates a nil, directed, or unweighted input graph.
	ErrInvalidGraph = errors.New("mst: graph must be non-nil, undirected and weighted")

	// ErrDisconnected indicates the graph has no spanning tree
	// (zero vertices, or more than one connected component).
	ErrDisconnected = errors.New("mst: graph is not connected")
)
