// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a source.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Dist: distance in edges from the source, Unreached (-1) when not reached
//   - Parent: predecessor in the BFS tree (-1 for source and unreached)
//   - Supports OnEnqueue/OnVisit hooks, MaxDepth limiting, and per-edge
//     neighbor filtering via WithFilterNeighbor.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Discover reachable subgraphs, connected components, and level layering.
//   - Cross-check for Dijkstra when all weights are equal.
//
// Determinism
//
//	Neighbors are enqueued in adjacency insertion order, so the visit
//	sequence is fully reproducible for a given construction sequence.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex enqueued at most once, each edge seen once)
//   - Memory: O(V)       (queue, Dist, Parent)
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - ErrVertexOutOfRange   if the source lies outside [0, n).
//   - ErrWeightedGraph      if run on a weighted graph (use dijkstra instead).
//   - ErrOptionViolation    if an invalid Option is supplied (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
