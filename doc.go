// Package pathfind is a compact toolkit of graph primitives and reference
// algorithms over dense integer-id graphs — the building blocks behind
// shortest-path, connectivity, and spanning-tree problems.
//
// 🚀 What is pathfind?
//
//	A small, single-purpose library that brings together:
//		• Core primitives: fixed-size graphs over vertices 0..n-1, slice-backed adjacency
//		• Traversals: BFS (layered shortest hops), iterative DFS
//		• Shortest paths: Dijkstra with lazy decrease-key
//		• Connectivity: disjoint set union (path halving + union by rank)
//		• Minimum spanning trees: Kruskal on top of the DSU
//
// ✨ Why choose pathfind?
//
//   - Minimal API – a graph in, a distance slice (or root, or tree) out
//   - Deterministic – sentinel errors, fail-fast bounds checks, reproducible order
//   - Pure Go – no cgo, a single test-only dependency
//   - Extensible – hooks (OnVisit, OnEnqueue…) for custom observation logic
//
// Everything is organized in one package per concern:
//
//	core/     — Graph, Edge, construction and adjacency accessors
//	bfs/      — breadth-first search, unweighted shortest paths
//	dfs/      — depth-first traversal with an explicit stack
//	dijkstra/ — non-negative weighted shortest paths
//	dsu/      — disjoint set union (union–find)
//	mst/      — Kruskal minimum spanning tree
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	g, _ := core.NewGraph(4)
//	g.AddEdge(0, 1, 0)
//	g.AddEdge(0, 2, 0)
//	g.AddEdge(1, 3, 0)
//	g.AddEdge(2, 3, 0)
//	res, _ := bfs.BFS(g, 0)
//	// res.Dist == [0 1 1 2]
//
// All components are single-owner and synchronous: share a Graph or DSU across
// goroutines only behind your own synchronization.
package pathfind
