package mst

import (
	"sort"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dsu"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected,
// weighted graph, using the dsu package for cycle detection.
//
// Error conditions:
//   - ErrInvalidGraph : if graph is nil, graph.Directed(), or !graph.Weighted().
//   - ErrDisconnected : if |V| == 0, or |V| > 1 and the graph does not span.
//
// Steps:
//  1. Validate: graph != nil, graph.Weighted(), !graph.Directed().
//  2. If |V| == 0 → ErrDisconnected. If |V| == 1 → trivial MST (empty, weight 0).
//  3. Collect all edges via graph.Edges(), skip self-loops (e.From == e.To).
//  4. Sort edges by ascending weight (sort.SliceStable keeps insertion order
//     among equal weights, so ties break deterministically).
//  5. Loop over sorted edges: include (u,v) whenever dsu.Union(u,v) merges.
//  6. Once the MST has |V|-1 edges, stop. Fewer after the loop → ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(graph *core.Graph) ([]core.EdgeListEntry, int64, error) {
	// 1. Validate that graph is non-nil, weighted and undirected.
	if graph == nil || !graph.Weighted() || graph.Directed() {
		return nil, 0, ErrInvalidGraph
	}

	// 2. Trivial vertex counts.
	numVerts := graph.N()
	// By convention, a graph with no vertices has no spanning tree.
	if numVerts == 0 {
		return nil, 0, ErrDisconnected
	}
	if numVerts == 1 {
		return []core.EdgeListEntry{}, 0, nil
	}

	// 3. Collect all edges, skipping self-loops: they cannot join components.
	allEdges := graph.Edges()
	edges := make([]core.EdgeListEntry, 0, len(allEdges))
	for _, e := range allEdges {
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}

	// 4. Sort edges by ascending weight; stable sort keeps insertion order
	//    for equal weights.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 5. Greedily grow the forest; Union reports whether an edge joins two
	//    components (all vertex ids already validated by the graph).
	sets, err := dsu.New(numVerts)
	if err != nil {
		return nil, 0, err
	}
	var (
		mst         []core.EdgeListEntry
		totalWeight int64
	)
	for _, e := range edges {
		merged, uerr := sets.Union(e.From, e.To)
		if uerr != nil {
			return nil, 0, uerr
		}
		if !merged {
			// Endpoints already connected; the edge would close a cycle.
			continue
		}
		mst = append(mst, e)
		totalWeight += e.Weight
		// 6. |V|-1 edges complete the tree.
		if len(mst) == numVerts-1 {
			break
		}
	}

	if len(mst) < numVerts-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, totalWeight, nil
}
