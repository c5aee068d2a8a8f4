// Package dijkstra implements Dijkstra's shortest-path algorithm on
// weighted core.Graph instances with non-negative edge weights.
//
// What
//
//   - Computes the minimum-cost distance from a single source to every
//     reachable vertex; unreachable vertices keep the Inf sentinel.
//   - Optionally records predecessors (WithReturnPath) for PathTo.
//   - Supports a MaxDistance exploration cap.
//
// Mechanism
//
//	A min-heap (container/heap) ordered by current best distance drives the
//	classical greedy loop. Instead of a decrease-key operation the heap
//	tolerates duplicates: improving a vertex pushes a fresh entry, and stale
//	entries (distance worse than the recorded best) are discarded on pop.
//	Once a vertex is popped non-stale its distance is final and never
//	improved again — the greedy invariant that holds under non-negative
//	weights.
//
// Preconditions
//
//	All edge weights must be ≥ 0. The precondition is validated defensively:
//	edges are scanned before the run and rechecked during relaxation, and a
//	violation fails fast with ErrNegativeWeight rather than returning wrong
//	distances. Distances saturate at Inf: an edge that would push a path sum
//	to Inf or beyond is treated as impassable, never wrapped around.
//
// Tie-breaking
//
//	Among equal-distance heap entries no secondary order is guaranteed; rely
//	only on the resulting distance values, not on which equal-cost path wins.
//
// Complexity
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)   (distance slice plus worst-case heap under lazy decrease-key)
//
// Errors
//
//   - ErrNilGraph           if the graph pointer is nil.
//   - ErrUnweightedGraph    if the graph does not carry weights (use bfs instead).
//   - ErrVertexOutOfRange   if the source is outside [0, n).
//   - ErrNegativeWeight     if any edge weight is negative.
//   - ErrBadMaxDistance     if WithMaxDistance received a negative cap.
package dijkstra
