// Package dsu provides a disjoint set union (union–find) over the dense
// element universe 0..n-1.
//
// What
//
//   - Maintains a dynamic partition of n elements into disjoint sets.
//   - Find(x) returns the set representative, compressing paths as it walks.
//   - Union(a, b) merges two sets by rank; reports whether a merge happened.
//   - Connected, Count, SizeOf, and Groups answer the usual connectivity
//     questions without extra traversal code at the call site.
//
// Why
//
//   - Connectivity and grouping problems (components, Kruskal, clustering)
//     reduce to Union/Find with near-constant amortized cost.
//
// Invariants
//
//   - Union only ever attaches one root under another root, so the parent
//     forest stays acyclic and Find always terminates.
//   - Every element belongs to exactly one set at all times; the set count
//     only decreases or stays the same, never increases.
//   - With both path halving and union by rank every operation runs in
//     O(α(n)) amortized, effectively constant.
//
// The structure is fixed-size: created for n elements, it never grows or
// shrinks. Out-of-range indices fail fast with ErrIndexOutOfRange.
package dsu
