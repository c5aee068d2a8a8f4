package dsu

import (
	"errors"
	"fmt"
)

// Sentinel errors for DSU operations.
var (
	// ErrBadSize indicates a negative element count was passed to New.
	ErrBadSize = errors.New("dsu: element count must be non-negative")

	// ErrIndexOutOfRange indicates an element index outside [0, n).
	ErrIndexOutOfRange = errors.New("dsu: element index out of range")
)

// DSU maintains a partition of the elements 0..n-1 into disjoint sets,
// supporting near-constant amortized Find and Union through path halving
// and union by rank.
//
// A DSU is single-owner state: wrap it in your own synchronization before
// sharing it across goroutines.
type DSU struct {
	parent []int // parent[x] = x for roots
	rank   []int // rank upper-bounds tree height; meaningful for roots only
	size   []int // set cardinality; meaningful for roots only
	count  int   // number of live sets
}

// New creates a DSU over n singleton sets {0}, {1}, …, {n-1}.
// Returns ErrBadSize if n is negative.
// Complexity: O(n)
func New(n int) (*DSU, error) {
	if n < 0 {
		return nil, ErrBadSize
	}
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := 0; i < n; i++ {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d, nil
}

// Len returns the number of elements the DSU was created with.
func (d *DSU) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets currently alive.
// It only ever decreases (through Union) or stays the same.
func (d *DSU) Count() int { return d.count }

// Find returns the representative of the set containing x, compressing the
// walked path as a side effect (each visited node is repointed to its
// grandparent, halving the path for future lookups).
// Returns ErrIndexOutOfRange if x lies outside [0, n).
// Complexity: O(α(n)) amortized.
func (d *DSU) Find(x int) (int, error) {
	if x < 0 || x >= len(d.parent) {
		return 0, fmt.Errorf("%w: x=%d, n=%d", ErrIndexOutOfRange, x, len(d.parent))
	}
	// Walk up until the root (parent[x] == x).
	for d.parent[x] != x {
		// Path halving: make x point to its grandparent.
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x, nil
}

// Union merges the sets containing a and b. Returns false (no-op) if they
// already share a set, true if two sets became one.
//
// Merge policy: union by rank — the root of smaller rank is attached under
// the root of larger rank; on equal ranks the root of a's set survives and
// its rank grows by one. Only roots are ever re-parented, so Find always
// terminates.
// Returns ErrIndexOutOfRange if a or b lies outside [0, n).
// Complexity: O(α(n)) amortized.
func (d *DSU) Union(a, b int) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}
	if ra == rb {
		// Already in the same set; no action needed.
		return false, nil
	}

	// Attach smaller-rank tree under larger-rank root.
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
	d.count--

	return true, nil
}

// Connected reports whether a and b belong to the same set.
// Returns ErrIndexOutOfRange if a or b lies outside [0, n).
func (d *DSU) Connected(a, b int) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// SizeOf returns the cardinality of the set containing x.
// Returns ErrIndexOutOfRange if x lies outside [0, n).
func (d *DSU) SizeOf(x int) (int, error) {
	root, err := d.Find(x)
	if err != nil {
		return 0, err
	}

	return d.size[root], nil
}

// Groups returns the current partition as one slice of members per set,
// members in ascending order, groups ordered by their smallest member.
// Complexity: O(n α(n))
func (d *DSU) Groups() [][]int {
	members := make(map[int][]int, d.count)
	order := make([]int, 0, d.count)
	for x := 0; x < len(d.parent); x++ {
		root, _ := d.Find(x)
		if _, ok := members[root]; !ok {
			order = append(order, root)
		}
		members[root] = append(members[root], x)
	}

	groups := make([][]int, 0, len(order))
	for _, root := range order {
		groups = append(groups, members[root])
	}

	return groups
}
