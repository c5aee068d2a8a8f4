// Package dfs implements iterative depth-first traversal on a core.Graph.
//
// The traversal keeps an explicit frame stack instead of recursing, so the
// auxiliary memory is O(V + E) on the heap and the call stack stays flat no
// matter how deep the graph is.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) worst case for the frame stack
//
// Errors:
//
//   - ErrGraphNil           if g is nil.
//   - ErrVertexOutOfRange   if source is outside [0, n).
//   - context.Canceled      if ctx is done.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
)

// frame is a pending discovery: vertex v reached via parent.
type frame struct {
	v      int
	parent int
}

// DFS performs depth-first traversal on g starting from source.
// Returns the pre-order visit sequence and DFS-tree parents, or an error
// if aborted by context or hook. Both weighted and unweighted graphs are
// accepted; weights play no role in the traversal.
func DFS(g *core.Graph, source int, opts ...Option) (*Result, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Verify source
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: source=%d, n=%d", ErrVertexOutOfRange, source, g.N())
	}

	// 4. Initialize result and bookkeeping
	n := g.N()
	res := &Result{
		Order:  make([]int, 0, n),
		Parent: make([]int, n),
	}
	visited := make([]bool, n)
	for v := 0; v < n; v++ {
		res.Parent[v] = -1
	}

	// 5. Explicit stack replaces recursion; a vertex may sit on the stack
	//    several times and is claimed by whichever frame pops first.
	stack := make([]frame, 0, n)
	stack = append(stack, frame{v: source, parent: -1})

	for len(stack) > 0 {
		// cancellation check (once per pop)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[top.v] {
			continue
		}
		visited[top.v] = true
		res.Parent[top.v] = top.parent
		res.Order = append(res.Order, top.v)

		if err := o.OnVisit(top.v); err != nil {
			return nil, fmt.Errorf("dfs: OnVisit error at %d: %w", top.v, err)
		}

		nbrs, err := g.NeighborIDs(top.v)
		if err != nil {
			return nil, fmt.Errorf("dfs: failed to get neighbors of %d: %w", top.v, err)
		}
		// Push in reverse so the first-inserted neighbor is explored first,
		// matching the order a recursive traversal would produce.
		for i := len(nbrs) - 1; i >= 0; i-- {
			nbr := nbrs[i]
			if visited[nbr] || !o.FilterNeighbor(top.v, nbr) {
				continue
			}
			stack = append(stack, frame{v: nbr, parent: top.v})
		}
	}

	return res, nil
}
