package dfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dfs"
)

// TestDFS_Errors verifies invalid input handling.
func TestDFS_Errors(t *testing.T) {
	if _, err := dfs.DFS(nil, 0); !errors.Is(err, dfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g, _ := core.NewGraph(2)
	if _, err := dfs.DFS(g, 5); !errors.Is(err, dfs.ErrVertexOutOfRange) {
		t.Errorf("source=5: want ErrVertexOutOfRange, got %v", err)
	}
}

// TestDFS_PreOrder checks recursive-equivalent ordering on a small tree.
func TestDFS_PreOrder(t *testing.T) {
	//	     0
	//	    / \
	//	   1   4
	//	  / \
	//	 2   3
	g, _ := core.NewGraph(5, core.WithDirected(true))
	_ = g.AddEdge(0, 1, 0)
	_ = g.AddEdge(0, 4, 0)
	_ = g.AddEdge(1, 2, 0)
	_ = g.AddEdge(1, 3, 0)

	res, err := dfs.DFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 3, 4}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{-1, 0, 1, 1, 0}; !reflect.DeepEqual(res.Parent, want) {
		t.Errorf("Parent = %v; want %v", res.Parent, want)
	}
}

// TestDFS_DeepChain guards the no-recursion property: a path long enough
// to overflow a call stack must traverse fine with the explicit stack.
func TestDFS_DeepChain(t *testing.T) {
	const n = 200000
	g, _ := core.NewGraph(n)
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(i, i+1, 0)
	}
	res, err := dfs.DFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != n {
		t.Errorf("visited %d vertices; want %d", len(res.Order), n)
	}
	if res.Order[n-1] != n-1 {
		t.Errorf("last visited = %d; want %d", res.Order[n-1], n-1)
	}
}

// TestDFS_HookAbort verifies OnVisit errors abort the traversal.
func TestDFS_HookAbort(t *testing.T) {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 0)
	_ = g.AddEdge(1, 2, 0)
	boom := errors.New("boom")
	_, err := dfs.DFS(g, 0, dfs.WithOnVisit(func(v int) error {
		if v == 1 {
			return boom
		}
		return nil
	}))
	if !errors.Is(err, boom) {
		t.Errorf("want wrapped hook error, got %v", err)
	}
}

// TestDFS_ContextCancelled verifies a cancelled context stops the traversal.
func TestDFS_ContextCancelled(t *testing.T) {
	g, _ := core.NewGraph(2)
	_ = g.AddEdge(0, 1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := dfs.DFS(g, 0, dfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestDFS_FilterNeighbor prunes a branch entirely.
func TestDFS_FilterNeighbor(t *testing.T) {
	g, _ := core.NewGraph(4, core.WithDirected(true))
	_ = g.AddEdge(0, 1, 0)
	_ = g.AddEdge(0, 2, 0)
	_ = g.AddEdge(2, 3, 0)
	res, err := dfs.DFS(g, 0, dfs.WithFilterNeighbor(func(curr, neighbor int) bool {
		return neighbor != 2
	}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Parent[3] != -1 {
		t.Errorf("Parent[3] = %d; want -1 (pruned)", res.Parent[3])
	}
}
