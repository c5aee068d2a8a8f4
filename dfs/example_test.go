package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/dfs"
)

// ExampleDFS walks a small directory-like tree in pre-order.
func ExampleDFS() {
	//	     0
	//	   / | \
	//	  1  4  5
	//	 / \
	//	2   3
	g, _ := core.NewGraph(6, core.WithDirected(true))
	g.AddEdge(0, 1, 0)
	g.AddEdge(0, 4, 0)
	g.AddEdge(0, 5, 0)
	g.AddEdge(1, 2, 0)
	g.AddEdge(1, 3, 0)

	res, _ := dfs.DFS(g, 0)
	fmt.Println(res.Order)
	// Output:
	// [0 1 2 3 4 5]
}
