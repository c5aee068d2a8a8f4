package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/pathfind/bfs"
	"github.com/katalvlaran/pathfind/core"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid (vertex id = row*3+col).
// The start is the top-left corner; frontiers follow Manhattan distance.
func ExampleBFS() {
	g, _ := core.NewGraph(9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := i*3 + j
			// connect to right neighbor
			if j+1 < 3 {
				g.AddEdge(v, v+1, 0)
			}
			// connect to down neighbor
			if i+1 < 3 {
				g.AddEdge(v, v+3, 0)
			}
		}
	}

	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Order)
	fmt.Println(res.Dist)
	// Output:
	// [0 1 3 2 4 6 5 7 8]
	// [0 1 2 1 2 3 2 3 4]
}

// ExampleResult_PathTo finds the fewest-hop route through a small network.
func ExampleResult_PathTo() {
	//	0───1───2
	//	│       │
	//	3───────4
	g, _ := core.NewGraph(5)
	g.AddEdge(0, 1, 0)
	g.AddEdge(1, 2, 0)
	g.AddEdge(0, 3, 0)
	g.AddEdge(3, 4, 0)
	g.AddEdge(2, 4, 0)

	res, _ := bfs.BFS(g, 0)
	path, _ := res.PathTo(4)
	fmt.Println(path)
	// Output:
	// [0 3 4]
}
