package bfs_test

import (
	"testing"

	"github.com/katalvlaran/pathfind/bfs"
	"github.com/katalvlaran/pathfind/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	// build a chain of N+1 vertices, N edges
	g, _ := core.NewGraph(N + 1)
	for i := 0; i < N; i++ {
		_ = g.AddEdge(i, i+1, 0)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_BinaryTree runs BFS on a complete binary tree of depth D (~2^D−1 nodes).
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 vertices, 1022 edges
	nodeCount := (1 << depth) - 1

	g, _ := core.NewGraph(nodeCount)
	// connect parent → children (0-based heap layout)
	for i := 0; 2*i+2 < nodeCount; i++ {
		_ = g.AddEdge(i, 2*i+1, 0)
		_ = g.AddEdge(i, 2*i+2, 0)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*nodeCount - 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
