package bfs_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlkit/bfs"
	"github.com/katalvlaran/lvlkit/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		g.AddEdge(i, i+1)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2*N + 1))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_Grid runs BFS on an M×M grid (M² nodes, ≈2*M*(M−1) edges).
func BenchmarkBFS_Grid(b *testing.B) {
	const M = 100
	g := core.NewGraph()
	for i := 0; i < M; i++ {
		for j := 0; j < M; j++ {
			id := i*M + j
			if i+1 < M {
				g.AddEdge(id, id+M)
			}
			if j+1 < M {
				g.AddEdge(id, id+1)
			}
		}
	}

	b.ReportAllocs()
	b.SetBytes(int64(M*M + 2*M*(M-1)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_RandomSparse measures BFS on a sparse random graph.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 10000

	rnd := rand.New(rand.NewSource(42))
	g := core.NewGraph(core.WithCapacityHint(V))
	for k := 0; k < E; k++ {
		g.AddEdge(rnd.Intn(V), rnd.Intn(V))
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = bfs.Walk(g, 0, nil)
	}
}
