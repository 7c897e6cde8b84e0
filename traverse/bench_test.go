package traverse_test

import (
	"fmt"
	"testing"

	"github.com/vaskorr/collections/graph"
	"github.com/vaskorr/collections/traverse"
)

// gridView builds an n×n undirected grid with unit weights.
func gridView(b *testing.B, n int, weighted bool) graph.View {
	b.Helper()
	opts := []graph.Option{}
	w := 0.0
	if weighted {
		opts = append(opts, graph.WithWeighted())
		w = 1.0
	}
	v, err := graph.New(graph.AdjacencyList, opts...)
	if err != nil {
		b.Fatal(err)
	}
	id := func(r, c int) string { return fmt.Sprintf("%03d:%03d", r, c) }
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if r+1 < n {
				_ = v.AddEdge(id(r, c), id(r+1, c), w)
			}
			if c+1 < n {
				_ = v.AddEdge(id(r, c), id(r, c+1), w)
			}
		}
	}

	return v
}

func BenchmarkBFS(b *testing.B) {
	v := gridView(b, 50, false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.BFS(v, "000:000"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDFS(b *testing.B) {
	v := gridView(b, 50, false)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.DFS(v, "000:000"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDijkstra(b *testing.B) {
	v := gridView(b, 50, true)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := traverse.Dijkstra(v, "000:000"); err != nil {
			b.Fatal(err)
		}
	}
}
