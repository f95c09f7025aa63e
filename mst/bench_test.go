package mst_test

import (
	"testing"

	"github.com/katalvlaran/grafo/mst"
)

// BenchmarkKruskal measures performance on a random graph with 500
// vertices and 2000 edges.
func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(500, 2000) // pre-build graph once
	b.ResetTimer()                   // exclude graph construction
	for i := 0; i < b.N; i++ {
		_, _ = mst.Kruskal(g)
	}
}

// BenchmarkPrim measures performance on the same shape, always seeding
// from "V0".
func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = mst.Prim(g, "V0")
	}
}
