package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/dijkstra"
	"github.com/katalvlaran/grafo/huffman"
	"github.com/katalvlaran/grafo/mst"
	"github.com/katalvlaran/grafo/render"
)

// buildTriangle returns the A—B(1), B—C(2), A—C(3) fixture.
func buildTriangle() *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	return g
}

// TestSpanningTree verifies edge rows and the total line.
func TestSpanningTree(t *testing.T) {
	res, err := mst.Kruskal(buildTriangle())
	require.NoError(t, err)

	out := render.SpanningTree("kruskal", res)
	assert.Contains(t, out, "kruskal")
	assert.Contains(t, out, "A — B")
	assert.Contains(t, out, "B — C")
	assert.Contains(t, out, "total weight: 3")
	// The rejected cycle edge never appears.
	assert.NotContains(t, out, "A — C")
}

// TestDistances verifies the distance table, including the unreachable
// sentinel row.
func TestDistances(t *testing.T) {
	g := buildTriangle()
	_ = g.AddVertex("Z") // isolated

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)

	out := render.Distances(res, g.Vertices())
	assert.Contains(t, out, "shortest paths from A")
	assert.Contains(t, out, "A→B") // path column for B
	assert.Contains(t, out, "∞")   // unreachable Z
}

// TestCodeTable verifies symbol rows and the encoded-length total.
func TestCodeTable(t *testing.T) {
	ft := huffman.CountText("abracadabra")
	root, err := huffman.Build(ft)
	require.NoError(t, err)
	codes := huffman.Codes(root)

	out := render.CodeTable(ft, codes)
	assert.Contains(t, out, "'a'")
	assert.Contains(t, out, "huffman codes")
	assert.Contains(t, out, "encoded length:")
	assert.Contains(t, out, "fixed width (8 bits/symbol): 88 bits") // 11 runes
	assert.Contains(t, out, "compression:")
}

// TestHuffmanTree verifies the ASCII hierarchy: guides present, left
// child printed before right child, leaves labeled with symbols.
func TestHuffmanTree(t *testing.T) {
	ft := huffman.NewFrequencyTable()
	_ = ft.Add('x', 1)
	_ = ft.Add('y', 2)

	root, err := huffman.Build(ft)
	require.NoError(t, err)

	out := render.HuffmanTree(root)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[3]", lines[0])
	assert.Contains(t, lines[1], "├── ['x': 1]") // left = first-popped
	assert.Contains(t, lines[2], "└── ['y': 2]")

	// Nil root renders nothing.
	assert.Equal(t, "", render.HuffmanTree(nil))
}
