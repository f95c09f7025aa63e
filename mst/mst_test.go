package mst_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/mst"
)

// buildTriangle constructs a simple weighted triangle graph:
//
//	A—B (weight 1), B—C (weight 2), A—C (weight 3).
//
// Its MST consists of edges A—B and B—C with total weight 3.
func buildTriangle() *core.Graph {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("A", "C", 3)

	return g
}

// buildHouse constructs the 6-vertex reference graph used across the
// algorithm packages:
//
//	(A,B,4) (A,C,2) (B,C,1) (B,D,5) (C,D,8)
//	(C,E,10) (D,E,2) (D,F,6) (E,F,3)
//
// Its unique MST is {B-C:1, A-C:2, D-E:2, E-F:3, B-D:5}, total 13.
func buildHouse() *core.Graph {
	g := core.NewGraph()
	for _, e := range []struct {
		U, V string
		W    int64
	}{
		{"A", "B", 4}, {"A", "C", 2}, {"B", "C", 1},
		{"B", "D", 5}, {"C", "D", 8}, {"C", "E", 10},
		{"D", "E", 2}, {"D", "F", 6}, {"E", "F", 3},
	} {
		_, _ = g.AddEdge(e.U, e.V, e.W)
	}

	return g
}

// buildMediumGraph creates a connected weighted graph with n vertices
// and edgesCount total edges: a random-weight chain for connectivity
// plus extra random edges. Seeded deterministically for repeatability.
func buildMediumGraph(n, edgesCount int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		_ = g.AddVertex(fmt.Sprintf("V%d", i))
	}
	r := rand.New(rand.NewSource(42))

	// Chain V0—V1—...—V(n-1) guarantees connectivity.
	for i := 1; i < n; i++ {
		_, _ = g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), int64(1+r.Intn(10)))
	}
	// Extra random edges; parallel copies are fine (multigraph).
	for i := 0; i < edgesCount-(n-1); {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue // AddEdge would reject the self-loop
		}
		_, _ = g.AddEdge(fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v), int64(1+r.Intn(100)))
		i++
	}

	return g
}

// edgeKey normalizes an undirected edge to a canonical "U-V" string.
func edgeKey(e core.Edge) string {
	u, v := e.U, e.V
	if u > v {
		u, v = v, u
	}

	return fmt.Sprintf("%s-%s", u, v)
}

// TestValidation_NilAndEmpty verifies the shared validation ladder.
func TestValidation_NilAndEmpty(t *testing.T) {
	// Nil graph.
	_, errP := mst.Prim(nil, "")
	assert.ErrorIs(t, errP, mst.ErrNilGraph)
	_, errK := mst.Kruskal(nil)
	assert.ErrorIs(t, errK, mst.ErrNilGraph)

	// Empty graph: no vertices at all.
	g := core.NewGraph()
	_, errP = mst.Prim(g, "")
	assert.ErrorIs(t, errP, mst.ErrNoVertices)
	_, errK = mst.Kruskal(g)
	assert.ErrorIs(t, errK, mst.ErrNoVertices)
}

// TestValidation_MissingRoot verifies that Prim rejects a root that is
// not present in the graph.
func TestValidation_MissingRoot(t *testing.T) {
	g := buildTriangle()
	_, err := mst.Prim(g, "Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestSingleVertexGraph verifies the trivial spanning tree: no edges,
// zero weight, no error, from both algorithms.
func TestSingleVertexGraph(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddVertex("X")

	resK, errK := mst.Kruskal(g)
	require.NoError(t, errK)
	assert.Empty(t, resK.Edges)
	assert.Zero(t, resK.TotalWeight)

	resP, errP := mst.Prim(g, "")
	require.NoError(t, errP)
	assert.Empty(t, resP.Edges)
	assert.Zero(t, resP.TotalWeight)
}

// TestPrim_Triangle ensures Prim picks the correct MST edges and weight.
func TestPrim_Triangle(t *testing.T) {
	res, err := mst.Prim(buildTriangle(), "")
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.TotalWeight)
	require.Len(t, res.Edges, 2)

	names := map[string]bool{}
	for _, e := range res.Edges {
		names[edgeKey(e)] = true
	}
	assert.True(t, names["A-B"], "edge A-B must be in MST")
	assert.True(t, names["B-C"], "edge B-C must be in MST")
}

// TestKruskal_Triangle ensures Kruskal picks the correct MST edges and weight.
func TestKruskal_Triangle(t *testing.T) {
	res, err := mst.Kruskal(buildTriangle())
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.TotalWeight)
	require.Len(t, res.Edges, 2)

	names := map[string]bool{}
	for _, e := range res.Edges {
		names[edgeKey(e)] = true
	}
	assert.True(t, names["A-B"], "edge A-B must be in MST")
	assert.True(t, names["B-C"], "edge B-C must be in MST")
}

// TestHouseGraph_BothAlgorithms runs the 6-vertex reference scenario:
// both algorithms must yield 5 edges with total weight 13, and because
// this graph's MST is unique, the exact same edge set.
func TestHouseGraph_BothAlgorithms(t *testing.T) {
	g := buildHouse()
	want := []string{"A-C", "B-C", "B-D", "D-E", "E-F"}

	resP, errP := mst.Prim(g, "")
	require.NoError(t, errP)
	assert.Equal(t, int64(13), resP.TotalWeight)
	require.Len(t, resP.Edges, g.VertexCount()-1)

	resK, errK := mst.Kruskal(g)
	require.NoError(t, errK)
	assert.Equal(t, int64(13), resK.TotalWeight)
	require.Len(t, resK.Edges, g.VertexCount()-1)

	var gotP, gotK []string
	for _, e := range resP.Edges {
		gotP = append(gotP, edgeKey(e))
	}
	for _, e := range resK.Edges {
		gotK = append(gotK, edgeKey(e))
	}
	assert.ElementsMatch(t, want, gotP)
	assert.ElementsMatch(t, want, gotK)
}

// TestPrim_DefaultSeed verifies the deterministic default: with no root
// given, Prim seeds from the first inserted vertex.
func TestPrim_DefaultSeed(t *testing.T) {
	g := core.NewGraph()
	// "D" is inserted first, so it is the default seed.
	_, _ = g.AddEdge("D", "A", 1)
	_, _ = g.AddEdge("A", "B", 1)

	res, err := mst.Prim(g, "")
	require.NoError(t, err)
	require.Len(t, res.Edges, 2)
	// The first selected edge must be the one incident to the seed.
	assert.Equal(t, "D-A", fmt.Sprintf("%s-%s", res.Edges[0].U, res.Edges[0].V))
}

// TestDisconnected_Prim verifies the structured disconnection report:
// unreached vertices are listed in insertion order, and no partial tree
// is returned alongside the error.
func TestDisconnected_Prim(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("X", "Y", 1) // separate island
	_ = g.AddVertex("Z")          // isolated vertex

	res, err := mst.Prim(g, "")
	assert.ErrorIs(t, err, mst.ErrDisconnected)
	assert.Empty(t, res.Edges)
	assert.Zero(t, res.TotalWeight)

	var dErr *mst.DisconnectedError
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, []string{"X", "Y", "Z"}, dErr.Unreached)
}

// TestDisconnected_Kruskal verifies the residual-component report.
func TestDisconnected_Kruskal(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("X", "Y", 1)

	_, err := mst.Kruskal(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)

	var dErr *mst.DisconnectedError
	require.ErrorAs(t, err, &dErr)
	require.Len(t, dErr.Groups, 2)

	var sizes []int
	for _, members := range dErr.Groups {
		sizes = append(sizes, len(members))
	}
	assert.ElementsMatch(t, []int{2, 2}, sizes)
}

// TestParallelEdges verifies the open-question decision: parallel edges
// are independent candidates and the lighter copy wins in both
// algorithms.
func TestParallelEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 5)
	_, _ = g.AddEdge("A", "B", 1) // lighter parallel copy

	resK, errK := mst.Kruskal(g)
	require.NoError(t, errK)
	assert.Equal(t, int64(1), resK.TotalWeight)
	require.Len(t, resK.Edges, 1)

	resP, errP := mst.Prim(g, "")
	require.NoError(t, errP)
	assert.Equal(t, int64(1), resP.TotalWeight)
	require.Len(t, resP.Edges, 1)
}

// TestAcyclicity verifies the structural property |edges| = |V| − 1 on
// connected inputs: a connected edge set of that size cannot contain a
// cycle.
func TestAcyclicity(t *testing.T) {
	g := buildMediumGraph(30, 80)

	resK, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Len(t, resK.Edges, g.VertexCount()-1)

	// Every selected edge must touch the growing vertex set exactly
	// once on its far side when replayed through a DSU-free check:
	// count distinct vertices covered by the tree edges.
	covered := map[string]struct{}{}
	for _, e := range resK.Edges {
		covered[e.U] = struct{}{}
		covered[e.V] = struct{}{}
	}
	assert.Len(t, covered, g.VertexCount())
}

// TestComparison_MediumGraph compares Prim vs. Kruskal on a larger
// seeded random graph: equal total weight (MST weight is algorithm-
// independent) and |V|−1 edges each.
func TestComparison_MediumGraph(t *testing.T) {
	g := buildMediumGraph(10, 20)

	resK, errK := mst.Kruskal(g)
	require.NoError(t, errK)
	assert.Len(t, resK.Edges, g.VertexCount()-1)

	resP, errP := mst.Prim(g, "V0")
	require.NoError(t, errP)
	assert.Len(t, resP.Edges, g.VertexCount()-1)

	assert.Equal(t, resK.TotalWeight, resP.TotalWeight)
}

// TestCompute_Dispatch verifies the Compute scaffolding and its unknown-
// method sentinel.
func TestCompute_Dispatch(t *testing.T) {
	g := buildTriangle()

	// Default options run Kruskal.
	res, err := mst.Compute(g, mst.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.TotalWeight)

	// Explicit Prim with a root.
	opts := mst.DefaultOptions()
	for _, o := range []mst.Option{mst.WithMethod(mst.MethodPrim), mst.WithRoot("C")} {
		o(&opts)
	}
	res, err = mst.Compute(g, opts)
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.TotalWeight)

	// Unknown method name.
	opts.Method = "boruvka"
	_, err = mst.Compute(g, opts)
	assert.ErrorIs(t, err, mst.ErrUnknownMethod)
}

// TestInputGraphUntouched verifies that neither algorithm mutates the
// input graph.
func TestInputGraphUntouched(t *testing.T) {
	g := buildHouse()
	before := g.Edges()

	_, _ = mst.Prim(g, "")
	_, _ = mst.Kruskal(g)

	after := g.Edges()
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, *before[i], *after[i])
	}
}
