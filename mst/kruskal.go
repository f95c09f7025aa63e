// Package mst: Kruskal's algorithm, driven by the dsu package.
package mst

import (
	"sort"

	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/dsu"
)

// Kruskal computes the MST of an undirected, weighted graph via a
// global edge sort plus disjoint-set cycle rejection.
//
// Steps:
//  1. Validate: graph != nil (ErrNilGraph), at least one vertex
//     (ErrNoVertices). A single vertex yields a trivial empty Result.
//  2. Copy all edges and sort ascending by weight with sort.SliceStable,
//     so equal weights keep their original insertion order — the
//     deterministic tie-break.
//  3. MakeSet every vertex in a fresh DisjointSet.
//  4. Iterate the sorted edges; Union(u, v) == true means the endpoints
//     were previously disconnected: accept the edge. false means the
//     edge would close a cycle: reject it.
//  5. Stop early once |V|−1 edges are accepted (pure optimization).
//  6. If fewer than |V|−1 edges were accepted after exhausting the
//     list, the graph is disconnected: return a *DisconnectedError
//     carrying the residual components instead of a partial tree.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(V + E).
func Kruskal(graph *core.Graph) (Result, error) {
	// 1. Validation ladder.
	if graph == nil {
		return Result{}, ErrNilGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return Result{}, ErrNoVertices
	}
	if len(vertices) == 1 {
		return Result{Edges: []core.Edge{}}, nil
	}

	// 2. Copy and stable-sort the edges. graph.Edges() is insertion-
	//    ordered, so the stable sort's tie behavior is reproducible.
	edges := graph.Edges()
	sorted := make([]*core.Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 3. Fresh disjoint-set per invocation; no state leaks across calls.
	sets := dsu.New()
	for _, v := range vertices {
		sets.MakeSet(v)
	}

	// 4.–5. Accept edges that merge two components.
	n := len(vertices)
	res := Result{Edges: make([]core.Edge, 0, n-1)}
	for _, e := range sorted {
		merged, err := sets.Union(e.U, e.V)
		if err != nil {
			// Every endpoint was registered above, so this path only
			// fires on a dsu contract violation.
			return Result{}, err
		}
		if !merged {
			continue // cycle-forming edge
		}
		res.Edges = append(res.Edges, *e)
		res.TotalWeight += e.Weight
		if len(res.Edges) == n-1 {
			break // spanning tree complete
		}
	}

	// 6. Fewer than |V|−1 acceptances means multiple components remain.
	if len(res.Edges) < n-1 {
		return Result{}, &DisconnectedError{Groups: sets.Groups()}
	}

	return res, nil
}
