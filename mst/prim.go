// Package mst: Prim's algorithm, driven by the shared frontier package.
package mst

import (
	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/frontier"
)

// Prim computes the MST of an undirected, weighted graph by growing the
// tree outward from a seed vertex using a lazy min-priority frontier.
//
// root selects the seed; the empty string means "first vertex in the
// graph's insertion order", which keeps the default fully deterministic.
//
// Steps:
//  1. Validate: graph != nil (ErrNilGraph), at least one vertex
//     (ErrNoVertices), root exists when given (core.ErrVertexNotFound).
//  2. Seed the frontier with (priority 0, root, no provenance).
//  3. Repeatedly pop the minimum entry. A vertex already finalized is a
//     stale duplicate — discard and continue. Otherwise finalize it;
//     if it was reached via a recorded edge, append that edge to the
//     tree and add its weight.
//  4. For every edge incident to the newly finalized vertex whose far
//     endpoint is not yet finalized, push (edge weight, endpoint, edge).
//     Always push — never attempt an in-place update; the frontier's
//     lazy-deletion contract handles the duplicates.
//  5. When the frontier empties, every reachable vertex has been
//     finalized. If any vertex was never reached, the graph is
//     disconnected: return a *DisconnectedError listing the unreached
//     vertices instead of a partial tree.
//
// Ties between equal-weight candidate edges follow frontier insertion
// order (first enqueued, first popped).
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) (Result, error) {
	// 1. Validate the graph pointer before touching it.
	if graph == nil {
		return Result{}, ErrNilGraph
	}

	// Vertices() is insertion-ordered; the first element is the
	// deterministic default seed.
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return Result{}, ErrNoVertices
	}
	if root == "" {
		root = vertices[0]
	} else if !graph.HasVertex(root) {
		return Result{}, core.ErrVertexNotFound
	}

	// Trivial case: a single vertex spans itself with zero edges.
	if len(vertices) == 1 {
		return Result{Edges: []core.Edge{}}, nil
	}

	// 2. Working state: finalized set, result accumulator, frontier.
	n := len(vertices)
	finalized := make(map[string]bool, n)
	res := Result{Edges: make([]core.Edge, 0, n-1)}
	f := frontier.New()

	// Seed entry carries no provenance: the root contributes no edge.
	f.Push(0, root, nil)

	// 3.–4. Main loop: run the frontier dry.
	for f.Len() > 0 {
		entry, err := f.PopMin()
		if err != nil {
			// Unreachable under the Len() guard; surface it anyway.
			return Result{}, err
		}

		// Stale duplicate for an already-finalized vertex: discard.
		if finalized[entry.Vertex] {
			continue
		}
		finalized[entry.Vertex] = true

		// A recorded provenance edge joins the tree.
		if entry.Via != nil {
			res.Edges = append(res.Edges, *entry.Via)
			res.TotalWeight += entry.Via.Weight
		}

		// Push every incident edge leading out of the tree.
		incident, err := graph.Neighbors(entry.Vertex)
		if err != nil {
			return Result{}, err
		}
		for _, e := range incident {
			if other := e.Other(entry.Vertex); !finalized[other] {
				f.Push(e.Weight, other, e)
			}
		}
	}

	// 5. Anything never finalized is unreachable from the seed.
	if len(finalized) < n {
		unreached := make([]string, 0, n-len(finalized))
		for _, v := range vertices { // insertion order, reproducible
			if !finalized[v] {
				unreached = append(unreached, v)
			}
		}

		return Result{}, &DisconnectedError{Unreached: unreached}
	}

	return res, nil
}
