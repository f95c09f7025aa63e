// Package dijkstra: algorithm implementation on the shared frontier.
package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/frontier"
)

// Dijkstra computes shortest distances from the source vertex to every
// vertex of the weighted graph g.
//
// Preconditions and validation (in order):
//  1. A source must be provided via Source(id) (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain the source (ErrVertexNotFound).
//  4. InfEdgeThreshold must be positive (ErrBadInfThreshold).
//  5. No edge may carry a negative weight (ErrNegativeWeight) — checked
//     once over all edges before any relaxation begins, so a violated
//     input never yields partially computed distances.
//
// Algorithm:
//   - Initialize every distance to Unreachable, the source to 0, and
//     seed the frontier with (0, source).
//   - Repeatedly pop the minimum entry; stale entries for finalized
//     vertices are discarded (lazy deletion). Otherwise finalize the
//     vertex and relax each incident edge: candidate = dist[u] + w;
//     strictly shorter candidates update dist/prev and push a fresh
//     frontier entry. Equal candidates are NOT replaced, so the first
//     relaxation wins ties.
//   - Edges weighing InfEdgeThreshold or more are impassable walls and
//     are never traversed. Independently, a candidate that would reach
//     or pass the Unreachable sentinel is not a representable distance:
//     the relaxation is skipped instead of overflowing the sum, so a
//     vertex whose every path weighs at least Unreachable stays
//     unreachable.
//   - Terminates when the frontier empties; vertices never finalized
//     keep the Unreachable sentinel and no predecessor.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (Result, error) {
	// 1) Build options from the functional arguments.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return Result{}, ErrEmptySource
	}

	// 2) Validate the graph pointer.
	if g == nil {
		return Result{}, ErrNilGraph
	}

	// 3) Validate the source exists.
	if !g.HasVertex(cfg.Source) {
		return Result{}, ErrVertexNotFound
	}

	// 4) Validate the wall threshold.
	if cfg.InfEdgeThreshold <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrBadInfThreshold, cfg.InfEdgeThreshold)
	}

	// 5) Pre-scan all edges for negative weights. The core container
	//    already rejects them at insertion, but the engine's contract
	//    is checked here once, independently of how g was built.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return Result{}, fmt.Errorf("%w: edge %s—%s weight=%d", ErrNegativeWeight, e.U, e.V, e.Weight)
		}
	}

	// 6) Working state, fresh per invocation.
	vertices := g.Vertices()
	res := Result{
		Source: cfg.Source,
		Dist:   make(map[string]int64, len(vertices)),
		Prev:   make(map[string]string, len(vertices)),
	}
	for _, v := range vertices {
		res.Dist[v] = Unreachable
	}
	res.Dist[cfg.Source] = 0

	finalized := make(map[string]bool, len(vertices))
	f := frontier.New()
	f.Push(0, cfg.Source, nil)

	// 7) Main loop: run the frontier dry.
	for f.Len() > 0 {
		entry, err := f.PopMin()
		if err != nil {
			// Unreachable under the Len() guard; surface it anyway.
			return Result{}, err
		}
		u := entry.Vertex

		// Stale duplicate for a finalized vertex: discard.
		if finalized[u] {
			continue
		}
		finalized[u] = true

		// Relax every edge incident to u.
		incident, err := g.Neighbors(u)
		if err != nil {
			return Result{}, fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
		}
		for _, e := range incident {
			v := e.Other(u)
			if finalized[v] {
				continue // its distance is already final
			}
			// Impassable wall: never traverse edges at or above the
			// threshold.
			if e.Weight >= cfg.InfEdgeThreshold {
				continue
			}
			// Saturation guard: a candidate reaching the Unreachable
			// sentinel is not a representable distance, and letting the
			// sum overflow would fabricate a negative one.
			if e.Weight > Unreachable-1-res.Dist[u] {
				continue
			}
			candidate := res.Dist[u] + e.Weight
			// Strict improvement only: "<" keeps the first relaxation
			// on equal candidate distances.
			if candidate >= res.Dist[v] {
				continue
			}
			res.Dist[v] = candidate
			res.Prev[v] = u
			f.Push(candidate, v, nil)
		}
	}

	return res, nil
}
