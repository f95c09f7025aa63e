// Package core provides the weighted-graph container shared by every
// algorithm package in grafo: an undirected, weighted multigraph whose
// vertices and edges remember their insertion order.
//
// What & Why
//
//   - What is core.Graph?
//     A minimal in-memory container: a set of labeled vertices plus a
//     multiset of undirected, non-negatively weighted edges. Parallel
//     edges between the same pair are permitted and treated as
//     independent candidates; self-loops and negative weights are
//     rejected at insertion time.
//
//   - Why insertion order?
//     The algorithm packages (mst, dijkstra) promise deterministic
//     results: Prim seeds from the first inserted vertex, Kruskal breaks
//     weight ties by original edge order, and the shared frontier breaks
//     priority ties first-in-first-out. Graph therefore returns vertices,
//     edges and adjacency in exactly the order they were added — never
//     sorted, never map-ordered.
//
// Guarantees
//
//   - AddVertex is idempotent: re-adding an existing label is a no-op.
//   - AddEdge auto-registers missing endpoints, then validates the edge:
//     u == v or weight < 0 fail with an error wrapping ErrInvalidEdge.
//   - VertexCount and EdgeCount are O(1).
//   - All read operations are safe for concurrent use; once construction
//     is done, any number of algorithm invocations may share one Graph.
//
// Error Conditions
//
//	ErrEmptyVertexID  - a vertex label is the empty string.
//	ErrVertexNotFound - an operation referenced a non-existent vertex.
//	ErrInvalidEdge    - self-loop or negative weight at insertion time.
//
// Connectivity is an input precondition for spanning-tree construction,
// not enforced here: Graph happily stores disconnected components and
// leaves detection to mst (which reports the unreached remainder).
package core
