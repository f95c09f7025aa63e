// Package mst provides two algorithms for computing the Minimum
// Spanning Tree (MST) of an undirected, weighted *core.Graph: Prim's
// algorithm and Kruskal's algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST
//     is a subset T ⊆ E that connects all vertices in V with minimal
//     total edge weight. Both algorithms here produce a Result holding
//     the selected edges (in selection order) and their weight sum.
//
//   - Prim: grows a single tree outward from a seed vertex, using the
//     shared frontier package as a lazy min-priority queue of candidate
//     edges. Time O(E log V), space O(V + E).
//
//   - Kruskal: stable-sorts all edges by weight and accepts each edge
//     whose endpoints the dsu package reports as not yet connected.
//     Time O(E log E + α(V)·E), space O(V + E).
//
// Determinism
//
// Given the same construction order of a graph, both algorithms are
// fully reproducible:
//
//   - Prim seeds from the first inserted vertex (unless WithRoot
//     overrides it) and breaks equal-weight ties first-enqueued-first-
//     popped via the frontier's FIFO tie rule.
//   - Kruskal stable-sorts core.Edges() (insertion order), so equal
//     weights keep their original relative order.
//   - Parallel edges between the same pair are independent candidates;
//     the lighter copy is naturally selected first.
//
// Error Conditions
//
//	ErrNilGraph           - graph pointer is nil.
//	ErrNoVertices         - graph holds no vertices at all.
//	ErrUnknownMethod      - Compute dispatch received an unknown method.
//	core.ErrVertexNotFound - Prim's WithRoot named a missing vertex.
//	ErrDisconnected       - the graph does not span: returned inside a
//	                        *DisconnectedError carrying the unreached
//	                        vertices (Prim) or the residual components
//	                        (Kruskal), never alongside a partial tree.
//
// Note that disconnection is detected and reported, not silently
// tolerated: a Result is returned only when it spans every vertex.
package mst
