// Package dijkstra implements Dijkstra's single-source shortest-path
// algorithm on weighted graphs with non-negative edge weights.
//
// What & Why
//
//   - Dijkstra computes the minimum-cost path from one source vertex to
//     every reachable vertex, processing vertices in order of increasing
//     distance via the shared frontier package and relaxing incident
//     edges as each vertex is finalized.
//
//   - The Result maps every vertex to its distance and predecessor.
//     Vertices the source cannot reach keep the Unreachable sentinel
//     distance and have no predecessor entry; PathTo reconstructs the
//     full vertex sequence for any reachable target.
//
// Complexity
//
//   - Time:  O((V + E) log V) — each vertex is extracted at most once,
//     each relaxation may push one frontier entry, each heap operation
//     costs O(log N) with N ≤ V + E.
//   - Space: O(V + E) — distance/predecessor maps plus worst-case
//     frontier growth under lazy decrease-key.
//
// Determinism
//
// Relaxation uses strict improvement (candidate < current): ties
// between equal candidate distances keep whichever relaxation happened
// first, and the frontier's FIFO tie rule fixes the pop order of equal
// distances. The same graph always yields the same Result.
//
// Error Conditions
//
//	ErrEmptySource    - no source vertex was provided.
//	ErrNilGraph       - the graph pointer is nil.
//	ErrVertexNotFound - the source vertex does not exist in the graph.
//	ErrNegativeWeight - a negative edge weight was detected by the
//	                    upfront O(E) scan; the engine fails fast before
//	                    any relaxation work, never partially computes.
package dijkstra
