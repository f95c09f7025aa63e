// Package frontier provides the min-priority queue shared by the
// spanning-tree (mst) and shortest-path (dijkstra) engines.
//
// What & Why
//
//   - What is a Frontier?
//     A queue of (priority, vertex, via-edge) entries ordered by
//     ascending priority. Both Prim's growth loop and Dijkstra's
//     relaxation loop pop the cheapest candidate vertex next; the
//     optional via-edge records how the vertex was reached (Prim's tree
//     edge, absent for Dijkstra's distance-only entries).
//
//   - Why "lazy deletion"?
//     Decrease-key is implemented by pushing a fresh, cheaper entry
//     rather than mutating the heap in place. Stale duplicates for an
//     already-finalized vertex remain in the queue and are skipped by
//     the popping algorithm via its own finalized-set check. This keeps
//     the structure a plain binary heap — no indexed/addressable heap
//     machinery is needed.
//
// Determinism
//
// Equal priorities pop in insertion order (first pushed, first popped),
// enforced by a monotone sequence number stamped on every Push. This is
// part of the correctness-adjacent contract: given the same input graph,
// Prim and Dijkstra always reproduce the same result byte for byte.
//
// Error Conditions
//
//	ErrEmptyFrontier - PopMin on an empty queue. The algorithm packages
//	                   guard their loops with Len() > 0, so this reaching
//	                   an external caller indicates a logic error, not a
//	                   recoverable condition.
package frontier
