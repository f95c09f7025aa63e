// Package dsu implements a disjoint-set (union-find) structure over
// string vertex labels, with path compression and union by rank.
//
// What & Why
//
//   - What is a disjoint-set?
//     A partition of elements into non-overlapping sets supporting two
//     near-constant-time operations: Find (which set does v belong to?)
//     and Union (merge the sets of u and v). Each set is named by a
//     representative element.
//
//   - Why does grafo need one?
//     Kruskal's MST builder accepts an edge exactly when its endpoints
//     lie in different sets; Union doubles as the cycle detector by
//     reporting whether a merge actually happened. The residual set
//     count and grouping also drive the disconnected-graph report.
//
// Guarantees
//
//   - Every added element belongs to exactly one set at all times.
//   - Find is idempotent modulo path compression: the returned
//     representative is stable across repeated calls absent an
//     intervening Union.
//   - Union attaches the lower-rank root under the higher-rank root;
//     on equal ranks the first argument's root goes under the second's,
//     keeping merge results deterministic.
//   - Amortized cost per operation is O(α(n)) — effectively constant.
//
// Error Conditions
//
//	ErrUnknownElement - Find/Union referenced an element never passed
//	                    to MakeSet.
package dsu
