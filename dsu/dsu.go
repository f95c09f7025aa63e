// Package dsu: DisjointSet implementation.
//
// parent and rank are plain maps keyed by element label. Find performs
// iterative path compression (grandparent pointer hops), so trees stay
// shallow without recursion.

package dsu

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownElement indicates Find or Union referenced an element that
// was never registered via MakeSet.
var ErrUnknownElement = errors.New("dsu: unknown element")

// DisjointSet partitions string labels into disjoint sets.
//
// The zero value is not usable; construct with New. DisjointSet is a
// mutable working structure scoped to a single algorithm invocation and
// is not safe for concurrent use.
type DisjointSet struct {
	parent map[string]string // element → parent; roots point to themselves
	rank   map[string]int    // root → rank (upper bound on tree height)
	count  int               // number of disjoint sets currently held
}

// New constructs an empty DisjointSet.
// Complexity: O(1).
func New() *DisjointSet {
	return &DisjointSet{
		parent: make(map[string]string),
		rank:   make(map[string]int),
	}
}

// MakeSet registers v as its own singleton set.
// Re-registering an existing element is a no-op (idempotent).
// Complexity: O(1).
func (d *DisjointSet) MakeSet(v string) {
	if _, exists := d.parent[v]; exists {
		return // already present; do not reset its set membership
	}
	d.parent[v] = v
	d.rank[v] = 0
	d.count++
}

// Find returns the representative of the set containing v, applying
// path compression: every node visited on the way up is repointed
// toward the root, so subsequent Finds on those nodes are O(1).
// Returns ErrUnknownElement if v was never registered.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(v string) (string, error) {
	if _, exists := d.parent[v]; !exists {
		return "", fmt.Errorf("%w: %q", ErrUnknownElement, v)
	}
	// Walk up until the root (parent[v] == v), halving the path.
	for d.parent[v] != v {
		d.parent[v] = d.parent[d.parent[v]] // point v to its grandparent
		v = d.parent[v]
	}

	return v, nil
}

// Union merges the sets containing u and v.
//
// Returns true when the sets were previously distinct (a merge
// happened), false when u and v were already connected — the direct
// cycle signal for Kruskal. Rank rule: the lower-rank root is attached
// under the higher-rank root; on equal ranks u's root is attached under
// v's root and v's root gains one rank.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(u, v string) (bool, error) {
	rootU, err := d.Find(u)
	if err != nil {
		return false, err
	}
	rootV, err := d.Find(v)
	if err != nil {
		return false, err
	}
	if rootU == rootV {
		return false, nil // already in the same set: would form a cycle
	}

	// Attach by rank; equal ranks attach rootU under rootV.
	switch {
	case d.rank[rootU] > d.rank[rootV]:
		d.parent[rootV] = rootU
	case d.rank[rootU] < d.rank[rootV]:
		d.parent[rootU] = rootV
	default:
		d.parent[rootU] = rootV
		d.rank[rootV]++
	}
	d.count--

	return true, nil
}

// Count returns the number of disjoint sets currently held.
// Complexity: O(1).
func (d *DisjointSet) Count() int {
	return d.count
}

// Groups returns the current partition as representative → sorted
// members. Used by Kruskal's disconnection report; sorting makes the
// report reproducible.
// Complexity: O(n·α(n) + n log n).
func (d *DisjointSet) Groups() map[string][]string {
	groups := make(map[string][]string, d.count)
	for v := range d.parent {
		root, _ := d.Find(v) // v is registered, Find cannot fail
		groups[root] = append(groups[root], v)
	}
	for _, members := range groups {
		sort.Strings(members)
	}

	return groups
}
