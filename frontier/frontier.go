// Package frontier: Frontier implementation on container/heap.
//
// The heap orders by (Priority, seq): seq is a monotone counter stamped
// at Push time, so ties between equal priorities resolve
// first-in-first-out regardless of heap internals.

package frontier

import (
	"container/heap"
	"errors"

	"github.com/katalvlaran/grafo/core"
)

// ErrEmptyFrontier indicates PopMin was called on an empty Frontier.
var ErrEmptyFrontier = errors.New("frontier: pop from empty frontier")

// Entry is one candidate in the frontier: a vertex, the priority it was
// queued at, and optionally the edge through which it was reached.
type Entry struct {
	// Priority is the ordering key (edge weight for Prim, tentative
	// distance for Dijkstra). Smaller pops first.
	Priority int64

	// Vertex is the candidate vertex label.
	Vertex string

	// Via is the edge that produced this candidate, or nil when the
	// entry has no provenance (a seed entry, or a distance-only push).
	Via *core.Edge

	seq uint64 // insertion stamp for FIFO tie-breaking
}

// Frontier is a min-priority queue with lazy deletion semantics.
//
// Duplicate pushes for the same vertex are expected: the cheaper entry
// pops first and the popping algorithm discards the stale remainder via
// its finalized-set check. Frontier is a mutable working structure
// scoped to a single algorithm invocation; it is not safe for
// concurrent use.
type Frontier struct {
	h       entryHeap
	nextSeq uint64
}

// New constructs an empty Frontier.
// Complexity: O(1).
func New() *Frontier {
	f := &Frontier{}
	heap.Init(&f.h)

	return f
}

// Push inserts a candidate entry. Re-pushing a vertex already queued is
// the lazy decrease-key: the new entry competes independently and the
// stale one is skipped later at pop time.
// Complexity: O(log n).
func (f *Frontier) Push(priority int64, vertex string, via *core.Edge) {
	f.nextSeq++
	heap.Push(&f.h, Entry{
		Priority: priority,
		Vertex:   vertex,
		Via:      via,
		seq:      f.nextSeq,
	})
}

// PopMin removes and returns the entry with the smallest priority,
// breaking ties by insertion order (first pushed wins).
// Returns ErrEmptyFrontier when the frontier is empty; callers are
// expected to guard with Len() > 0 and treat the error as a logic bug.
// Complexity: O(log n).
func (f *Frontier) PopMin() (Entry, error) {
	if f.h.Len() == 0 {
		return Entry{}, ErrEmptyFrontier
	}
	e := heap.Pop(&f.h).(Entry)

	return e, nil
}

// Len returns the number of entries currently queued, stale duplicates
// included. O(1).
func (f *Frontier) Len() int { return f.h.Len() }

// IsEmpty reports whether the frontier holds no entries. O(1).
func (f *Frontier) IsEmpty() bool { return f.h.Len() == 0 }

// entryHeap implements heap.Interface for Entry values, ordered by
// ascending (Priority, seq).
type entryHeap []Entry

func (h entryHeap) Len() int { return len(h) }

// Less orders by priority; equal priorities fall back to the insertion
// stamp so the earliest push wins.
func (h entryHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}

	return h[i].seq < h[j].seq
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends a new Entry. Called by heap.Push.
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(Entry)) }

// Pop removes and returns the last Entry after heap adjustment.
// Called by heap.Pop.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]

	return e
}
