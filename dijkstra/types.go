// Package dijkstra defines the Result type, configuration options and
// sentinel errors for shortest-path computation.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that no source vertex ID was provided.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was
	// detected; the precondition scan fails before any relaxation.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadInfThreshold indicates a non-positive InfEdgeThreshold.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Unreachable is the sentinel distance recorded for vertices the source
// cannot reach.
const Unreachable = int64(math.MaxInt64)

// Result holds the outcome of one Dijkstra invocation: the source, a
// distance for every vertex of the graph, and the predecessor of every
// reached non-source vertex.
//
// Dist[source] is always 0. Unreached vertices carry Unreachable in
// Dist and have no Prev entry; the source likewise has no Prev entry.
type Result struct {
	// Source is the vertex distances are measured from.
	Source string

	// Dist maps every vertex label to its shortest distance from
	// Source, or Unreachable.
	Dist map[string]int64

	// Prev maps each reached non-source vertex to its predecessor on
	// a shortest path from Source.
	Prev map[string]string
}

// Reachable reports whether v was reached from the source.
// Complexity: O(1).
func (r Result) Reachable(v string) bool {
	d, ok := r.Dist[v]

	return ok && d != Unreachable
}

// PathTo reconstructs the shortest path from the source to v by walking
// the predecessor chain backwards. Returns nil when v is unknown or
// unreachable; returns [source] for v == source.
// Complexity: O(path length).
func (r Result) PathTo(v string) []string {
	if !r.Reachable(v) {
		return nil
	}
	// Walk back to the source, then reverse in place.
	path := []string{v}
	for v != r.Source {
		v = r.Prev[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Options configures a Dijkstra invocation.
type Options struct {
	// Source is the ID of the starting vertex; must be non-empty and
	// present in the graph.
	Source string

	// InfEdgeThreshold marks edges with weight >= this value as
	// impassable walls: they are never traversed. Must be positive.
	// Defaults to Unreachable, which also keeps every admissible
	// distance strictly below the sentinel.
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Must be provided on every call.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// InfEdgeThreshold sets the impassable-edge wall: edges weighing t or
// more are skipped during relaxation. Values <= 0 fail validation with
// ErrBadInfThreshold.
func InfEdgeThreshold(t int64) Option {
	return func(o *Options) { o.InfEdgeThreshold = t }
}

// DefaultOptions returns an Options struct for the given source vertex.
// Validation happens in Dijkstra, not here.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		InfEdgeThreshold: Unreachable,
	}
}
