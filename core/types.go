// Package core declares the Graph and Edge types, sentinel errors, and
// the NewGraph constructor. Method implementations live in methods.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex label is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrInvalidEdge indicates an edge rejected at insertion time:
	// either a self-loop (u == v) or a negative weight. Returned wrapped
	// with context; match it via errors.Is(err, ErrInvalidEdge).
	ErrInvalidEdge = errors.New("core: invalid edge")
)

// Edge represents one undirected connection between two distinct vertices.
//
// U and V are the endpoint labels in the order the caller supplied them;
// the edge itself has no direction. Weight is always >= 0 (enforced by
// AddEdge). ID is assigned sequentially ("e1", "e2", ...) so the numeric
// suffix doubles as the edge's insertion rank.
type Edge struct {
	// ID uniquely identifies this edge within its Graph.
	ID string

	// U is the first endpoint as supplied to AddEdge.
	U string

	// V is the second endpoint as supplied to AddEdge.
	V string

	// Weight is the non-negative cost of the edge.
	Weight int64
}

// Other returns the endpoint of e opposite to id.
// If id is neither endpoint, Other returns the empty string.
// Complexity: O(1).
func (e *Edge) Other(id string) string {
	switch id {
	case e.U:
		return e.V
	case e.V:
		return e.U
	default:
		return ""
	}
}

// Graph is the core in-memory container: an undirected, weighted
// multigraph with insertion-ordered vertices, edges and adjacency.
//
// A single RWMutex guards all storage. Construction typically happens
// from one goroutine; afterwards the read paths (Neighbors, Vertices,
// Edges, counts) may be exercised concurrently by independent algorithm
// invocations with no external synchronization.
type Graph struct {
	mu sync.RWMutex // guards all fields below

	nextEdgeID uint64 // sequential edge ID generator

	vertexOrder []string            // vertex labels in insertion order
	vertexSet   map[string]struct{} // membership index for O(1) lookups

	edges     []*Edge            // all edges in insertion order
	adjacency map[string][]*Edge // vertex label → incident edges, insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertexSet: make(map[string]struct{}),
		adjacency: make(map[string][]*Edge),
	}
}
