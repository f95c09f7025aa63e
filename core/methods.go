// Package core: Graph method implementations.
//
// All operations run under a single RWMutex. Insertion order is the
// load-bearing property here: vertexOrder, edges, and each adjacency
// slice grow append-only, so every read path replays construction order
// exactly. Nothing is ever sorted.

package core

import "fmt"

const edgeIDPrefix = "e"

// AddVertex inserts a new vertex with the given label into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// Validate input: empty labels are not allowed.
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id if absent. Caller holds g.mu.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertexSet[id]; exists {
		return // no-op for existing vertex
	}
	g.vertexSet[id] = struct{}{}
	g.vertexOrder = append(g.vertexOrder, id)
}

// HasVertex reports whether a vertex with the given label exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty label considered absent
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.vertexSet[id]

	return exists
}

// AddEdge creates a new undirected edge u—v with the given weight and
// returns its unique Edge.ID. Missing endpoints are registered first
// (idempotently), preserving the precise order u, then v.
//
// Returns ErrEmptyVertexID if either label is empty, or an error
// wrapping ErrInvalidEdge if u == v (self-loop) or weight < 0.
// Parallel edges between the same pair are always permitted; each copy
// is stored and reported independently.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, weight int64) (string, error) {
	// 1) Input validation.
	if u == "" || v == "" {
		return "", ErrEmptyVertexID
	}
	// 2) Self-loops can never participate in a spanning tree or a
	//    shortest path; the container rejects them uniformly.
	if u == v {
		return "", fmt.Errorf("%w: self-loop on %q", ErrInvalidEdge, u)
	}
	// 3) Negative weights are rejected for the whole container, so that
	//    shortest-path callers can rely on the invariant without a
	//    separate scan of their own.
	if weight < 0 {
		return "", fmt.Errorf("%w: negative weight %d on %s—%s", ErrInvalidEdge, weight, u, v)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 4) Ensure both endpoints exist, in argument order.
	g.addVertexLocked(u)
	g.addVertexLocked(v)

	// 5) Assign the next sequential edge ID; the numeric suffix is the
	//    edge's insertion rank.
	g.nextEdgeID++
	e := &Edge{
		ID:     fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID),
		U:      u,
		V:      v,
		Weight: weight,
	}

	// 6) Record globally and in both endpoints' adjacency, append-only.
	g.edges = append(g.edges, e)
	g.adjacency[u] = append(g.adjacency[u], e)
	g.adjacency[v] = append(g.adjacency[v], e)

	return e.ID, nil
}

// Neighbors returns the edges incident to vertex id, in insertion order.
// Callers resolve the far endpoint via Edge.Other(id). The returned
// slice is freshly allocated but shares the *Edge values with the graph;
// treat them as read-only.
// Returns ErrEmptyVertexID or ErrVertexNotFound on bad input.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertexSet[id]; !ok {
		return nil, ErrVertexNotFound
	}
	// Copy the slice header + elements so callers cannot disturb the
	// graph's own adjacency ordering.
	incident := g.adjacency[id]
	out := make([]*Edge, len(incident))
	copy(out, incident)

	return out, nil
}

// Vertices returns all vertex labels in insertion order.
// The first element is the deterministic seed for Prim's algorithm.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// Edges returns all edges in insertion order. This ordering is the
// stable-sort base for Kruskal's deterministic tie-breaking.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// VertexCount returns the total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertexOrder)
}

// EdgeCount returns the total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Clone returns a deep copy of the Graph: vertices, edges, adjacency and
// insertion order. The clone shares nothing with the original.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	clone.nextEdgeID = g.nextEdgeID

	// Copy vertices preserving order.
	clone.vertexOrder = make([]string, len(g.vertexOrder))
	copy(clone.vertexOrder, g.vertexOrder)
	for id := range g.vertexSet {
		clone.vertexSet[id] = struct{}{}
	}

	// Duplicate every Edge value once, then rebuild adjacency from the
	// duplicates so the clone's pointers are its own.
	dup := make(map[string]*Edge, len(g.edges))
	clone.edges = make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		ne := &Edge{ID: e.ID, U: e.U, V: e.V, Weight: e.Weight}
		dup[e.ID] = ne
		clone.edges = append(clone.edges, ne)
	}
	for id, incident := range g.adjacency {
		list := make([]*Edge, 0, len(incident))
		for _, e := range incident {
			list = append(list, dup[e.ID])
		}
		clone.adjacency[id] = list
	}

	return clone
}
