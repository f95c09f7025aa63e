// Package mst defines result types, configuration options and sentinel
// errors for MST computation, plus the Compute dispatcher for selecting
// between Prim and Kruskal.
package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grafo/core"
)

// Sentinel errors for MST computation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was provided.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrNoVertices indicates the graph holds no vertices, so no
	// spanning tree (not even a trivial one) exists.
	ErrNoVertices = errors.New("mst: graph has no vertices")

	// ErrDisconnected indicates that no spanning tree covering all
	// vertices exists. It is always delivered wrapped inside a
	// *DisconnectedError carrying the unreached remainder.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrUnknownMethod indicates Compute received a Method that is
	// neither MethodPrim nor MethodKruskal.
	ErrUnknownMethod = errors.New("mst: unknown method")
)

// MethodPrim selects Prim's algorithm (grow from a seed via the frontier).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (global edge sort + union-find).
const MethodKruskal = "kruskal"

// Result is a self-contained spanning tree: the selected edges in
// selection order plus their total weight. For a connected graph with
// |V| vertices, Edges always holds exactly |V|−1 entries.
type Result struct {
	// Edges are the accepted tree edges, in the order each algorithm
	// selected them (copies, detached from the source graph).
	Edges []core.Edge

	// TotalWeight is the sum of the selected edge weights.
	TotalWeight int64
}

// DisconnectedError reports that spanning-tree construction could not
// span all vertices. It wraps ErrDisconnected (match with errors.Is)
// and carries the remainder so callers can report it instead of
// silently using a partial tree.
type DisconnectedError struct {
	// Unreached lists the vertices never attached to the tree, in the
	// graph's insertion order. Populated by Prim.
	Unreached []string

	// Groups maps each residual component's representative to its
	// sorted member vertices. Populated by Kruskal.
	Groups map[string][]string
}

// Error implements the error interface.
func (e *DisconnectedError) Error() string {
	if len(e.Unreached) > 0 {
		return fmt.Sprintf("%v: %d unreached vertices %v", ErrDisconnected, len(e.Unreached), e.Unreached)
	}

	return fmt.Sprintf("%v: %d residual components", ErrDisconnected, len(e.Groups))
}

// Unwrap lets errors.Is(err, ErrDisconnected) match.
func (e *DisconnectedError) Unwrap() error { return ErrDisconnected }

// Options configures which MST algorithm Compute runs and, for Prim,
// which vertex seeds the tree.
type Options struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the seed vertex for Prim. Empty means "first inserted
	// vertex". Ignored by Kruskal.
	Root string
}

// Option configures Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot returns an Option that sets Prim's seed vertex.
// Ignored by Kruskal.
func WithRoot(root string) Option {
	return func(o *Options) { o.Root = root }
}

// DefaultOptions returns Options initialized for Kruskal with no root.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Method: MethodKruskal,
		Root:   "",
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: calls Kruskal(graph).
//	– MethodPrim:    calls Prim(graph, opts.Root).
//	– anything else: ErrUnknownMethod.
//
// This is optional scaffolding — Prim and Kruskal can be called
// directly.
func Compute(graph *core.Graph, opts Options) (Result, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph)
	case MethodPrim:
		return Prim(graph, opts.Root)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}
