// Package huffman declares the FrequencyTable and Node types plus
// sentinel errors. The tree builder and codecs live in huffman.go.
package huffman

import (
	"errors"
	"fmt"
)

// Sentinel errors for prefix-code construction and codecs.
var (
	// ErrEmptyInput indicates Build was invoked on an empty table.
	ErrEmptyInput = errors.New("huffman: empty frequency table")

	// ErrNegativeCount indicates Add received a negative frequency.
	ErrNegativeCount = errors.New("huffman: negative symbol count")

	// ErrUnknownSymbol indicates Encode met a symbol with no code.
	ErrUnknownSymbol = errors.New("huffman: symbol has no code")

	// ErrBadCode indicates Decode met a bit sequence matching no leaf.
	ErrBadCode = errors.New("huffman: bit string matches no code")
)

// FrequencyTable maps symbols to non-negative counts while remembering
// each symbol's first-appearance order — the deterministic tie-break
// base for the tree builder. Build once from a source text, then treat
// as immutable.
type FrequencyTable struct {
	counts map[rune]int64
	order  []rune // symbols in first-appearance order
}

// NewFrequencyTable constructs an empty table.
// Complexity: O(1).
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[rune]int64)}
}

// CountText builds a table from a corpus, counting every rune in
// reading order. Character-set and encoding concerns belong to the
// caller; every rune of the string is counted as-is.
// Complexity: O(len(text)).
func CountText(text string) *FrequencyTable {
	ft := NewFrequencyTable()
	for _, sym := range text {
		_ = ft.Add(sym, 1) // count 1 can never be negative
	}

	return ft
}

// Add accumulates n occurrences of sym, registering the symbol's
// appearance order on first sight. Returns ErrNegativeCount for n < 0;
// n == 0 registers the symbol with a zero count.
// Complexity: O(1) amortized.
func (ft *FrequencyTable) Add(sym rune, n int64) error {
	if n < 0 {
		return fmt.Errorf("%w: %d for %q", ErrNegativeCount, n, sym)
	}
	if _, seen := ft.counts[sym]; !seen {
		ft.order = append(ft.order, sym)
	}
	ft.counts[sym] += n

	return nil
}

// Get returns sym's count (zero for unknown symbols). O(1).
func (ft *FrequencyTable) Get(sym rune) int64 {
	return ft.counts[sym]
}

// Len returns the number of distinct symbols. O(1).
func (ft *FrequencyTable) Len() int {
	return len(ft.order)
}

// Symbols returns the distinct symbols in first-appearance order.
// Complexity: O(n).
func (ft *FrequencyTable) Symbols() []rune {
	out := make([]rune, len(ft.order))
	copy(out, ft.order)

	return out
}

// Total returns the sum of all counts. O(n).
func (ft *FrequencyTable) Total() int64 {
	var sum int64
	for _, c := range ft.counts {
		sum += c
	}

	return sum
}

// Node is one node of a Huffman tree: either a leaf carrying a symbol,
// or an internal node owning exactly two children whose frequencies it
// sums. Every node is owned exclusively by its parent; the tree is
// acyclic and unshared.
type Node struct {
	// Symbol is the leaf's symbol; meaningless for internal nodes.
	Symbol rune

	// Freq is the leaf's frequency, or the sum of both children's
	// frequencies for an internal node.
	Freq int64

	// Left and Right are the owned children; both nil for a leaf,
	// both non-nil for an internal node.
	Left, Right *Node
}

// IsLeaf reports whether n carries a symbol rather than children.
// Complexity: O(1).
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}
