// Package huffman: tree builder, code derivation and codecs.
package huffman

import (
	"container/heap"
	"fmt"
	"strings"
)

// Build constructs the Huffman tree for the given frequency table.
//
// Steps:
//  1. Fail with ErrEmptyInput when the table holds no symbols.
//  2. Create one leaf per symbol, pushed in first-appearance order, so
//     equal frequencies tie-break deterministically.
//  3. Repeatedly pop the two minimum-frequency nodes and combine them
//     under a fresh internal node (left = first-popped, right =
//     second-popped; this ordering is part of the contract), pushing
//     the combination back.
//  4. The single remaining node is the root. A one-symbol table yields
//     a bare leaf root; Codes gives it the synthesized "0" code.
//
// The input table is not mutated; the returned tree is freshly
// allocated and exclusively owned by the caller.
// Complexity: O(n log n) for n distinct symbols.
func Build(ft *FrequencyTable) (*Node, error) {
	// 1. Empty input has no code tree.
	if ft == nil || ft.Len() == 0 {
		return nil, ErrEmptyInput
	}

	// 2. Seed the heap with one leaf per symbol, in appearance order.
	h := &nodeHeap{}
	heap.Init(h)
	for _, sym := range ft.Symbols() {
		h.push(&Node{Symbol: sym, Freq: ft.Get(sym)})
	}

	// 3. Greedy combination until one node remains.
	for h.Len() > 1 {
		left := h.pop()  // first-popped becomes the left child
		right := h.pop() // second-popped becomes the right child
		h.push(&Node{
			Freq:  left.Freq + right.Freq,
			Left:  left,
			Right: right,
		})
	}

	// 4. The survivor is the root (a bare leaf for one symbol).
	return h.pop(), nil
}

// Codes derives the code table from a Huffman tree by walking
// root-to-leaf, emitting "0" for a left branch and "1" for a right
// branch. A leaf at the root (single-symbol tree) is excluded from the
// walk and receives the synthesized one-bit code "0".
// Returns nil for a nil root.
// Complexity: O(n · depth).
func Codes(root *Node) map[rune]string {
	if root == nil {
		return nil
	}
	codes := make(map[rune]string)

	// Single-symbol special case: no left/right split exists to encode.
	if root.IsLeaf() {
		codes[root.Symbol] = "0"

		return codes
	}

	var walk func(n *Node, prefix string)
	walk = func(n *Node, prefix string) {
		if n.IsLeaf() {
			codes[n.Symbol] = prefix
			return
		}
		walk(n.Left, prefix+"0")
		walk(n.Right, prefix+"1")
	}
	walk(root, "")

	return codes
}

// WeightedLength returns Σ frequency(sym) · len(code(sym)) over all
// symbols of the table — the total bit length of the encoded corpus,
// minimal among all prefix-free binary codes by Huffman's guarantee.
// Symbols missing from codes contribute nothing.
// Complexity: O(n).
func WeightedLength(ft *FrequencyTable, codes map[rune]string) int64 {
	var sum int64
	for _, sym := range ft.Symbols() {
		sum += ft.Get(sym) * int64(len(codes[sym]))
	}

	return sum
}

// CompressionRatio returns the percentage of bits saved by the Huffman
// code relative to a fixed-width 8-bit encoding of the same corpus:
// (1 − weighted/fixed) · 100. Returns 0 for an empty table.
// Complexity: O(n).
func CompressionRatio(ft *FrequencyTable, codes map[rune]string) float64 {
	fixed := ft.Total() * 8
	if fixed == 0 {
		return 0
	}

	return (1 - float64(WeightedLength(ft, codes))/float64(fixed)) * 100
}

// Encode translates text into the concatenated bit string of each
// symbol's code. Returns ErrUnknownSymbol when text contains a symbol
// absent from the code table.
// Complexity: O(len(text) · code length).
func Encode(text string, codes map[rune]string) (string, error) {
	var sb strings.Builder
	for _, sym := range text {
		code, ok := codes[sym]
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownSymbol, sym)
		}
		sb.WriteString(code)
	}

	return sb.String(), nil
}

// Decode translates a bit string produced by Encode back into text by
// walking the tree from the root, branching left on '0' and right on
// '1', emitting a symbol at each leaf. The prefix-free property makes
// the walk unambiguous. Returns ErrBadCode for characters other than
// '0'/'1' or for a trailing partial code.
// Complexity: O(len(bits)).
func Decode(root *Node, bits string) (string, error) {
	if root == nil {
		return "", ErrBadCode
	}
	var sb strings.Builder

	// Single-leaf tree: every "0" is one occurrence of the symbol.
	if root.IsLeaf() {
		for _, b := range bits {
			if b != '0' {
				return "", fmt.Errorf("%w: unexpected bit %q", ErrBadCode, b)
			}
			sb.WriteRune(root.Symbol)
		}

		return sb.String(), nil
	}

	n := root
	for _, b := range bits {
		switch b {
		case '0':
			n = n.Left
		case '1':
			n = n.Right
		default:
			return "", fmt.Errorf("%w: unexpected character %q", ErrBadCode, b)
		}
		if n.IsLeaf() {
			sb.WriteRune(n.Symbol)
			n = root
		}
	}
	// Ending mid-path means the input was truncated or corrupt.
	if n != root {
		return "", fmt.Errorf("%w: trailing partial code", ErrBadCode)
	}

	return sb.String(), nil
}

// nodeEntry pairs a tree node with its insertion stamp for FIFO
// tie-breaking between equal frequencies.
type nodeEntry struct {
	node *Node
	seq  uint64
}

// nodeHeap implements heap.Interface over nodeEntry, ordered by
// ascending (Freq, seq).
type nodeHeap struct {
	entries []nodeEntry
	nextSeq uint64
}

// push stamps and inserts a node.
func (h *nodeHeap) push(n *Node) {
	h.nextSeq++
	heap.Push(h, nodeEntry{node: n, seq: h.nextSeq})
}

// pop removes and returns the minimum-frequency node.
func (h *nodeHeap) pop() *Node {
	return heap.Pop(h).(nodeEntry).node
}

func (h *nodeHeap) Len() int { return len(h.entries) }

// Less orders by frequency; equal frequencies fall back to the
// insertion stamp so the earliest node wins.
func (h *nodeHeap) Less(i, j int) bool {
	if h.entries[i].node.Freq != h.entries[j].node.Freq {
		return h.entries[i].node.Freq < h.entries[j].node.Freq
	}

	return h.entries[i].seq < h.entries[j].seq
}

func (h *nodeHeap) Swap(i, j int) { h.entries[i], h.entries[j] = h.entries[j], h.entries[i] }

// Push appends a new nodeEntry. Called by heap.Push.
func (h *nodeHeap) Push(x interface{}) { h.entries = append(h.entries, x.(nodeEntry)) }

// Pop removes and returns the last entry after heap adjustment.
// Called by heap.Pop.
func (h *nodeHeap) Pop() interface{} {
	old := h.entries
	n := len(old)
	e := old[n-1]
	h.entries = old[:n-1]

	return e
}
