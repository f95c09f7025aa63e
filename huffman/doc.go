// Package huffman builds optimal prefix-free binary codes from symbol
// frequencies.
//
// What & Why
//
//   - What is Huffman coding?
//     Given a table of symbol frequencies, Huffman's greedy algorithm
//     builds a binary tree whose leaves are the symbols: the two
//     least-frequent nodes are repeatedly merged under a fresh internal
//     node until one root remains. Each leaf's root-to-leaf path ("0"
//     left, "1" right) is its code. No code is a prefix of another —
//     guaranteed structurally, because symbols only sit at leaves — and
//     the weighted code length Σ freq·len(code) is minimal among all
//     prefix-free binary codes.
//
//   - The pipeline here: CountText (or Add) fills a FrequencyTable,
//     Build produces the tree, Codes derives the code table, and
//     Encode/Decode round-trip a corpus through it.
//
// Determinism
//
// The node heap breaks equal frequencies by insertion order: leaves
// enter in the table's first-appearance order, internal nodes in
// creation order. When two minimum nodes are popped, the first-popped
// becomes the left child and the second-popped the right child. This
// ordering is part of the contract — the same table always yields the
// same tree, codes and encoded output.
//
// Special case: a single distinct symbol has no left/right split to
// encode, so it receives the synthesized one-bit code "0" rather than
// being left codeless.
//
// Error Conditions
//
//	ErrEmptyInput    - Build invoked on an empty frequency table.
//	ErrNegativeCount - Add received a negative frequency.
//	ErrUnknownSymbol - Encode met a symbol absent from the code table.
//	ErrBadCode       - Decode met bits matching no leaf.
//
// Complexity: Build is O(n log n) for n distinct symbols; Codes is
// O(n · depth); Encode/Decode are linear in their input.
package huffman
