// Package render formats algorithm results for terminal display:
// spanning-tree edge tables, shortest-path distance tables, Huffman
// code tables and an ASCII rendering of the code tree.
//
// Rendering is strictly read-only: every function consumes a result
// value and returns a styled string; no input is ever mutated. Styling
// uses lipgloss, which degrades to plain text on non-TTY writers, so
// the output stays grep-able in logs and tests.
package render
