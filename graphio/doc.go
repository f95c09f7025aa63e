// Package graphio loads the external input formats consumed by the
// algorithm packages: CSV edge lists into core.Graph, and plain-text
// corpora into huffman.FrequencyTable.
//
// Edge-list format, one edge per record:
//
//	u,v,weight
//
// Fields are whitespace-trimmed; blank lines and records with fewer
// than three fields-worth of content are reported, not skipped
// silently. Weight must parse as a non-negative integer — the graph
// container re-validates the structural invariants (no self-loops, no
// negative weights) at insertion, so a malformed file can never produce
// a half-valid graph silently.
//
// Corpus reading counts every rune of the input in reading order;
// character-set and encoding normalization is the caller's concern.
//
// Error Conditions
//
//	ErrBadRecord - a CSV record is structurally unusable (short row or
//	               non-integer weight); wrapped with the line number.
package graphio
