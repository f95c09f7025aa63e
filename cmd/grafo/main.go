// Package main provides the grafo CLI tool.
//
// Usage:
//
//	grafo [flags] <command> [args]
//
// Commands:
//
//	prim     - Minimum spanning tree via Prim's algorithm
//	kruskal  - Minimum spanning tree via Kruskal's algorithm
//	dijkstra - Single-source shortest paths
//	huffman  - Huffman code table for a text corpus
//
// Datasets come from --input (a CSV edge list or a plain-text corpus)
// or from the paths named in an optional --config YAML file.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/grafo/cmd/grafo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
