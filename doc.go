// Package grafo is a compact toolkit for weighted undirected graphs:
// build them, span them, walk them, and squeeze text through them.
//
// 🚀 What is grafo?
//
//	A small, deterministic, thread-safe library that brings together:
//		• Core primitives: insertion-ordered vertices & weighted edges
//		• Disjoint sets: union-find with path compression & rank
//		• Priority frontier: a FIFO-stable min-heap for greedy expansion
//		• Minimum spanning trees: Prim, Kruskal
//		• Shortest paths: Dijkstra with path reconstruction
//		• Prefix codes: Huffman trees, tables, encode/decode
//
// ✨ Why choose grafo?
//
//   - Deterministic by construction – every algorithm resolves ties by
//     insertion order, so equal inputs always give equal outputs
//   - Rock-solid guarantees – R/W locks on the container, sentinel
//     errors on every failure path
//   - Batteries included – CSV edge-list and corpus loaders plus
//     terminal renderers for every result type
//
// Under the hood, everything is organized by concern:
//
//	core/      — the Graph container: vertices, edges, adjacency
//	dsu/       — disjoint-set union (connectivity, cycle detection)
//	frontier/  — priority frontier shared by Prim and Dijkstra
//	mst/       — Prim & Kruskal spanning-tree construction
//	dijkstra/  — single-source shortest paths
//	huffman/   — frequency tables, code trees, encode/decode
//	graphio/   — dataset loaders (CSV edge lists, text corpora)
//	render/    — styled terminal tables and tree dumps
//	cmd/grafo/ — the CLI binding it all together
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four weighted edges.
//
// Each package's runnable examples cover the full surface; the dataset
// formats are described on the grafo CLI's help screens.
//
//	go get github.com/katalvlaran/grafo
package grafo
