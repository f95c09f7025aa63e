// Package commands wires the grafo subcommands: MST construction,
// shortest paths and Huffman coding over datasets loaded from disk.
package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "grafo",
	Short: "Weighted-graph algorithms over CSV edge lists",
	Long: `grafo runs classic weighted-graph algorithms over datasets on disk.

Graph commands (prim, kruskal, dijkstra) read a CSV edge list with one
"u,v,weight" record per line. The huffman command reads a plain-text
corpus and derives a prefix code from its symbol frequencies.

Dataset paths come from --input, or from a YAML config file:

  graph:  edges.csv   # default edge list for prim/kruskal/dijkstra
  corpus: corpus.txt  # default text for huffman
  source: A           # default source vertex for dijkstra`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file with dataset defaults")

	rootCmd.AddCommand(primCmd)
	rootCmd.AddCommand(kruskalCmd)
	rootCmd.AddCommand(dijkstraCmd)
	rootCmd.AddCommand(huffmanCmd)
}
