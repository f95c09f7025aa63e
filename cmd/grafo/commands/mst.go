package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grafo/graphio"
	"github.com/katalvlaran/grafo/mst"
	"github.com/katalvlaran/grafo/render"
)

var primCmd = &cobra.Command{
	Use:   "prim",
	Short: "Minimum spanning tree via Prim's algorithm",
	Long: `Grow a minimum spanning tree from a single root vertex.

The root defaults to the first vertex of the edge list; pass --root to
start elsewhere. Edges print in the order the tree acquired them.

Example:
  grafo prim --input edges.csv --root A`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return fmt.Errorf("failed to read 'input' flag: %w", err)
		}
		root, err := cmd.Flags().GetString("root")
		if err != nil {
			return fmt.Errorf("failed to read 'root' flag: %w", err)
		}

		return runMST(cmd, input, mst.Options{Method: mst.MethodPrim, Root: root})
	},
}

var kruskalCmd = &cobra.Command{
	Use:   "kruskal",
	Short: "Minimum spanning tree via Kruskal's algorithm",
	Long: `Build a minimum spanning tree by scanning edges in weight order
and rejecting those that close a cycle.

Example:
  grafo kruskal --input edges.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return fmt.Errorf("failed to read 'input' flag: %w", err)
		}

		return runMST(cmd, input, mst.Options{Method: mst.MethodKruskal})
	},
}

// runMST loads the edge list, dispatches to the selected method and
// prints the tree. A disconnected graph is reported with its unreached
// vertices rather than as a bare error.
func runMST(cmd *cobra.Command, input string, opts mst.Options) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path, err := resolve(input, cfg.Graph, "input")
	if err != nil {
		return err
	}

	g, err := graphio.LoadEdgeListFile(path)
	if err != nil {
		return err
	}

	res, err := mst.Compute(g, opts)
	if err != nil {
		var dis *mst.DisconnectedError
		if errors.As(err, &dis) {
			// Prim reports the unreached vertices, Kruskal the residual
			// components.
			if len(dis.Unreached) > 0 {
				return fmt.Errorf("%s is disconnected, unreached vertices: %v", path, dis.Unreached)
			}

			return fmt.Errorf("%s is disconnected, components: %v", path, dis.Groups)
		}

		return err
	}

	cmd.Print(render.SpanningTree(cmd.Name(), res))

	return nil
}

func init() {
	primCmd.Flags().String("input", "", "path to the CSV edge list")
	primCmd.Flags().String("root", "", "root vertex (default: first vertex of the edge list)")

	kruskalCmd.Flags().String("input", "", "path to the CSV edge list")
}
