package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grafo/dijkstra"
	"github.com/katalvlaran/grafo/graphio"
	"github.com/katalvlaran/grafo/render"
)

var dijkstraCmd = &cobra.Command{
	Use:   "dijkstra",
	Short: "Single-source shortest paths",
	Long: `Compute shortest paths from a source vertex to every vertex of the
graph. Vertices the source cannot reach print with an infinite
distance.

Example:
  grafo dijkstra --input edges.csv --source A`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return fmt.Errorf("failed to read 'input' flag: %w", err)
		}
		source, err := cmd.Flags().GetString("source")
		if err != nil {
			return fmt.Errorf("failed to read 'source' flag: %w", err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path, err := resolve(input, cfg.Graph, "input")
		if err != nil {
			return err
		}
		source, err = resolve(source, cfg.Source, "source")
		if err != nil {
			return err
		}

		g, err := graphio.LoadEdgeListFile(path)
		if err != nil {
			return err
		}

		res, err := dijkstra.Dijkstra(g, dijkstra.Source(source))
		if err != nil {
			return err
		}

		cmd.Print(render.Distances(res, g.Vertices()))

		return nil
	},
}

func init() {
	dijkstraCmd.Flags().String("input", "", "path to the CSV edge list")
	dijkstraCmd.Flags().String("source", "", "source vertex")
}
