package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grafo/graphio"
	"github.com/katalvlaran/grafo/huffman"
	"github.com/katalvlaran/grafo/render"
)

var huffmanCmd = &cobra.Command{
	Use:   "huffman",
	Short: "Huffman code table for a text corpus",
	Long: `Count symbol frequencies in a plain-text corpus and derive the
Huffman prefix code. Prints the per-symbol code table; pass --tree to
also print the code tree.

Example:
  grafo huffman --input corpus.txt --tree`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := cmd.Flags().GetString("input")
		if err != nil {
			return fmt.Errorf("failed to read 'input' flag: %w", err)
		}
		showTree, err := cmd.Flags().GetBool("tree")
		if err != nil {
			return fmt.Errorf("failed to read 'tree' flag: %w", err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		path, err := resolve(input, cfg.Corpus, "input")
		if err != nil {
			return err
		}

		ft, err := graphio.ReadCorpusFile(path)
		if err != nil {
			return err
		}

		root, err := huffman.Build(ft)
		if err != nil {
			return err
		}
		codes := huffman.Codes(root)

		cmd.Print(render.CodeTable(ft, codes))
		if showTree {
			cmd.Println()
			cmd.Print(render.HuffmanTree(root))
		}

		return nil
	},
}

func init() {
	huffmanCmd.Flags().String("input", "", "path to the text corpus")
	huffmanCmd.Flags().Bool("tree", false, "also print the code tree")
}
