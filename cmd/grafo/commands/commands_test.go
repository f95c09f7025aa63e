package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runGrafo executes the root command with args and captures stdout.
func runGrafo(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath = "" // reset the persistent flag between runs

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	return out.String(), err
}

// writeFile drops content into a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// TestKruskal_EndToEnd runs the kruskal command over a small edge list.
func TestKruskal_EndToEnd(t *testing.T) {
	edges := writeFile(t, "edges.csv", "A,B,1\nB,C,2\nA,C,3\n")

	out, err := runGrafo(t, "kruskal", "--input", edges)
	require.NoError(t, err)
	assert.Contains(t, out, "A — B")
	assert.Contains(t, out, "total weight: 3")
}

// TestPrim_DisconnectedInput verifies the unreached-vertex report.
func TestPrim_DisconnectedInput(t *testing.T) {
	edges := writeFile(t, "edges.csv", "A,B,1\nC,D,2\n")

	_, err := runGrafo(t, "prim", "--input", edges)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disconnected")
	assert.Contains(t, err.Error(), "[C D]")
}

// TestKruskal_DisconnectedInput verifies the residual-component report:
// kruskal carries groups instead of an unreached list, and the error
// must name their members.
func TestKruskal_DisconnectedInput(t *testing.T) {
	edges := writeFile(t, "edges.csv", "A,B,1\nC,D,2\n")

	_, err := runGrafo(t, "kruskal", "--input", edges)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disconnected")
	assert.Contains(t, err.Error(), "components:")
	assert.Contains(t, err.Error(), "[C D]")
}

// TestDijkstra_ConfigFallback verifies that the config file supplies
// the dataset path and source when the flags are unset.
func TestDijkstra_ConfigFallback(t *testing.T) {
	edges := writeFile(t, "edges.csv", "A,B,1\nB,C,2\n")
	cfg := writeFile(t, "grafo.yaml", "graph: "+edges+"\nsource: A\n")

	out, err := runGrafo(t, "dijkstra", "--config", cfg, "--input", "", "--source", "")
	require.NoError(t, err)
	assert.Contains(t, out, "shortest paths from A")
	assert.Contains(t, out, "A→B→C")
}

// TestHuffman_EndToEnd runs the huffman command with the tree dump.
func TestHuffman_EndToEnd(t *testing.T) {
	corpus := writeFile(t, "corpus.txt", "abracadabra")

	out, err := runGrafo(t, "huffman", "--input", corpus, "--tree")
	require.NoError(t, err)
	assert.Contains(t, out, "huffman codes")
	assert.Contains(t, out, "'a'")
	assert.Contains(t, out, "└──")
}

// TestMissingInput verifies the error when neither flag nor config
// names a dataset.
func TestMissingInput(t *testing.T) {
	_, err := runGrafo(t, "kruskal", "--input", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--input is required")
}
