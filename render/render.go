// Package render: result formatters.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/grafo/dijkstra"
	"github.com/katalvlaran/grafo/huffman"
	"github.com/katalvlaran/grafo/mst"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Faint(true)
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	infStyle    = lipgloss.NewStyle().Faint(true)
)

// SpanningTree renders an MST result as an edge table with the total
// weight, edges in selection order.
func SpanningTree(title string, res mst.Result) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title) + "\n")
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-4s %-12s %8s", "#", "edge", "weight")) + "\n")
	for i, e := range res.Edges {
		sb.WriteString(fmt.Sprintf("%-4d %-12s %8d\n", i+1, e.U+" — "+e.V, e.Weight))
	}
	sb.WriteString(totalStyle.Render(fmt.Sprintf("total weight: %d", res.TotalWeight)) + "\n")

	return sb.String()
}

// Distances renders a shortest-path result as a distance/predecessor
// table, one row per vertex of the graph in the given order. Vertices
// the source cannot reach show "∞" and no predecessor.
func Distances(res dijkstra.Result, order []string) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("shortest paths from "+res.Source) + "\n")
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-8s %10s  %-8s %s", "vertex", "distance", "via", "path")) + "\n")
	for _, v := range order {
		if !res.Reachable(v) {
			sb.WriteString(fmt.Sprintf("%-8s %10s  %-8s %s\n", v, infStyle.Render("∞"), "-", "-"))
			continue
		}
		via := "-"
		if p, ok := res.Prev[v]; ok {
			via = p
		}
		sb.WriteString(fmt.Sprintf("%-8s %10d  %-8s %s\n", v, res.Dist[v], via, strings.Join(res.PathTo(v), "→")))
	}

	return sb.String()
}

// CodeTable renders a Huffman code table: per-symbol frequency, code
// and contributed bits, in the table's first-appearance order, plus the
// total weighted length.
func CodeTable(ft *huffman.FrequencyTable, codes map[rune]string) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("huffman codes") + "\n")
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-8s %8s  %-12s %8s", "symbol", "freq", "code", "bits")) + "\n")
	for _, sym := range ft.Symbols() {
		code := codes[sym]
		sb.WriteString(fmt.Sprintf("%-8s %8d  %-12s %8d\n",
			symbolLabel(sym), ft.Get(sym), code, ft.Get(sym)*int64(len(code))))
	}
	sb.WriteString(totalStyle.Render(fmt.Sprintf("encoded length: %d bits", huffman.WeightedLength(ft, codes))) + "\n")
	sb.WriteString(fmt.Sprintf("fixed width (8 bits/symbol): %d bits\n", ft.Total()*8))
	sb.WriteString(fmt.Sprintf("compression: %.2f%%\n", huffman.CompressionRatio(ft, codes)))

	return sb.String()
}

// HuffmanTree renders the code tree as an ASCII hierarchy with branch
// guides, left child first:
//
//	[100]
//	├── ['f': 45]
//	└── [55]
//	    ├── ...
func HuffmanTree(root *huffman.Node) string {
	if root == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(nodeLabel(root) + "\n")
	dumpChildren(&sb, root, "")

	return sb.String()
}

// dumpChildren appends root's subtrees using ├──/└── guides.
func dumpChildren(sb *strings.Builder, n *huffman.Node, prefix string) {
	if n.IsLeaf() {
		return
	}
	sb.WriteString(prefix + "├── " + nodeLabel(n.Left) + "\n")
	dumpChildren(sb, n.Left, prefix+"│   ")
	sb.WriteString(prefix + "└── " + nodeLabel(n.Right) + "\n")
	dumpChildren(sb, n.Right, prefix+"    ")
}

// nodeLabel formats one tree node: leaves show their symbol, internal
// nodes only their frequency.
func nodeLabel(n *huffman.Node) string {
	if n.IsLeaf() {
		return fmt.Sprintf("[%s: %d]", symbolLabel(n.Symbol), n.Freq)
	}

	return fmt.Sprintf("[%d]", n.Freq)
}

// symbolLabel makes whitespace and control symbols visible in tables.
func symbolLabel(sym rune) string {
	switch sym {
	case ' ':
		return "' '"
	case '\n':
		return `'\n'`
	case '\t':
		return `'\t'`
	default:
		return fmt.Sprintf("%q", sym)
	}
}
