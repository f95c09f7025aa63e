// Package graphio: edge-list and corpus loaders.
package graphio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/grafo/core"
	"github.com/katalvlaran/grafo/huffman"
)

// ErrBadRecord indicates a CSV record that cannot describe an edge:
// fewer than three fields or a weight that does not parse as an
// integer. Wrapped with the offending line number.
var ErrBadRecord = errors.New("graphio: bad edge record")

// LoadEdgeList reads a CSV edge list (u,v,weight per record) from r and
// returns the populated graph. Vertices are registered implicitly by
// core.AddEdge in file order, so the loaded graph carries the same
// deterministic insertion order as the file. Structural violations
// (self-loops, negative weights) surface as core.ErrInvalidEdge with
// the line number attached.
// Complexity: O(E).
func LoadEdgeList(r io.Reader) (*core.Graph, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // length is validated per record below
	cr.TrimLeadingSpace = true

	g := core.NewGraph()
	line := 0
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", line+1, err)
		}
		line++

		// Tolerate blank lines the csv reader did not collapse.
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("%w: line %d has %d fields, want 3", ErrBadRecord, line, len(record))
		}

		u := strings.TrimSpace(record[0])
		v := strings.TrimSpace(record[1])
		weight, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: weight %q is not an integer", ErrBadRecord, line, record[2])
		}

		if _, err = g.AddEdge(u, v, weight); err != nil {
			return nil, fmt.Errorf("graphio: line %d: %w", line, err)
		}
	}

	return g, nil
}

// LoadEdgeListFile opens path and delegates to LoadEdgeList.
func LoadEdgeListFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return LoadEdgeList(f)
}

// ReadCorpus counts every rune of r in reading order into a fresh
// frequency table.
// Complexity: O(len(input)).
func ReadCorpus(r io.Reader) (*huffman.FrequencyTable, error) {
	ft := huffman.NewFrequencyTable()
	br := bufio.NewReader(r)
	for {
		sym, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("graphio: %w", err)
		}
		_ = ft.Add(sym, 1) // count 1 can never be negative
	}

	return ft, nil
}

// ReadCorpusFile opens path and delegates to ReadCorpus.
func ReadCorpusFile(path string) (*huffman.FrequencyTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: %w", err)
	}
	defer f.Close()

	return ReadCorpus(f)
}
