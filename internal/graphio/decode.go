package graphio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chroma/core"
)

// ErrMalformedDocument is returned when the document shape is wrong.
var ErrMalformedDocument = errors.New("graphio: malformed document")

// Document is a decoded adjacency document.
type Document struct {
	Graph   *core.Graph
	Palette []string // nil when the document has none
}

// Decode reads one adjacency document from r.
// Structural problems are ErrMalformedDocument with a line number; graph
// problems are the core sentinels reported by core.FromAdjacency.
func Decode(r io.Reader) (*Document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrMalformedDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	top := &root
	if top.Kind == yaml.DocumentNode && len(top.Content) == 1 {
		top = top.Content[0]
	}
	if top.Kind != yaml.MappingNode {
		return nil, malformed(top, "top level must be a mapping")
	}

	var (
		entries  []core.AdjacencyEntry
		palette  []string
		sawGraph bool
	)
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "graph":
			var err error
			if entries, err = decodeAdjacency(val); err != nil {
				return nil, err
			}
			sawGraph = true
		case "palette":
			if err := val.Decode(&palette); err != nil {
				return nil, malformed(val, "palette must be a list of strings")
			}
		default:
			return nil, malformed(key, fmt.Sprintf("unknown field %q", key.Value))
		}
	}
	if !sawGraph {
		return nil, fmt.Errorf("%w: missing graph", ErrMalformedDocument)
	}

	g, err := core.FromAdjacency(entries)
	if err != nil {
		return nil, err
	}

	return &Document{Graph: g, Palette: palette}, nil
}

// decodeAdjacency walks the graph mapping in document order. Repeated keys
// are kept so that core.FromAdjacency can report them.
func decodeAdjacency(n *yaml.Node) ([]core.AdjacencyEntry, error) {
	if n.Kind != yaml.MappingNode {
		return nil, malformed(n, "graph must be a mapping of vertex to neighbor list")
	}
	entries := make([]core.AdjacencyEntry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, malformed(key, "vertex IDs must be scalars")
		}
		var nbrs []string
		if err := val.Decode(&nbrs); err != nil {
			return nil, malformed(val, fmt.Sprintf("neighbors of %q must be a list of strings", key.Value))
		}
		entries = append(entries, core.AdjacencyEntry{ID: key.Value, Neighbors: nbrs})
	}

	return entries, nil
}

func malformed(n *yaml.Node, msg string) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedDocument, n.Line, msg)
}
