package graphio

import (
	"encoding/json"
	"fmt"
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/core"
)

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("graphio: unknown format %q (want json or yaml)", s)
	}
}

// Report is the outcome of a coloring run as written by the CLI.
type Report struct {
	Complete   bool
	Assignment *orderedmap.OrderedMap[string, string]
	Uncolored  []string
	Infeasible []string // roots of components the palette could not color
	Stats      coloring.Stats
}

// NewReport orders a in vertex insertion order of g.
func NewReport(g *core.Graph, a coloring.Assignment, infeasibleRoots []string, stats coloring.Stats) *Report {
	ordered := orderedmap.New[string, string]()
	for _, v := range g.Vertices() {
		if c, ok := a[v]; ok {
			ordered.Set(v, c)
		}
	}
	uncolored := coloring.Uncolored(g, a)

	return &Report{
		Complete:   len(uncolored) == 0,
		Assignment: ordered,
		Uncolored:  uncolored,
		Infeasible: infeasibleRoots,
		Stats:      stats,
	}
}

// WriteReport encodes r to w.
func WriteReport(w io.Writer, f Format, r *Report) error {
	doc := orderedmap.New[string, any]()
	doc.Set("complete", r.Complete)
	doc.Set("assignment", r.Assignment)
	if len(r.Uncolored) > 0 {
		doc.Set("uncolored", r.Uncolored)
	}
	if len(r.Infeasible) > 0 {
		doc.Set("infeasible", r.Infeasible)
	}
	stats := orderedmap.New[string, int]()
	stats.Set("steps", r.Stats.Steps)
	stats.Set("backtracks", r.Stats.Backtracks)
	stats.Set("max_depth", r.Stats.MaxDepth)
	doc.Set("stats", stats)

	return write(w, f, doc)
}

// WriteGraph encodes g (and an optional palette) as an adjacency document
// that Decode reads back unchanged.
func WriteGraph(w io.Writer, f Format, g *core.Graph, palette []string) error {
	adj := orderedmap.New[string, []string]()
	for _, e := range g.AdjacencyList() {
		nbrs := e.Neighbors
		if nbrs == nil {
			nbrs = []string{}
		}
		adj.Set(e.ID, nbrs)
	}
	doc := orderedmap.New[string, any]()
	doc.Set("graph", adj)
	if len(palette) > 0 {
		doc.Set("palette", palette)
	}

	return write(w, f, doc)
}

func write(w io.Writer, f Format, doc *orderedmap.OrderedMap[string, any]) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("graphio: encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("graphio: encode json: %w", err)
		}
		return nil
	}
}
