package bfs

import "github.com/katalvlaran/chroma/core"

// Components partitions g into connected components.
//
// Components are listed in insertion order of their first vertex; within a
// component, vertices appear in BFS visit order from that first vertex.
// Options apply to every per-component traversal (a FilterNeighbor therefore
// yields the components of the filtered subgraph, and MaxDepth truncates them).
//
// Complexity: O(V + E) time, O(V) memory.
func Components(g *core.Graph, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	vertices := g.Vertices()
	seen := make(map[string]bool, len(vertices))
	var out [][]string
	for _, v := range vertices {
		if seen[v] {
			continue
		}
		w := newWalker(g, o)
		w.enqueue(v, 0, "")
		if err := w.loop(); err != nil {
			return out, err
		}
		for _, id := range w.res.Order {
			seen[id] = true
		}
		out = append(out, w.res.Order)
	}

	return out, nil
}
