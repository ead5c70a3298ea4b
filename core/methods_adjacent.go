// File: methods_adjacent.go
// Role: Neighborhood queries and ordered adjacency import/export.
// Determinism:
//   - NeighborIDs(v) preserves attachment order.
//   - AdjacencyList() and FromAdjacency() round-trip: FromAdjacency(g.AdjacencyList())
//     reproduces vertex order and every neighbor order.
// AI-HINT (file):
//   - FromAdjacency is the strict entry point for provider data; it never
//     "repairs" input (no implicit mirroring), it reports every violation instead.
package core

import (
	"fmt"

	"go.uber.org/multierr"
)

// NeighborIDs returns the neighbors of id in adjacency-list order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if id is not in the graph.
//
// Complexity:
//   - Time O(d), Space O(d) for the returned slice.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency.Get(id)
	if !ok {
		return nil, fmt.Errorf("NeighborIDs(%q): %w", id, ErrVertexNotFound)
	}

	out := make([]string, 0, nbrs.Len())
	for nb := nbrs.Oldest(); nb != nil; nb = nb.Next() {
		out = append(out, nb.Key)
	}

	return out, nil
}

// AdjacencyList returns an ordered snapshot of the graph: one entry per
// vertex in insertion order, each with its neighbors in adjacency-list order.
//
// Behavior highlights:
//   - Returned slices are freshly allocated and safe to retain and mutate.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func (g *Graph) AdjacencyList() []AdjacencyEntry {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]AdjacencyEntry, 0, g.adjacency.Len())
	for pair := g.adjacency.Oldest(); pair != nil; pair = pair.Next() {
		nbs := make([]string, 0, pair.Value.Len())
		for nb := pair.Value.Oldest(); nb != nil; nb = nb.Next() {
			nbs = append(nbs, nb.Key)
		}
		out = append(out, AdjacencyEntry{ID: pair.Key, Neighbors: nbs})
	}

	return out
}

// FromAdjacency builds a Graph from an ordered adjacency mapping.
//
// Implementation:
//   - Stage 1: Register every entry ID in order (ErrEmptyVertexID, ErrDuplicateVertex).
//   - Stage 2: Attach neighbors exactly as listed, one direction per listing
//     (ErrEmptyVertexID, ErrLoopNotAllowed, ErrVertexNotFound, ErrMultiEdgeNotAllowed).
//   - Stage 3: Verify symmetry: every u→v listing must have a v→u listing
//     (ErrAsymmetricAdjacency).
//
// Behavior highlights:
//   - Neighbors must themselves be entry IDs; unknown neighbors are malformed
//     input rather than implicit vertices.
//   - All violations are combined with multierr; errors.Is matches any of them.
//
// Returns:
//   - *Graph on success; nil and the combined error otherwise.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func FromAdjacency(entries []AdjacencyEntry) (*Graph, error) {
	g := NewGraph()
	accepted := make([]bool, len(entries))
	var errs error

	// Stage 1: vertex catalog in entry order.
	for i, entry := range entries {
		if entry.ID == "" {
			errs = multierr.Append(errs, fmt.Errorf("entry %d: %w", i, ErrEmptyVertexID))
			continue
		}
		if _, dup := g.adjacency.Get(entry.ID); dup {
			errs = multierr.Append(errs, fmt.Errorf("entry %d %q: %w", i, entry.ID, ErrDuplicateVertex))
			continue
		}
		g.ensureVertex(entry.ID)
		accepted[i] = true
	}

	// Stage 2: one-directional arcs, preserving listed order.
	arcs := 0
	for i, entry := range entries {
		if !accepted[i] {
			continue
		}
		nbrs, _ := g.adjacency.Get(entry.ID)
		for _, nb := range entry.Neighbors {
			switch {
			case nb == "":
				errs = multierr.Append(errs, fmt.Errorf("vertex %q: neighbor: %w", entry.ID, ErrEmptyVertexID))
				continue
			case nb == entry.ID:
				errs = multierr.Append(errs, fmt.Errorf("vertex %q: %w", entry.ID, ErrLoopNotAllowed))
				continue
			}
			if _, known := g.adjacency.Get(nb); !known {
				errs = multierr.Append(errs, fmt.Errorf("vertex %q: neighbor %q: %w", entry.ID, nb, ErrVertexNotFound))
				continue
			}
			if _, dup := nbrs.Get(nb); dup {
				errs = multierr.Append(errs, fmt.Errorf("vertex %q: neighbor %q listed twice: %w", entry.ID, nb, ErrMultiEdgeNotAllowed))
				continue
			}
			nbrs.Set(nb, struct{}{})
			arcs++
		}
	}

	// Stage 3: symmetry.
	for pair := g.adjacency.Oldest(); pair != nil; pair = pair.Next() {
		for nb := pair.Value.Oldest(); nb != nil; nb = nb.Next() {
			back, _ := g.adjacency.Get(nb.Key)
			if _, ok := back.Get(pair.Key); !ok {
				errs = multierr.Append(errs, fmt.Errorf("%q lists %q but not vice versa: %w", pair.Key, nb.Key, ErrAsymmetricAdjacency))
			}
		}
	}

	if errs != nil {
		return nil, errs
	}
	g.edgeCount = arcs / 2

	return g, nil
}
