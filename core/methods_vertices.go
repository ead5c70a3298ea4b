// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order (first AddVertex/AddEdge that mentioned them).
//
// Concurrency:
//   - Mutations take mu for writing; queries take mu for reading.
package core

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, register an empty neighbor set unless present.
//
// Behavior highlights:
//   - Idempotent: re-adding an existing vertex keeps its original position in Vertices().
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency.Get(id)

	return ok
}

// Vertices returns all vertex IDs in insertion order.
// The slice is freshly allocated and safe to retain.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, g.adjacency.Len())
	for pair := g.adjacency.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}

	return out
}

// VertexCount returns |V|.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjacency.Len()
}

// Degree returns the number of neighbors of id.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if id is not in the graph.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency.Get(id)
	if !ok {
		return 0, fmt.Errorf("Degree(%q): %w", id, ErrVertexNotFound)
	}

	return nbrs.Len(), nil
}

// ensureVertex registers id with an empty neighbor set if it is missing and
// returns its neighbor set. Must be called under the write lock.
func (g *Graph) ensureVertex(id string) *neighborSet {
	if nbrs, ok := g.adjacency.Get(id); ok {
		return nbrs
	}
	nbrs := orderedmap.New[string, struct{}]()
	g.adjacency.Set(id, nbrs)

	return nbrs
}
