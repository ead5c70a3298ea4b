// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries.
// Policy:
//   - Undirected only: AddEdge(u,v) appends v to u's list and u to v's list.
//   - Simple only: loops and parallel edges are rejected with sentinels.
// Determinism:
//   - Edges() walks vertices in insertion order and neighbors in attachment order,
//     emitting each undirected edge once from its earlier-inserted endpoint.

package core

import "fmt"

// AddEdge connects u and v, creating missing endpoints first.
//
// Implementation:
//   - Stage 1: Validate IDs (ErrEmptyVertexID) and reject loops (ErrLoopNotAllowed).
//   - Stage 2: Under the write lock, ensure both endpoints exist (u before v).
//   - Stage 3: Reject an existing edge (ErrMultiEdgeNotAllowed), otherwise mirror adjacency.
//
// Behavior highlights:
//   - v is appended to the end of u's neighbor list and u to the end of v's,
//     so call order defines the adjacency-list order seen by the coloring search.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return fmt.Errorf("AddEdge(%q,%q): %w", u, v, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	uNbrs := g.ensureVertex(u)
	vNbrs := g.ensureVertex(v)

	if _, exists := uNbrs.Get(v); exists {
		return fmt.Errorf("AddEdge(%q,%q): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	uNbrs.Set(v, struct{}{})
	vNbrs.Set(u, struct{}{})
	g.edgeCount++

	return nil
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency.Get(u)
	if !ok {
		return false
	}
	_, ok = nbrs.Get(v)

	return ok
}

// EdgeCount returns |E| (each undirected edge counted once).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every undirected edge exactly once.
// From is always the endpoint inserted earlier into the graph.
// Complexity: O(V+E) time, O(V+E) space.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	seen := make(map[string]struct{}, g.adjacency.Len())
	for pair := g.adjacency.Oldest(); pair != nil; pair = pair.Next() {
		// Every neighbor not yet seen as a source is inserted later than pair.Key.
		for nb := pair.Value.Oldest(); nb != nil; nb = nb.Next() {
			if _, done := seen[nb.Key]; done {
				continue
			}
			out = append(out, Edge{From: pair.Key, To: nb.Key})
		}
		seen[pair.Key] = struct{}{}
	}

	return out
}
