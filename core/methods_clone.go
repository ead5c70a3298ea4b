// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves vertex insertion order and every neighbor order.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Clone returns a deep copy of the Graph topology.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	for pair := g.adjacency.Oldest(); pair != nil; pair = pair.Next() {
		nbrs := orderedmap.New[string, struct{}]()
		for nb := pair.Value.Oldest(); nb != nil; nb = nb.Next() {
			nbrs.Set(nb.Key, struct{}{})
		}
		clone.adjacency.Set(pair.Key, nbrs)
	}
	clone.edgeCount = g.edgeCount

	return clone
}
