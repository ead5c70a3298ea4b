// Package core provides the thread-safe, in-memory undirected Graph consumed
// by the coloring engine and its helpers.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, unweighted, simple: every AddEdge mirrors adjacency in both
//     directions; self-loops (ErrLoopNotAllowed) and parallel edges
//     (ErrMultiEdgeNotAllowed) are rejected.
//   - Insertion-ordered: Vertices() enumerates vertices in the order they were
//     first added, and NeighborIDs(v) enumerates neighbors in the order they were
//     attached to v. Both orders are significant to the coloring search, which
//     uses them as its root order and recursion order respectively.
//   - Strict import: FromAdjacency turns an ordered adjacency mapping (as handed
//     over by a graph provider) into a Graph, preserving every list order, and
//     rejects malformed input (unknown neighbors, self-loops, duplicate entries,
//     asymmetric lists) with all violations reported at once.
//
// Ordering is backed by github.com/wk8/go-ordered-map/v2; a single
// sync.RWMutex guards the vertex catalog and adjacency so concurrent readers
// never block each other.
//
// Core Methods:
//
//	// Construction
//	NewGraph() *Graph                                   // O(1)
//	FromAdjacency(entries []AdjacencyEntry) (*Graph, error) // O(V+E)
//
//	// Vertex lifecycle
//	AddVertex(id string) error                          // O(1) amortized
//	HasVertex(id string) bool                           // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string) error                          // O(1) amortized
//	HasEdge(u, v string) bool                           // O(1)
//
//	// Queries
//	Vertices() []string                                 // O(V), insertion order
//	NeighborIDs(id string) ([]string, error)            // O(d), attachment order
//	Degree(id string) (int, error)                      // O(1)
//	Edges() []Edge                                      // O(V+E)
//	AdjacencyList() []AdjacencyEntry                    // O(V+E)
//	Clone() *Graph                                      // O(V+E)
//
// Errors:
//
//	ErrEmptyVertexID        - vertex ID is the empty string.
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrDuplicateVertex      - adjacency import lists the same vertex twice.
//	ErrLoopNotAllowed       - self-loop requested.
//	ErrMultiEdgeNotAllowed  - the edge already exists.
//	ErrAsymmetricAdjacency  - u lists v but v does not list u.
package core
