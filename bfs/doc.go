// Package bfs provides breadth-first search and connected-component discovery
// over a core.Graph.
//
// What
//
//   - BFS explores vertices in non-decreasing distance (edge count) from a start
//     vertex and returns a BFSResult with the visit Order, Depth and Parent maps.
//   - Components partitions the whole graph into connected components.
//   - Hooks: OnVisit (may abort with an error); neighbor filtering via
//     WithFilterNeighbor; depth limiting via WithMaxDepth; cancellation via
//     WithContext.
//
// Why
//
//   - The coloring engine treats every connected component as an independent
//     sub-problem and checks termination against the component's own vertex
//     set, which BFS supplies.
//
// Determinism
//
//	core.Graph enumerates vertices in insertion order and neighbors in
//	attachment order; BFS enqueues neighbors in that order, so Order and the
//	component list are fully reproducible. Components are listed in insertion
//	order of their first vertex.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if the start vertex is absent.
//   - ErrOptionViolation      for invalid options (negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails.
//   - context errors          when the context is canceled.
//   - hook errors             wrapped from OnVisit.
package bfs
