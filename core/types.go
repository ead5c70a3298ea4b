// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge and AdjacencyEntry types, sentinel errors and the constructor.
// Concurrency:
//   - mu guards both the vertex catalog and the adjacency buckets.
//   - Lock order is trivial (one lock); no method calls another exported method under lock.

package core

import (
	"errors"
	"sync"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates an adjacency import declared the same vertex twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrLoopNotAllowed indicates a self-loop was requested.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was requested.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrAsymmetricAdjacency indicates u lists v as a neighbor but v does not list u.
	ErrAsymmetricAdjacency = errors.New("core: asymmetric adjacency")
)

// Edge is an undirected connection between two vertices.
// From is the endpoint that was inserted into the graph first.
type Edge struct {
	From string
	To   string
}

// AdjacencyEntry is one row of an ordered adjacency mapping:
// a vertex and its neighbors in adjacency-list order.
type AdjacencyEntry struct {
	// ID is the vertex identifier.
	ID string

	// Neighbors lists adjacent vertex IDs; order is preserved.
	Neighbors []string
}

// neighborSet is an insertion-ordered set of neighbor IDs.
type neighborSet = orderedmap.OrderedMap[string, struct{}]

// Graph is an undirected simple graph with insertion-ordered vertices and
// neighbor lists.
//
// The zero value is not usable; construct with NewGraph or FromAdjacency.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	// adjacency[v] is the ordered neighbor set of v; key order is vertex insertion order.
	adjacency *orderedmap.OrderedMap[string, *neighborSet]

	// edgeCount is the number of undirected edges (each mirrored pair counts once).
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		adjacency: orderedmap.New[string, *neighborSet](),
	}
}
