// Package chroma colors the vertices of undirected graphs so that no two
// adjacent vertices share a color, using a fixed, ordered palette and a
// recursive backtracking search.
//
// What is in the box:
//
//	core/      - undirected graph with string IDs and insertion-ordered adjacency
//	bfs/       - breadth-first traversal and connected-component discovery
//	builder/   - deterministic topology constructors (complete, cycle, wheel, grid, ...)
//	coloring/  - ColorComponent, ColorGraph, Verify and the Palette/Assignment types
//	cmd/chroma - command-line front end: color, validate, generate
//
// Quick ASCII example:
//
//	    a───b
//	     \ /
//	      c
//
//	with palette [red blue green] colors as a=red, b=blue, c=green.
//
// Everything is deterministic: the same graph, palette and options always
// produce the same assignment, independent of map iteration order.
//
//	go get github.com/katalvlaran/chroma
package chroma
