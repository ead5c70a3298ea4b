// Package graphio reads adjacency documents and writes coloring reports.
//
// An adjacency document is YAML or JSON (JSON is read by the YAML parser) in
// which key order is significant, because it fixes vertex insertion order and
// therefore the search order of the engine:
//
//	graph:
//	  a: [b, c]
//	  b: [a, c]
//	  c: [a, b]
//	palette: [red, blue, green]
//
// Output maps are written in vertex insertion order in both formats.
package graphio
