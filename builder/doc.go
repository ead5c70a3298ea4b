// Package builder provides deterministic, functional-options style topology
// constructors for core.Graph.
//
// The constructors double as coloring fixtures: each classic family has a
// known chromatic number, which makes them the natural inputs for checking
// that a palette is sufficient or provably too small.
//
//	Complete(n)            K_n        needs n colors
//	Cycle(n)               C_n        needs 2 (even n) or 3 (odd n)
//	Path(n)                P_n        needs 2
//	Star(n)                K_{1,n-1}  needs 2
//	Wheel(n)               W_n        needs 3 (odd n) or 4 (even n)
//	CompleteBipartite(a,b) K_{a,b}    needs 2
//	Grid(r,c)              r×c grid   needs 2 (1 when r=c=1)
//	RandomSparse(n,p)      G(n,p)     seeded Erdős–Rényi sample
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the ID scheme, RNG and bipartite prefixes.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – LetterIDFn:        lowercase spreadsheet-style names ("a",…,"z","aa",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – SymbolNumberIDFn:  prefix + decimal ("v0","v1",…).
//
// Guarantees:
//
//   - Deterministic: same options, seed and constructor order ⇒ identical
//     vertex order and identical adjacency-list order.
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; constructors themselves never panic and return sentinels.
//   - Constructors compose: BuildGraph applies them in order on one graph.
package builder
