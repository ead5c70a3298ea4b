// SPDX-License-Identifier: MIT
//
// File: verify.go
// Role: post-hoc checks of an assignment against a graph.

package coloring

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

// Verify returns ErrConflict, wrapped with the first offending edge, if two
// adjacent vertices share a color. Unassigned vertices are ignored.
func Verify(g *core.Graph, a Assignment) error {
	if g == nil {
		return ErrGraphNil
	}
	if cs := Conflicts(g, a); len(cs) > 0 {
		return fmt.Errorf("%w: %s", ErrConflict, cs[0])
	}

	return nil
}

// Conflicts lists every edge whose endpoints share a color, in the order of
// core.Graph.Edges. A nil graph has no conflicts.
func Conflicts(g *core.Graph, a Assignment) []Conflict {
	if g == nil || len(a) == 0 {
		return nil
	}
	var out []Conflict
	for _, e := range g.Edges() {
		cu, okU := a[e.From]
		cv, okV := a[e.To]
		if okU && okV && cu == cv {
			out = append(out, Conflict{U: e.From, V: e.To, Color: cu})
		}
	}

	return out
}

// Uncolored returns the vertices of g missing from a, in insertion order.
func Uncolored(g *core.Graph, a Assignment) []string {
	if g == nil {
		return nil
	}
	var out []string
	for _, v := range g.Vertices() {
		if _, ok := a[v]; !ok {
			out = append(out, v)
		}
	}

	return out
}
