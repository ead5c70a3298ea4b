// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges in stable order i - (i+1)%n for i=0..n-1.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
// Even cycles are 2-colorable, odd cycles need 3 colors.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return ring(g, cfg, methodCycle, 0, n)
	}
}

// ring adds IDs idFn(offset)..idFn(offset+n-1) and closes them into a cycle.
func ring(g *core.Graph, cfg builderConfig, method string, offset, n int) error {
	for i := 0; i < n; i++ {
		if err := addVertices(g, method, cfg.idFn(offset+i)); err != nil {
			return err
		}
	}
	for i := 0; i < n; i++ {
		u := cfg.idFn(offset + i)
		v := cfg.idFn(offset + (i+1)%n)
		if err := addEdge(g, method, u, v); err != nil {
			return err
		}
	}

	return nil
}
