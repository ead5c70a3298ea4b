// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits edges for every unordered pair {i,j}, i<j, i asc then j asc.
//
// Complexity:
//   • Time: O(n²) edges.
//   • Space: O(n) for the cached IDs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

// Complete returns a Constructor that builds the complete graph K_n.
// K_n is the canonical witness that n-1 colors are not enough.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
		}
		if err := addVertices(g, methodComplete, ids...); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
