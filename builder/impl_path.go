// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits edges i - i+1 for i=0..n-2.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := addVertices(g, methodPath, cfg.idFn(i)); err != nil {
				return err
			}
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
