// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices): one center plus n-1 leaves.
//   • Center has ID CenterVertexID and is inserted first.
//   • Leaves are cfg.idFn(1)..cfg.idFn(n-1); spokes emitted in that order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

// Star returns a Constructor that builds the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		if err := addVertices(g, methodStar, CenterVertexID); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := addVertices(g, methodStar, leaf); err != nil {
				return err
			}
			if err := addEdge(g, methodStar, CenterVertexID, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
