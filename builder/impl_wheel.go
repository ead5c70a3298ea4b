// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices): rim of n-1 vertices plus a hub.
//   • Rim is cfg.idFn(0)..cfg.idFn(n-2) closed into a cycle (as Cycle(n-1)).
//   • Hub CenterVertexID is inserted after the rim; spokes follow rim order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

// Wheel returns a Constructor that builds the wheel W_n.
// An odd rim (even n) pushes the chromatic number to 4.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		rim := n - 1
		if err := ring(g, cfg, methodWheel, 0, rim); err != nil {
			return err
		}
		if err := addVertices(g, methodWheel, CenterVertexID); err != nil {
			return err
		}
		for i := 0; i < rim; i++ {
			if err := addEdge(g, methodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
