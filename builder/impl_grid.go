// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Vertex IDs are "r,c"; inserted row-major.
//   • For each cell in row-major order: right edge first, then down edge.

package builder

import (
	"fmt"

	"github.com/katalvlaran/chroma/core"
)

// Grid returns a Constructor that builds a rows×cols 4-neighbour lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addVertices(g, methodGrid, GridID(r, c)); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := addEdge(g, methodGrid, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// GridID formats the vertex ID of cell (r, c) as used by Grid.
func GridID(r, c int) string {
	return fmt.Sprintf("%d,%d", r, c)
}
