// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left IDs are leftPrefix+i (i=0..n1-1), right IDs rightPrefix+j.
//   • All left vertices are inserted before any right vertex.
//   • Edges are emitted for i asc, then j asc.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/chroma/core"
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		left := make([]string, n1)
		for i := range left {
			left[i] = cfg.leftPrefix + strconv.Itoa(i)
		}
		right := make([]string, n2)
		for j := range right {
			right[j] = cfg.rightPrefix + strconv.Itoa(j)
		}

		if err := addVertices(g, methodCompleteBipartite, left...); err != nil {
			return err
		}
		if err := addVertices(g, methodCompleteBipartite, right...); err != nil {
			return err
		}

		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
