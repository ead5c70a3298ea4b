// SPDX-License-Identifier: MIT
//
// File: component.go
// Role: ColorComponent entry point and shared input validation.

package coloring

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/multierr"

	"github.com/katalvlaran/chroma/bfs"
	"github.com/katalvlaran/chroma/core"
)

// ColorComponent colors the connected component of start.
//
// Implementation:
//   - Stage 1: Validate graph, options, palette, start and the seeded assignment.
//   - Stage 2: Collect the component in BFS order from start.
//   - Stage 3: Search from start, then from every component vertex still
//     uncolored (seeded vertices can cut the component), in BFS order.
//
// Behavior highlights:
//   - assignment is never mutated; seeded colors are fixed and never undone.
//   - On success the returned Assignment holds the seed plus the whole component.
//   - ErrInfeasible (wrapped with the failing root) returns a nil Assignment.
//   - Cancellation, ErrStepLimit and hook errors return the consistent partial
//     Assignment reached so far together with the error.
//
// Complexity:
//   - Exponential in the component size in the worst case; O(V+E) when the
//     palette exceeds the maximum degree (no backtracking occurs).
func ColorComponent(g *core.Graph, start string, palette Palette, assignment Assignment, opts ...Option) (Assignment, error) {
	o, err := prepare(g, palette, opts)
	if err != nil {
		return nil, err
	}
	if err = validateSeed(g, palette, assignment); err != nil {
		return nil, err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	res, err := bfs.BFS(g, start, bfs.WithContext(o.Ctx))
	if err != nil {
		return nil, err
	}

	s := newSearcher(o.Ctx, g, palette, o, assignment, res.Order)
	err = s.run(res.Order)
	if o.Stats != nil {
		*o.Stats = s.stats
	}
	if err != nil {
		if isInfeasible(err) {
			return nil, err
		}
		return s.merged(), err
	}

	return s.merged(), nil
}

// prepare resolves options and validates the graph and palette.
func prepare(g *core.Graph, palette Palette, opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	if err := palette.Validate(); err != nil {
		return Options{}, err
	}

	return o, nil
}

// validateSeed reports every unknown vertex, foreign color and seeded
// conflict at once.
func validateSeed(g *core.Graph, palette Palette, seed Assignment) error {
	var errs error
	for _, v := range g.Vertices() {
		c, ok := seed[v]
		if !ok {
			continue
		}
		if !palette.Contains(c) {
			errs = multierr.Append(errs, fmt.Errorf("%w: %q has color %q outside the palette", ErrInvalidAssignment, v, c))
		}
	}
	var unknown []string
	for v := range seed {
		if !g.HasVertex(v) {
			unknown = append(unknown, v)
		}
	}
	sort.Strings(unknown)
	for _, v := range unknown {
		errs = multierr.Append(errs, fmt.Errorf("%w: unknown vertex %q", ErrInvalidAssignment, v))
	}
	for _, c := range Conflicts(g, seed) {
		errs = multierr.Append(errs, fmt.Errorf("%w: seeded conflict %s", ErrInvalidAssignment, c))
	}

	return errs
}

// isInfeasible reports whether err only signals an insufficient palette.
func isInfeasible(err error) bool {
	return errors.Is(err, ErrInfeasible)
}
