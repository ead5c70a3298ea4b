// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: recursive chronological backtracking over one connected component.
// Policy:
//   - Candidates for v are the palette, in order, minus colors held by
//     assigned neighbors (seeded or searched).
//   - Colors that failed at v are tracked locally to v's retry loop.
//   - Every assignment is pushed on an undo trail; a failed neighbor
//     reverts the trail to its length before v was colored.
//   - Termination is checked against the component's uncolored vertices.

package coloring

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/chroma/core"
)

// searcher encapsulates mutable state of one component search.
type searcher struct {
	graph   *core.Graph
	palette Palette
	opts    Options
	ctx     context.Context
	log     *zap.Logger

	seed      Assignment        // fixed colors, read-only
	own       map[string]string // colors assigned by this search
	trail     []string          // assignment order of own, for undo
	remaining int               // uncolored component vertices
	stats     Stats
}

// newSearcher prepares a search over component; seed is shared read-only.
func newSearcher(ctx context.Context, g *core.Graph, p Palette, o Options, seed Assignment, component []string) *searcher {
	s := &searcher{
		graph:   g,
		palette: p,
		opts:    o,
		ctx:     ctx,
		log:     o.Logger,
		seed:    seed,
		own:     make(map[string]string, len(component)),
		trail:   make([]string, 0, len(component)),
	}
	for _, v := range component {
		if _, fixed := seed[v]; !fixed {
			s.remaining++
		}
	}

	return s
}

// colorOf returns the current color of v.
func (s *searcher) colorOf(v string) (string, bool) {
	if c, ok := s.own[v]; ok {
		return c, true
	}
	c, ok := s.seed[v]

	return c, ok
}

// run roots the search at every vertex of component still uncolored, in
// component order. The first root that fails makes the component infeasible.
func (s *searcher) run(component []string) error {
	for _, root := range component {
		if s.remaining == 0 {
			return nil
		}
		if _, colored := s.colorOf(root); colored {
			continue
		}
		ok, err := s.search(root, 1)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: root %q exhausted %d colors", ErrInfeasible, root, len(s.palette))
		}
	}

	return nil
}

// search colors v and, recursively, its uncolored neighbors.
// It returns false when v has no candidate left; the trail is then
// exactly as it was on entry.
func (s *searcher) search(v string, depth int) (bool, error) {
	select {
	case <-s.ctx.Done():
		return false, s.ctx.Err()
	default:
	}
	if depth > s.stats.MaxDepth {
		s.stats.MaxDepth = depth
	}

	nbrs, err := s.graph.NeighborIDs(v)
	if err != nil {
		return false, fmt.Errorf("coloring: neighbors of %q: %w", v, err)
	}

	tried := make(map[string]struct{}, len(s.palette))
	mark := len(s.trail)
	for {
		color, ok := s.nextCandidate(nbrs, tried)
		if !ok {
			return false, nil
		}
		if err = s.assign(v, color, depth); err != nil {
			return false, err
		}
		if s.remaining == 0 {
			return true, nil
		}

		failed := false
		for _, nb := range nbrs {
			if _, colored := s.colorOf(nb); colored {
				continue
			}
			ok, err = s.search(nb, depth+1)
			if err != nil {
				return false, err
			}
			if !ok {
				failed = true
				break
			}
		}
		if !failed {
			return true, nil
		}

		if err = s.undo(mark, v, color); err != nil {
			return false, err
		}
		tried[color] = struct{}{}
	}
}

// nextCandidate returns the first palette color not held by a colored
// neighbor and not already tried at this vertex.
func (s *searcher) nextCandidate(nbrs []string, tried map[string]struct{}) (string, bool) {
	blocked := make(map[string]struct{}, len(nbrs))
	for _, nb := range nbrs {
		if c, ok := s.colorOf(nb); ok {
			blocked[c] = struct{}{}
		}
	}
	for _, c := range s.palette {
		if _, ok := blocked[c]; ok {
			continue
		}
		if _, ok := tried[c]; ok {
			continue
		}
		return c, true
	}

	return "", false
}

// assign records v=color on the trail, enforcing the step budget.
func (s *searcher) assign(v, color string, depth int) error {
	s.stats.Steps++
	if s.opts.MaxSteps > 0 && s.stats.Steps > s.opts.MaxSteps {
		return fmt.Errorf("%w: %d attempts at %q", ErrStepLimit, s.opts.MaxSteps, v)
	}

	s.own[v] = color
	s.trail = append(s.trail, v)
	s.remaining--
	s.log.Debug("assign", zap.String("vertex", v), zap.String("color", color), zap.Int("depth", depth))
	if err := s.opts.OnAssign(v, color); err != nil {
		return fmt.Errorf("coloring: OnAssign error at %q: %w", v, err)
	}

	return nil
}

// undo reverts every assignment made after mark, v's own included.
func (s *searcher) undo(mark int, v, color string) error {
	for _, u := range s.trail[mark:] {
		delete(s.own, u)
		s.remaining++
	}
	reverted := len(s.trail) - mark
	s.trail = s.trail[:mark]
	s.stats.Backtracks++
	s.log.Debug("backtrack", zap.String("vertex", v), zap.String("color", color), zap.Int("reverted", reverted))
	if err := s.opts.OnBacktrack(v, color); err != nil {
		return fmt.Errorf("coloring: OnBacktrack error at %q: %w", v, err)
	}

	return nil
}

// merged returns seed plus the colors found by this search.
func (s *searcher) merged() Assignment {
	out := s.seed.Clone()
	for v, c := range s.own {
		out[v] = c
	}

	return out
}
