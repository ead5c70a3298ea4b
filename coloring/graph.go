// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: ColorGraph driver, one search per connected component.
// Determinism:
//   - Roots are the uncolored vertices in insertion order not covered by an
//     earlier component; results merge in that order whatever the parallelism.

package coloring

import (
	"context"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/chroma/bfs"
	"github.com/katalvlaran/chroma/core"
)

// job is one component to search.
type job struct {
	root     string
	vertices []string
}

// ColorGraph colors every connected component of g that is not fully
// covered by the initial assignment (WithInitialAssignment).
//
// A component the palette cannot color is reported in Result.Components
// with ErrInfeasible and contributes no entries; the others still run.
// The returned error is non-nil only for malformed input, cancellation,
// ErrStepLimit or a hook error; the partial Result (solved components so
// far) accompanies those last three.
func ColorGraph(g *core.Graph, palette Palette, opts ...Option) (*Result, error) {
	o, err := prepare(g, palette, opts)
	if err != nil {
		return nil, err
	}
	if err = validateSeed(g, palette, o.Initial); err != nil {
		return nil, err
	}
	seed := o.Initial.Clone()

	jobs, err := plan(o.Ctx, g, seed)
	if err != nil {
		return &Result{Assignment: seed, total: g.VertexCount()}, err
	}

	out := make([]ComponentResult, len(jobs))
	found := make([]Assignment, len(jobs))
	if o.Parallel > 1 && len(jobs) > 1 {
		err = runParallel(g, palette, o, seed, jobs, out, found)
	} else {
		err = runSequential(o.Ctx, g, palette, o, seed, jobs, out, found)
	}

	res := &Result{Assignment: seed, total: g.VertexCount()}
	for i := range jobs {
		if out[i].Root == "" {
			break
		}
		res.Components = append(res.Components, out[i])
		res.Stats.add(out[i].Stats)
		if out[i].Solved {
			for v, c := range found[i] {
				res.Assignment[v] = c
			}
		}
	}
	if o.Stats != nil {
		*o.Stats = res.Stats
	}
	o.Logger.Debug("color graph",
		zap.Int("components", len(res.Components)),
		zap.Int("infeasible", len(res.Infeasible())),
		zap.Int("steps", res.Stats.Steps),
		zap.Int("backtracks", res.Stats.Backtracks),
	)

	return res, err
}

// plan lists the components that still hold uncolored vertices. A job's
// root is its first uncolored vertex in insertion order, and jobs are
// ordered by root. A component whose first vertex is seeded is walked
// again from its root.
func plan(ctx context.Context, g *core.Graph, seed Assignment) ([]job, error) {
	comps, err := bfs.Components(g, bfs.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	rank := make(map[string]int, g.VertexCount())
	for i, v := range g.Vertices() {
		rank[v] = i
	}

	var jobs []job
	for _, comp := range comps {
		root := ""
		for _, v := range comp {
			if _, fixed := seed[v]; fixed {
				continue
			}
			if root == "" || rank[v] < rank[root] {
				root = v
			}
		}
		if root == "" {
			continue // fully seeded
		}
		vertices := comp
		if root != comp[0] {
			res, err := bfs.BFS(g, root, bfs.WithContext(ctx))
			if err != nil {
				return nil, err
			}
			vertices = res.Order
		}
		jobs = append(jobs, job{root: root, vertices: vertices})
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return rank[jobs[i].root] < rank[jobs[j].root]
	})

	return jobs, nil
}

// searchJob runs one component search and returns only fatal errors.
func searchJob(ctx context.Context, g *core.Graph, palette Palette, o Options, seed Assignment, j job) (ComponentResult, Assignment, error) {
	lo := o
	lo.Logger = o.Logger.With(zap.String("root", j.root))
	s := newSearcher(ctx, g, palette, lo, seed, j.vertices)
	err := s.run(j.vertices)

	cr := ComponentResult{
		Root:     j.root,
		Vertices: j.vertices,
		Solved:   err == nil,
		Err:      err,
		Stats:    s.stats,
	}
	if err != nil {
		lo.Logger.Debug("component unsolved", zap.Error(err))
		if isInfeasible(err) {
			err = nil
		}
	}

	return cr, s.own, err
}

// runSequential searches jobs in order, stopping at the first fatal error.
func runSequential(ctx context.Context, g *core.Graph, palette Palette, o Options, seed Assignment, jobs []job, out []ComponentResult, found []Assignment) error {
	for i, j := range jobs {
		cr, own, err := searchJob(ctx, g, palette, o, seed, j)
		out[i], found[i] = cr, own
		if err != nil {
			return err
		}
	}

	return nil
}

// runParallel searches up to o.Parallel jobs at once. Components share no
// vertices, so each worker writes only its own map and slot.
func runParallel(g *core.Graph, palette Palette, o Options, seed Assignment, jobs []job, out []ComponentResult, found []Assignment) error {
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Parallel)
	for i, j := range jobs {
		i, j := i, j
		eg.Go(func() error {
			cr, own, err := searchJob(ctx, g, palette, o, seed, j)
			out[i], found[i] = cr, own
			return err
		})
	}

	return eg.Wait()
}
