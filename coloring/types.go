// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinels, options and result types of the coloring engine.

package coloring

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for coloring runs.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("coloring: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("coloring: start vertex not found")

	// ErrEmptyPalette is returned when the palette has no colors.
	ErrEmptyPalette = errors.New("coloring: palette is empty")

	// ErrInvalidPalette is returned for empty or repeated color tokens.
	ErrInvalidPalette = errors.New("coloring: invalid palette")

	// ErrInvalidAssignment is returned when a seeded assignment names an
	// unknown vertex, uses a color outside the palette, or already conflicts.
	ErrInvalidAssignment = errors.New("coloring: invalid seeded assignment")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("coloring: invalid option supplied")

	// ErrInfeasible means the root of a component exhausted every candidate:
	// the palette is insufficient for that component given the seeded colors.
	ErrInfeasible = errors.New("coloring: palette insufficient")

	// ErrStepLimit is returned when a component search exceeds MaxSteps.
	ErrStepLimit = errors.New("coloring: step limit exceeded")

	// ErrConflict is returned by Verify for adjacent vertices sharing a color.
	ErrConflict = errors.New("coloring: adjacent vertices share a color")
)

// Option configures a coloring run via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation on call.
type Option func(*Options)

// Options holds parameters and callbacks of a coloring run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked before every vertex visit.
	Ctx context.Context

	// MaxSteps bounds the color attempts of one component search.
	// 0 disables the limit.
	MaxSteps int

	// Logger receives debug-level assign/backtrack traces.
	Logger *zap.Logger

	// OnAssign is called after v receives color; an error aborts the run.
	OnAssign func(v, color string) error

	// OnBacktrack is called after color is withdrawn from v; an error aborts the run.
	OnBacktrack func(v, color string) error

	// Initial seeds ColorGraph. Seeded vertices are fixed and never recolored.
	Initial Assignment

	// Parallel is the number of components ColorGraph may color concurrently.
	// Hooks must be safe for concurrent use when Parallel > 1.
	Parallel int

	// Stats, when non-nil, receives the effort of the run on return,
	// including runs that end in an error after the search started.
	Stats *Stats

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no step limit
//   - a no-op logger
//   - no-op hooks
//   - no seed, sequential components.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		MaxSteps:    0,
		Logger:      zap.NewNop(),
		OnAssign:    func(string, string) error { return nil },
		OnBacktrack: func(string, string) error { return nil },
		Parallel:    1,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps limits color attempts per component search.
//
//	n > 0: at most n attempts, then ErrStepLimit
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithLogger injects a logger for search tracing.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnAssign registers a callback run after each tentative assignment.
func WithOnAssign(fn func(v, color string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAssign = fn
		}
	}
}

// WithOnBacktrack registers a callback run after each withdrawn color.
func WithOnBacktrack(fn func(v, color string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnBacktrack = fn
		}
	}
}

// WithInitialAssignment seeds ColorGraph with fixed colors.
// The map is copied; the caller's value is never mutated.
func WithInitialAssignment(a Assignment) Option {
	return func(o *Options) {
		o.Initial = a.Clone()
	}
}

// WithParallelComponents colors up to n components concurrently.
// The result is identical to sequential processing.
func WithParallelComponents(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Parallel must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Parallel = n
	}
}

// WithStats reports the effort of a ColorComponent or ColorGraph run into dst.
func WithStats(dst *Stats) Option {
	return func(o *Options) {
		o.Stats = dst
	}
}

// Stats counts search effort.
type Stats struct {
	Steps      int // color attempts
	Backtracks int // colors withdrawn after a neighbor failed
	MaxDepth   int // deepest recursion level reached (root = 1)
}

// add folds s2 into s.
func (s *Stats) add(s2 Stats) {
	s.Steps += s2.Steps
	s.Backtracks += s2.Backtracks
	if s2.MaxDepth > s.MaxDepth {
		s.MaxDepth = s2.MaxDepth
	}
}

// ComponentResult describes one component search of ColorGraph.
type ComponentResult struct {
	Root     string   // first uncolored vertex of the component in insertion order
	Vertices []string // component vertices in BFS order from Root
	Solved   bool
	Err      error // ErrInfeasible, or the error that aborted the search
	Stats    Stats
}

// Result is the outcome of ColorGraph.
type Result struct {
	// Assignment holds the seed plus every solved component.
	Assignment Assignment
	// Components lists searched components in the order of their roots.
	Components []ComponentResult
	// Stats aggregates all component searches.
	Stats Stats

	total int
}

// Complete reports whether every vertex of the graph is assigned.
func (r *Result) Complete() bool {
	return len(r.Assignment) == r.total
}

// Infeasible returns the components the palette could not color.
func (r *Result) Infeasible() []ComponentResult {
	var out []ComponentResult
	for _, c := range r.Components {
		if errors.Is(c.Err, ErrInfeasible) {
			out = append(out, c)
		}
	}

	return out
}

// Conflict is an edge whose endpoints share a color.
type Conflict struct {
	U, V  string
	Color string
}

// String renders the conflict as "u-v (color)".
func (c Conflict) String() string {
	return fmt.Sprintf("%s-%s (%s)", c.U, c.V, c.Color)
}
