// Package coloring assigns colors from a fixed, ordered palette to the
// vertices of a core.Graph so that adjacent vertices never share a color.
//
// The search is recursive chronological backtracking:
//
//   - A vertex tries the palette in order, skipping colors held by assigned
//     neighbors and colors that already failed at that vertex.
//   - After a tentative color, each uncolored neighbor is searched in
//     adjacency-list order with the full palette.
//   - When a neighbor cannot be colored, every assignment made since the
//     vertex was colored is undone and the next color is tried.
//
// Entry points:
//
//   - ColorComponent(g, start, palette, seed, opts...) colors the connected
//     component of start.
//   - ColorGraph(g, palette, opts...) colors every component independently;
//     an insufficient palette in one component does not stop the others.
//
// The palette is never grown: when the root of a component runs out of
// candidates the component is reported with ErrInfeasible. The search is not
// exhaustive. A failing neighbor makes the vertex change its own color rather
// than revisit the subtrees of earlier neighbors, and the root (the first
// uncolored vertex in insertion order) is never swapped for another. An
// infeasible palette is always reported as such; a palette equal to the
// chromatic number may occasionally be reported infeasible too. Palettes
// larger than the maximum degree never backtrack.
//
// Options:
//
//   - WithContext(ctx)            cancellation, checked before every vertex visit.
//   - WithMaxSteps(n)             bounds color attempts per component (ErrStepLimit).
//   - WithLogger(l)               zap debug tracing of assign and backtrack.
//   - WithOnAssign / WithOnBacktrack  hooks; an error aborts the search.
//   - WithInitialAssignment(a)    fixed colors for ColorGraph.
//   - WithParallelComponents(n)   color up to n components concurrently.
//
// Errors:
//
//   - ErrGraphNil, ErrEmptyPalette, ErrInvalidPalette, ErrStartVertexNotFound,
//     ErrInvalidAssignment, ErrOptionViolation for malformed input.
//   - ErrInfeasible when the palette is insufficient.
//   - ErrStepLimit, context.Canceled, context.DeadlineExceeded on exhaustion.
package coloring
