// Package builder_test contains functional tests for the graph constructors,
// verifying topology, counts, deterministic ordering and parameter validation.
package builder_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma/builder"
	"github.com/katalvlaran/chroma/core"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 0; i < 5; i++ {
					u, v := fmt.Sprint(i), fmt.Sprint((i+1)%5)
					assert.Truef(t, g.HasEdge(u, v), "missing ring edge %s-%s", u, v)
				}
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0", "1"))
				assert.True(t, g.HasEdge("2", "3"))
				assert.False(t, g.HasEdge("3", "0"))
			},
		},
		{
			name:  "Path(1)",
			ctor:  builder.Path(1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "Star(4)",
			ctor:  builder.Star(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for i := 1; i < 4; i++ {
					assert.True(t, g.HasEdge(builder.CenterVertexID, fmt.Sprint(i)))
				}
				assert.Equal(t, builder.CenterVertexID, g.Vertices()[0])
			},
		},
		{
			name:  "Wheel(5)",
			ctor:  builder.Wheel(5),
			wantV: 5, wantE: 8, // rim C4 + 4 spokes
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0", "1"))
				assert.True(t, g.HasEdge("3", "0"))
				assert.True(t, g.HasEdge(builder.CenterVertexID, "2"))
				d, err := g.Degree(builder.CenterVertexID)
				require.NoError(t, err)
				assert.Equal(t, 4, d)
			},
		},
		{
			name:  "Complete(4)",
			ctor:  builder.Complete(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, id := range g.Vertices() {
					d, err := g.Degree(id)
					require.NoError(t, err)
					assert.Equal(t, 3, d)
				}
			},
		},
		{
			name:  "Complete(1)",
			ctor:  builder.Complete(1),
			wantV: 1, wantE: 0,
		},
		{
			name:  "CompleteBipartite(2,3)",
			ctor:  builder.CompleteBipartite(2, 3),
			wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, []string{"L0", "L1", "R0", "R1", "R2"}, g.Vertices())
				assert.True(t, g.HasEdge("L0", "R0"))
				assert.True(t, g.HasEdge("L1", "R2"))
				assert.False(t, g.HasEdge("L0", "L1"))
			},
		},
		{
			name:  "Grid(2,3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7, // 2*2 horizontal + 3 vertical
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0,0", "0,1"))
				assert.True(t, g.HasEdge("0,2", "1,2"))
				assert.False(t, g.HasEdge("0,0", "1,1"))
			},
		},
		{
			name:  "RandomSparse_p0(5)",
			ctor:  builder.RandomSparse(5, 0.0),
			wantV: 5, wantE: 0,
		},
		{
			name:  "RandomSparse_p1(5)",
			ctor:  builder.RandomSparse(5, 1.0),
			wantV: 5, wantE: 10,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount(), "vertex count")
			assert.Equal(t, tc.wantE, g.EdgeCount(), "edge count")
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_Errors checks that constructors reject meaningless parameters
// with the documented sentinels.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opts    []builder.BuilderOption
		ctor    builder.Constructor
		wantErr error
	}{
		{"Complete(0)", nil, builder.Complete(0), builder.ErrTooFewVertices},
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(0)", nil, builder.Path(0), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", nil, builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"Grid(0,1)", nil, builder.Grid(0, 1), builder.ErrTooFewVertices},
		{"RandomSparse(0)", nil, builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse_pNeg", nil, builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse_pHigh", nil, builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse_noRNG", nil, builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, g)
		})
	}
}

// TestBuildGraph_Composition verifies constructors share one graph:
// overlapping constructors fail on the first repeated edge.
func TestBuildGraph_Composition(t *testing.T) {
	t.Parallel()

	// Grid IDs ("r,c") and default IDs ("0","1") never collide.
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 7, g.VertexCount())
	assert.Equal(t, 2+4, g.EdgeCount())
	assert.Equal(t, []string{"0", "1", "2", "0,0", "0,1", "1,0", "1,1"}, g.Vertices())

	// Path(3) then Cycle(3) repeats edge 0-1.
	_, err = builder.BuildGraph(nil, builder.Path(3), builder.Cycle(3))
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

// TestRandomSparse_Deterministic verifies the same seed yields the same edge list.
func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) []core.Edge {
		g, err := builder.BuildGraph(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithSymbNumb("v")},
			builder.RandomSparse(12, 0.3),
		)
		require.NoError(t, err)
		return g.Edges()
	}

	first := build(42)
	assert.Equal(t, first, build(42))
	for _, e := range first {
		assert.Contains(t, e.From, "v")
	}
}

// TestBuilders_IDScheme verifies letter IDs flow through constructors.
func TestBuilders_IDScheme(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithLetterIDs()}, builder.Cycle(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, g.Vertices())
	assert.True(t, g.HasEdge("c", "a"))
}
