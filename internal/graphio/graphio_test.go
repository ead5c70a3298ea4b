package graphio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma/coloring"
	"github.com/katalvlaran/chroma/core"
	"github.com/katalvlaran/chroma/internal/graphio"
)

const triangleYAML = `
graph:
  c: [a, b]
  a: [c, b]
  b: [a, c]
palette: [red, blue, green]
`

func TestDecode_YAMLKeepsOrder(t *testing.T) {
	t.Parallel()

	doc, err := graphio.Decode(strings.NewReader(triangleYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, doc.Graph.Vertices())
	nbrs, err := doc.Graph.NeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, nbrs)
	assert.Equal(t, []string{"red", "blue", "green"}, doc.Palette)
}

func TestDecode_JSON(t *testing.T) {
	t.Parallel()

	doc, err := graphio.Decode(strings.NewReader(`{"graph": {"b": ["a"], "a": ["b"], "z": []}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "z"}, doc.Graph.Vertices())
	assert.Nil(t, doc.Palette)
	assert.Equal(t, 1, doc.Graph.EdgeCount())
}

func TestDecode_IsolatedNull(t *testing.T) {
	t.Parallel()

	doc, err := graphio.Decode(strings.NewReader("graph:\n  a:\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, doc.Graph.Vertices())
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"empty", "", graphio.ErrMalformedDocument},
		{"not a mapping", "- a\n- b\n", graphio.ErrMalformedDocument},
		{"missing graph", "palette: [red]\n", graphio.ErrMalformedDocument},
		{"unknown field", "graph: {}\nextra: 1\n", graphio.ErrMalformedDocument},
		{"graph is a list", "graph: [a, b]\n", graphio.ErrMalformedDocument},
		{"neighbors not a list", "graph:\n  a: {b: c}\n", graphio.ErrMalformedDocument},
		{"asymmetric", "graph:\n  a: [b]\n  b: []\n", core.ErrAsymmetricAdjacency},
		{"unknown neighbor", "graph:\n  a: [x]\n", core.ErrVertexNotFound},
		{"self loop", "graph:\n  a: [a]\n", core.ErrLoopNotAllowed},
		{"duplicate vertex", "graph:\n  a: []\n  a: []\n", core.ErrDuplicateVertex},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := graphio.Decode(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestWriteReport_JSON(t *testing.T) {
	t.Parallel()

	doc, err := graphio.Decode(strings.NewReader(triangleYAML))
	require.NoError(t, err)
	a := coloring.Assignment{"a": "blue", "c": "red"}
	r := graphio.NewReport(doc.Graph, a, []string{"c"}, coloring.Stats{Steps: 4, Backtracks: 4, MaxDepth: 3})
	assert.False(t, r.Complete)

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteReport(&buf, graphio.FormatJSON, r))
	assert.JSONEq(t, `{
		"complete": false,
		"assignment": {"c": "red", "a": "blue"},
		"uncolored": ["b"],
		"infeasible": ["c"],
		"stats": {"steps": 4, "backtracks": 4, "max_depth": 3}
	}`, buf.String())
	// insertion order, not alphabetical
	assert.Less(t, strings.Index(buf.String(), `"c"`), strings.Index(buf.String(), `"a"`))
}

func TestWriteReport_YAML(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.NoError(t, g.AddEdge("b", "a"))
	r := graphio.NewReport(g, coloring.Assignment{"a": "blue", "b": "red"}, nil, coloring.Stats{Steps: 2, MaxDepth: 2})

	var buf bytes.Buffer
	require.NoError(t, graphio.WriteReport(&buf, graphio.FormatYAML, r))
	assert.Equal(t, `complete: true
assignment:
  b: red
  a: blue
stats:
  steps: 2
  backtracks: 0
  max_depth: 2
`, buf.String())
}

func TestWriteGraph_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, f := range []graphio.Format{graphio.FormatJSON, graphio.FormatYAML} {
		f := f
		t.Run(string(f), func(t *testing.T) {
			t.Parallel()
			g := core.NewGraph()
			require.NoError(t, g.AddEdge("x", "y"))
			require.NoError(t, g.AddEdge("x", "w"))
			require.NoError(t, g.AddVertex("lonely"))

			var buf bytes.Buffer
			require.NoError(t, graphio.WriteGraph(&buf, f, g, []string{"red", "blue"}))

			doc, err := graphio.Decode(&buf)
			require.NoError(t, err)
			assert.Equal(t, g.AdjacencyList(), doc.Graph.AdjacencyList())
			assert.Equal(t, []string{"red", "blue"}, doc.Palette)
		})
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := graphio.ParseFormat("yaml")
	require.NoError(t, err)
	assert.Equal(t, graphio.FormatYAML, f)

	_, err = graphio.ParseFormat("xml")
	assert.Error(t, err)
}
