package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chroma/core"
)

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddVertex("A"))

	assert.Equal(t, []string{"A", "B"}, g.Vertices())
	assert.Equal(t, 2, g.VertexCount())
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	assert.False(t, g.HasVertex(""))
}

func TestAddEdge_MirrorsAdjacency(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []string{"A", "B"}, g.Vertices(), "endpoints are created in argument order")
}

func TestAddEdge_Rejections(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))

	assert.ErrorIs(t, g.AddEdge("A", "A"), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge("A", "B"), core.ErrMultiEdgeNotAllowed)
	assert.ErrorIs(t, g.AddEdge("B", "A"), core.ErrMultiEdgeNotAllowed)
	assert.ErrorIs(t, g.AddEdge("", "B"), core.ErrEmptyVertexID)
	assert.Equal(t, 1, g.EdgeCount())
}

func TestNeighborIDs_AttachmentOrder(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("hub", "z"))
	require.NoError(t, g.AddEdge("hub", "a"))
	require.NoError(t, g.AddEdge("m", "hub"))

	nbs, err := g.NeighborIDs("hub")
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a", "m"}, nbs)

	deg, err := g.Degree("hub")
	require.NoError(t, err)
	assert.Equal(t, 3, deg)

	_, err = g.NeighborIDs("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestEdges_EachOnceFromEarlierEndpoint(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("C"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C"))
	require.NoError(t, g.AddEdge("A", "C"))

	assert.Equal(t, []core.Edge{
		{From: "C", To: "B"},
		{From: "C", To: "A"},
		{From: "A", To: "B"},
	}, g.Edges())
}

func TestClone_IsIndependent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	c := g.Clone()
	require.NoError(t, c.AddEdge("B", "C"))

	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasVertex("C"))
	assert.Equal(t, 2, c.EdgeCount())

	round, err := core.FromAdjacency(c.AdjacencyList())
	require.NoError(t, err)
	assert.Equal(t, c.AdjacencyList(), round.AdjacencyList())
}

// TestConcurrentReaders ensures that parallel queries observe a consistent graph.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", i)))
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			nbs, err := g.NeighborIDs("X")
			assert.NoError(t, err)
			assert.Len(t, nbs, 50)
			assert.Len(t, g.Edges(), 50)
		}()
	}
	wg.Wait()
}
