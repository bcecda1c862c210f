package digraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildLine(t *testing.T) *Graph[string] {
	t.Helper()
	g := New[string]()
	g.AddVertex(1, "A")
	g.AddVertex(2, "B")
	g.AddVertex(3, "C")
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	return g
}

func TestAdjacencyAndDegree(t *testing.T) {
	g := buildLine(t)
	assert.Equal(t, []uint32{2}, g.Out(1))
	assert.Equal(t, []uint32{1}, g.In(2))
	assert.Equal(t, 1, g.OutDegree(2))
	assert.Equal(t, 1, g.InDegree(2))
	assert.Equal(t, 0, g.InDegree(1))
	assert.Equal(t, 0, g.OutDegree(3))
}

func TestDuplicateEdgeIgnored(t *testing.T) {
	g := buildLine(t)
	g.AddEdge(1, 2)
	assert.Equal(t, 1, g.OutDegree(1))
}

func TestRemoveVertexCascadesEdges(t *testing.T) {
	g := buildLine(t)
	g.RemoveVertex(2)
	assert.False(t, g.HasVertex(2))
	assert.Empty(t, g.Out(1))
	assert.Empty(t, g.In(3))
	assert.Equal(t, 2, g.NumVertices())
	assert.Equal(t, 0, g.NumEdges())
}

func TestRemoveVerticesWhere(t *testing.T) {
	g := buildLine(t)
	removed := g.RemoveVerticesWhere(func(id uint32, v string) bool { return v == "B" })
	assert.Equal(t, []uint32{2}, removed)
	assert.Equal(t, 2, g.NumVertices())
}

func TestRemoveEdgesWhere(t *testing.T) {
	g := buildLine(t)
	n := g.RemoveEdgesWhere(func(from, to uint32) bool { return from == 1 })
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, g.NumEdges())
}

func TestCloneIsIndependent(t *testing.T) {
	g := buildLine(t)
	clone := g.Clone()
	clone.RemoveVertex(2)

	assert.True(t, g.HasVertex(2))
	assert.False(t, clone.HasVertex(2))
	assert.Equal(t, g.NumVertices(), 3)
}

func TestWeaklyConnectedComponents(t *testing.T) {
	g := New[int]()
	g.AddVertex(1, 0)
	g.AddVertex(2, 0)
	g.AddVertex(3, 0)
	g.AddVertex(4, 0)
	g.AddEdge(1, 2)
	g.AddEdge(3, 4)

	labels := g.WeaklyConnectedComponents()
	assert.Equal(t, labels[1], labels[2])
	assert.Equal(t, labels[3], labels[4])
	assert.NotEqual(t, labels[1], labels[3])
	assert.False(t, g.IsWeaklyConnected())

	g.AddEdge(2, 3)
	assert.True(t, g.IsWeaklyConnected())
}

func TestShortestPath(t *testing.T) {
	g := buildLine(t)
	path, ok := g.ShortestPath(1, 3)
	require.True(t, ok)
	assert.Equal(t, []uint32{1, 2, 3}, path)

	_, ok = g.ShortestPath(3, 1)
	assert.False(t, ok)

	same, ok := g.ShortestPath(1, 1)
	require.True(t, ok)
	assert.Equal(t, []uint32{1}, same)
}

func TestPathEdges(t *testing.T) {
	assert.Equal(t, [][2]uint32{{1, 2}, {2, 3}}, PathEdges([]uint32{1, 2, 3}))
	assert.Nil(t, PathEdges([]uint32{1}))
}
