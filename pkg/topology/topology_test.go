package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineTopology(t *testing.T) *Topology {
	t.Helper()
	topo, err := NewBuilder().
		AddNode("A", KindInsideOriginates).
		AddNode("B", KindInside).
		AddNode("C", KindInsideOriginates).
		AddEdge("A", "B").
		AddEdge("B", "C").
		Build()
	require.NoError(t, err)
	return topo
}

func TestWellFormed(t *testing.T) {
	topo := lineTopology(t)
	assert.True(t, topo.IsWellFormed())
}

func TestDisconnectedIsNotWellFormed(t *testing.T) {
	topo, err := NewBuilder().
		AddNode("A", KindInsideOriginates).
		AddNode("Z", KindInsideOriginates).
		Build()
	require.NoError(t, err)
	assert.False(t, topo.IsWellFormed())
}

func TestNeighborsAreSymmetric(t *testing.T) {
	topo := lineTopology(t)
	bNeighbors := topo.Neighbors("B")
	locs := []string{bNeighbors[0].Loc, bNeighbors[1].Loc}
	assert.ElementsMatch(t, []string{"A", "C"}, locs)
}

func TestOriginationAndKindPredicates(t *testing.T) {
	topo := lineTopology(t)
	assert.True(t, topo.CanOriginateTraffic("A"))
	assert.False(t, topo.CanOriginateTraffic("B"))
	assert.True(t, topo.IsInside("B"))
	assert.False(t, topo.IsOutside("B"))

	origins := topo.OriginatingLocations()
	var locs []string
	for _, n := range origins {
		locs = append(locs, n.Loc)
	}
	assert.ElementsMatch(t, []string{"A", "C"}, locs)
}

func TestAlphabet(t *testing.T) {
	topo, err := NewBuilder().
		AddNode("A", KindInsideOriginates).
		AddNode("X", KindOutside).
		AddEdge("A", "X").
		Build()
	require.NoError(t, err)

	internal, external := topo.Alphabet()
	assert.Equal(t, []string{"A"}, internal)
	assert.Equal(t, []string{"X"}, external)
}

func TestBuildErrorsOnUnknownLocation(t *testing.T) {
	_, err := NewBuilder().AddNode("A", KindInside).AddEdge("A", "Ghost").Build()
	assert.Error(t, err)
}

func TestIsTopoNode(t *testing.T) {
	assert.True(t, Node{Loc: "A", Typ: KindInside}.IsTopoNode())
	assert.False(t, Node{Typ: KindStart}.IsTopoNode())
	assert.False(t, Node{Typ: KindEnd}.IsTopoNode())
}
