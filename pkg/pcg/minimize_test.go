package pcg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-pcg/pkg/automaton"
	"github.com/dd0wney/cluso-pcg/pkg/topology"
)

func buildLineCG(t *testing.T) *T {
	t.Helper()
	topo := lineTopology(t)
	alphabet := []string{"A", "B", "C"}
	d1 := endsWith("A", alphabet)
	cg, err := BuildFromAutomata(topo, []*automaton.DFA{d1}, nil)
	require.NoError(t, err)
	return cg
}

func TestMinimizeIsMonotoneAndIdempotent(t *testing.T) {
	cg := buildLineCG(t)
	before := cg.G.NumVertices() + cg.G.NumEdges()

	first := Minimize(cg.CopyGraph(), nil)
	afterFirst := first.G.NumVertices() + first.G.NumEdges()
	assert.LessOrEqual(t, afterFirst, before)

	verticesAfterFirst := first.G.NumVertices()
	edgesAfterFirst := first.G.NumEdges()

	second := Minimize(first.CopyGraph(), nil)
	assert.Equal(t, verticesAfterFirst, second.G.NumVertices())
	assert.Equal(t, edgesAfterFirst, second.G.NumEdges())
}

func TestMinimizeRemovesUnreachableFromEnd(t *testing.T) {
	cg := buildLineCG(t)
	// A dead-end state reachable from Start but with no path to End.
	deadID := uint32(9999)
	cg.G.AddVertex(deadID, CgState{Id: deadID, Node: topology.Node{Loc: "B", Typ: topology.KindInside}})
	cg.G.AddEdge(cg.Start, deadID)

	minimized := Minimize(cg, nil)
	assert.False(t, minimized.G.HasVertex(deadID))
}
