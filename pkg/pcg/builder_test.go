package pcg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-pcg/pkg/automaton"
	"github.com/dd0wney/cluso-pcg/pkg/pcgerrors"
	"github.com/dd0wney/cluso-pcg/pkg/topology"
)

func TestBuildFromAutomataAcceptsAtExpectedLocations(t *testing.T) {
	topo := lineTopology(t)
	alphabet := []string{"A", "B", "C"}
	d1 := endsWith("A", alphabet)
	d2 := endsWith("C", alphabet)

	cg, err := BuildFromAutomata(topo, []*automaton.DFA{d1, d2}, nil)
	require.NoError(t, err)

	prefs := cg.Preferences()
	assert.True(t, prefs.Contains(1))
	assert.True(t, prefs.Contains(2))
	assert.Equal(t, 2, prefs.Len())

	accepting := cg.AcceptingLocations()
	assert.True(t, accepting["A"])
	assert.True(t, accepting["C"])
	assert.False(t, accepting["B"])

	var aAccept, cAccept int
	for _, id := range cg.G.Vertices() {
		v, _ := cg.G.Value(id)
		if v.Accept.IsEmpty() {
			continue
		}
		switch v.Node.Loc {
		case "A":
			aAccept++
			assert.True(t, v.Accept.Contains(1))
			assert.False(t, v.Accept.Contains(2))
		case "C":
			cAccept++
			assert.True(t, v.Accept.Contains(2))
			assert.False(t, v.Accept.Contains(1))
		default:
			t.Fatalf("unexpected accepting location %q", v.Node.Loc)
		}
	}
	assert.Equal(t, 1, aAccept)
	assert.Equal(t, 1, cAccept)
}

func TestBuildFromAutomataTooManyPreferences(t *testing.T) {
	topo := lineTopology(t)
	autos := make([]*automaton.DFA, MaxPreferences+1)
	for i := range autos {
		autos[i] = automaton.New(0).Accept(0)
	}
	_, err := BuildFromAutomata(topo, autos, nil)
	assert.ErrorIs(t, err, pcgerrors.ErrTooManyPreferences)
}

func TestBuildFromAutomataMalformedTopology(t *testing.T) {
	topo, err := topology.NewBuilder().
		AddNode("A", topology.KindInsideOriginates).
		AddNode("Z", topology.KindInsideOriginates).
		Build()
	require.NoError(t, err)

	_, err = BuildFromAutomata(topo, nil, nil)
	assert.ErrorIs(t, err, pcgerrors.ErrMalformedTopology)
}

func TestStartAndEndInvariants(t *testing.T) {
	topo := lineTopology(t)
	alphabet := []string{"A", "B", "C"}
	cg, err := BuildFromAutomata(topo, []*automaton.DFA{endsWith("A", alphabet)}, nil)
	require.NoError(t, err)

	start := cg.StartState()
	assert.Equal(t, StartID, start.Id)
	assert.True(t, start.Accept.IsEmpty())
	assert.Empty(t, cg.G.In(cg.Start))

	end := cg.EndState()
	assert.Equal(t, EndID, end.Id)
	assert.Empty(t, cg.G.Out(cg.End))

	for _, id := range cg.G.Vertices() {
		v, _ := cg.G.Value(id)
		if id == cg.Start || id == cg.End {
			continue
		}
		assert.True(t, v.Node.IsTopoNode())
		if !v.Accept.IsEmpty() {
			assert.True(t, cg.G.HasEdge(id, cg.End))
		}
	}
}
