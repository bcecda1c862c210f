package pcg

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-pcg/pkg/automaton"
	"github.com/dd0wney/cluso-pcg/pkg/topology"
)

// lineTopology builds the three-node A-B-C line used throughout the PCG
// core's test suite: A and C can originate traffic, B cannot.
func lineTopology(t *testing.T) *topology.Topology {
	t.Helper()
	topo, err := topology.NewBuilder().
		AddNode("A", topology.KindInsideOriginates).
		AddNode("B", topology.KindInside).
		AddNode("C", topology.KindInsideOriginates).
		AddEdge("A", "B").
		AddEdge("B", "C").
		Build()
	require.NoError(t, err)
	return topo
}

// endsWith builds a hand-driven DFA recognizing ".*loc" over the given
// alphabet: stays in state 0 on every other symbol, advances to accepting
// state 1 on loc, and falls back to state 0 from state 1 on anything else.
func endsWith(loc string, alphabet []string) *automaton.DFA {
	var others []string
	for _, l := range alphabet {
		if l != loc {
			others = append(others, l)
		}
	}
	d := automaton.New(0).Accept(1)
	if len(others) > 0 {
		d.AddRule(0, 0, others...)
		d.AddRule(1, 0, others...)
	}
	d.AddRule(0, 1, loc)
	d.AddRule(1, 1, loc)
	return d
}
