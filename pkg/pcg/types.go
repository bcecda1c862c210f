// Package pcg implements the Product Construction Graph core: building the
// product of a network topology with an ordered array of per-preference
// DFAs, minimizing it to fixpoint, inferring a per-location preference
// order via bisimulation, extracting regexes, and analyzing failures.
package pcg

import (
	"github.com/dd0wney/cluso-pcg/pkg/bitset"
	"github.com/dd0wney/cluso-pcg/pkg/digraph"
	"github.com/dd0wney/cluso-pcg/pkg/topology"
)

// StartID and EndID are the two fixed, unique ids every PCG carries.
const (
	StartID uint32 = 0
	EndID   uint32 = 1
)

// CgState is a single state of the Product Construction Graph. Identity and
// ordering are by Id alone — two distinct CgState values never share an Id
// within the same T.
type CgState struct {
	Id     uint32
	State  int
	Accept bitset.BitSet31
	Node   topology.Node
}

// Loc returns the state's location, the empty string for Start/End.
func (s CgState) Loc() string { return s.Node.Loc }

// T is a Product Construction Graph: the directed graph of CgStates plus
// the Start/End ids and the topology it was built over. Each T exclusively
// owns its graph; the topology is shared, read-only, across every PCG
// derived from it.
type T struct {
	Start uint32
	End   uint32
	G     *digraph.Graph[CgState]
	Topo  *topology.Topology
}

// StartState returns the Start CgState.
func (t *T) StartState() CgState {
	v, _ := t.G.Value(t.Start)
	return v
}

// EndState returns the End CgState.
func (t *T) EndState() CgState {
	v, _ := t.G.Value(t.End)
	return v
}

// State returns the CgState for id.
func (t *T) State(id uint32) (CgState, bool) {
	return t.G.Value(id)
}

// Shadows reports whether x and y are distinct states at the same
// location.
func Shadows(x, y CgState) bool {
	return x.Id != y.Id && x.Node.Loc == y.Node.Loc
}

// IsRepeatedOut reports whether v is the Unknown-typed external placeholder
// with a self-loop, standing for "any other AS".
func (t *T) IsRepeatedOut(v CgState) bool {
	if v.Node.Typ != topology.KindUnknown {
		return false
	}
	return t.G.HasEdge(v.Id, v.Id)
}

// IsEmpty reports whether End is unreachable from Start — a possible,
// non-error outcome after minimization (§7 of the design: "Unreachable
// end").
func (t *T) IsEmpty() bool {
	_, reachable := t.G.ShortestPath(t.Start, t.End)
	return !reachable
}

// Preferences returns the union of every state's Accept set.
func (t *T) Preferences() bitset.BitSet31 {
	prefs := bitset.Empty()
	for _, id := range t.G.Vertices() {
		v, _ := t.G.Value(id)
		prefs = prefs.Union(v.Accept)
	}
	return prefs
}

// AcceptingLocations returns the set of locations with at least one
// accepting state, as a location→true set.
func (t *T) AcceptingLocations() map[string]bool {
	out := make(map[string]bool)
	for _, id := range t.G.Vertices() {
		v, _ := t.G.Value(id)
		if !v.Accept.IsEmpty() {
			out[v.Node.Loc] = true
		}
	}
	return out
}

// StatesAtLocation groups every state in t sharing a location, excluding
// Start/End.
func (t *T) StatesAtLocation() map[string][]CgState {
	out := make(map[string][]CgState)
	for _, id := range t.G.Vertices() {
		v, _ := t.G.Value(id)
		if !v.Node.IsTopoNode() {
			continue
		}
		out[v.Node.Loc] = append(out[v.Node.Loc], v)
	}
	return out
}

// CopyGraph returns a structural clone of t: same ids, same CgState values,
// same edge set, independent storage, sharing the same Topo pointer (the
// topology is read-only and never mutated by any derived PCG).
func (t *T) CopyGraph() *T {
	return &T{Start: t.Start, End: t.End, G: t.G.Clone(), Topo: t.Topo}
}

// CopyReverseGraph returns a structural clone of t with every edge
// reversed: (u,v) in the copy iff (v,u) in t. The vertex set is identical.
func (t *T) CopyReverseGraph() *T {
	rev := digraph.New[CgState]()
	for _, id := range t.G.Vertices() {
		v, _ := t.G.Value(id)
		rev.AddVertex(id, v)
	}
	for _, id := range t.G.Vertices() {
		for _, to := range t.G.Out(id) {
			rev.AddEdge(to, id)
		}
	}
	return &T{Start: t.Start, End: t.End, G: rev, Topo: t.Topo}
}

// Restrict removes every state whose minimum accepted preference is greater
// than i. A state survives iff its Accept set is empty (min undefined,
// never filtered by this rule, whatever i is) or its minimum accepted
// preference is <= i. This mirrors the source policy's minimum-based rule
// exactly (§9 design note): "remove if minimum accepted preference > i",
// not "remove if no accepted preference <= i".
func (t *T) Restrict(i int) *T {
	out := t.CopyGraph()
	out.G.RemoveVerticesWhere(func(id uint32, v CgState) bool {
		if id == out.Start || id == out.End {
			return false
		}
		min, ok := v.Accept.Minimum()
		if !ok {
			return false
		}
		return min > i
	})
	return out
}
