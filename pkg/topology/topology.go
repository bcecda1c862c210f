// Package topology provides the reference implementation of the external
// "Topology" collaborator described in the PCG core's data model: a
// directed network graph of router locations, each tagged with a Kind, that
// the PCG builder and minimizer consult for neighbors, origination
// capability, and well-formedness. The real topology loader (reading a
// network model from wherever it is stored) lives outside this module;
// this package exists so the core is independently buildable and testable.
package topology

import (
	"fmt"

	"github.com/dd0wney/cluso-pcg/pkg/digraph"
)

// Kind classifies a topology node.
type Kind int

const (
	// KindStart and KindEnd never appear on real Topology nodes; they tag
	// the synthetic Start/End CgStates the PCG builder introduces.
	KindStart Kind = iota
	KindEnd
	// KindInside is an internal router that cannot originate traffic.
	KindInside
	// KindInsideOriginates is an internal router that can originate traffic.
	KindInsideOriginates
	// KindOutside is an external AS, represented individually.
	KindOutside
	// KindUnknown is an external AS collapsed into a single repeated-out
	// placeholder (it carries a self-loop standing for "any other AS").
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "Start"
	case KindEnd:
		return "End"
	case KindInside:
		return "Inside"
	case KindInsideOriginates:
		return "InsideOriginates"
	case KindOutside:
		return "Outside"
	case KindUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is a single router location in the network topology.
type Node struct {
	Loc string
	Typ Kind
}

// IsTopoNode reports whether n is a real topology node, i.e. not one of the
// two synthetic Start/End sentinels the PCG builder introduces.
func (n Node) IsTopoNode() bool {
	return n.Typ != KindStart && n.Typ != KindEnd
}

// IsInside reports whether n is an internal router (of either inside kind).
func (n Node) IsInside() bool {
	return n.Typ == KindInside || n.Typ == KindInsideOriginates
}

// IsOutside reports whether n is external (a distinct AS or the repeated
// external placeholder).
func (n Node) IsOutside() bool {
	return n.Typ == KindOutside || n.Typ == KindUnknown
}

// CanOriginateTraffic reports whether n is allowed to originate traffic.
func (n Node) CanOriginateTraffic() bool {
	return n.Typ == KindInsideOriginates
}

// Topology is a directed graph of Node over string locations. Edges are
// inserted symmetrically by Builder.AddEdge because physical network links
// carry traffic in both directions; Topology itself makes no such
// assumption and exposes only directed adjacency.
type Topology struct {
	g       *digraph.Graph[Node]
	idOf    map[string]uint32
	nextID  uint32
}

// NodeByLoc returns the node at loc.
func (t *Topology) NodeByLoc(loc string) (Node, bool) {
	id, ok := t.idOf[loc]
	if !ok {
		return Node{}, false
	}
	return t.g.Value(id)
}

// Vertices returns every node in the topology, order unspecified.
func (t *Topology) Vertices() []Node {
	out := make([]Node, 0, t.g.NumVertices())
	for _, id := range t.g.Vertices() {
		v, _ := t.g.Value(id)
		out = append(out, v)
	}
	return out
}

// Edges returns every directed edge as a (from, to) location pair.
func (t *Topology) Edges() [][2]string {
	var out [][2]string
	for loc, id := range t.idOf {
		for _, nid := range t.g.Out(id) {
			nv, _ := t.g.Value(nid)
			out = append(out, [2]string{loc, nv.Loc})
		}
	}
	return out
}

// Neighbors returns the locations directly reachable from loc.
func (t *Topology) Neighbors(loc string) []Node {
	id, ok := t.idOf[loc]
	if !ok {
		return nil
	}
	nids := t.g.Out(id)
	out := make([]Node, 0, len(nids))
	for _, nid := range nids {
		v, _ := t.g.Value(nid)
		out = append(out, v)
	}
	return out
}

// IsInside reports whether loc names an internal router.
func (t *Topology) IsInside(loc string) bool {
	n, ok := t.NodeByLoc(loc)
	return ok && n.IsInside()
}

// IsOutside reports whether loc names an external node.
func (t *Topology) IsOutside(loc string) bool {
	n, ok := t.NodeByLoc(loc)
	return ok && n.IsOutside()
}

// CanOriginateTraffic reports whether loc can originate traffic.
func (t *Topology) CanOriginateTraffic(loc string) bool {
	n, ok := t.NodeByLoc(loc)
	return ok && n.CanOriginateTraffic()
}

// OriginatingLocations returns every location that can originate traffic.
func (t *Topology) OriginatingLocations() []Node {
	var out []Node
	for _, n := range t.Vertices() {
		if n.CanOriginateTraffic() {
			out = append(out, n)
		}
	}
	return out
}

// IsWellFormed reports whether the topology is weakly connected, as
// required by the PCG builder's precondition.
func (t *Topology) IsWellFormed() bool {
	return t.g.IsWeaklyConnected()
}

// Alphabet returns the internal and external location sets, in the order
// nodes were added.
func (t *Topology) Alphabet() (internal, external []string) {
	for _, n := range t.Vertices() {
		if n.IsInside() {
			internal = append(internal, n.Loc)
		} else if n.IsOutside() {
			external = append(external, n.Loc)
		}
	}
	return internal, external
}

// HasEdge reports whether a direct edge from→to exists.
func (t *Topology) HasEdge(from, to string) bool {
	fid, ok1 := t.idOf[from]
	tid, ok2 := t.idOf[to]
	if !ok1 || !ok2 {
		return false
	}
	return t.g.HasEdge(fid, tid)
}
