package pcg

import (
	"github.com/dd0wney/cluso-pcg/pkg/logging"
)

// Minimize mutates t in place, applying sound size-reducing passes to
// fixpoint: callers that need to keep the original must pass t.CopyGraph()
// instead of t. It returns t for chaining.
func Minimize(t *T, logger logging.Logger) *T {
	log := logging.Scope(logger, "pcg.minimizer")

	size := func() int { return t.G.NumVertices() + t.G.NumEdges() }

	for {
		before := size()

		removeUnreachableFromEnd(t)
		removeUnreachableFromStart(t)
		removeRedundantExternal(t)
		removeConnectionsToOutStar(t)
		removeDominated(t)

		after := size()
		log.Info("minimizer pass complete",
			logging.Count(t.G.NumVertices()),
			logging.Int("edges", t.G.NumEdges()),
		)
		if after >= before {
			break
		}
	}
	return t
}

func (t *T) mustState(id uint32) CgState {
	v, _ := t.G.Value(id)
	return v
}

// removeUnreachableFromEnd drops every real node from which End cannot be
// reached by following outgoing edges.
func removeUnreachableFromEnd(t *T) {
	canReachEnd := t.DFS(t.End, Up)
	t.G.RemoveVerticesWhere(func(id uint32, v CgState) bool {
		if !v.Node.IsTopoNode() {
			return false
		}
		return !canReachEnd[id]
	})
}

// removeUnreachableFromStart drops every real node Start cannot reach.
func removeUnreachableFromStart(t *T) {
	reachableFromStart := t.DFS(t.Start, Down)
	t.G.RemoveVerticesWhere(func(id uint32, v CgState) bool {
		if !v.Node.IsTopoNode() {
			return false
		}
		return !reachableFromStart[id]
	})
}

func isExternal(v CgState) bool {
	return v.Node.IsTopoNode() && !v.Node.IsInside()
}

// removeRedundantExternal removes an external neighbor n of a repeated-out
// node os when n's behavior is indistinguishable from continuing through
// os's self-loop: n's out-degree is 1 and its in-neighbors are a subset of
// os's in-neighbors, or symmetrically for in-degree 1 and out-neighbors.
func removeRedundantExternal(t *T) {
	var repeatedOuts []uint32
	for _, id := range t.G.Vertices() {
		if t.IsRepeatedOut(t.mustState(id)) {
			repeatedOuts = append(repeatedOuts, id)
		}
	}

	for _, os := range repeatedOuts {
		osIn := toSet(t.G.In(os))
		osOut := toSet(t.G.Out(os))
		neighbors := toSet(append(append([]uint32{}, t.G.In(os)...), t.G.Out(os)...))

		var redundant []uint32
		for n := range neighbors {
			if n == os {
				continue
			}
			nv := t.mustState(n)
			if !isExternal(nv) {
				continue
			}
			if t.G.OutDegree(n) == 1 && isSubset(toSet(t.G.In(n)), osIn) {
				redundant = append(redundant, n)
				continue
			}
			if t.G.InDegree(n) == 1 && isSubset(toSet(t.G.Out(n)), osOut) {
				redundant = append(redundant, n)
			}
		}
		for _, n := range redundant {
			t.G.RemoveVertex(n)
		}
	}
}

// removeConnectionsToOutStar drops edges that only route traffic into a
// repeated-out node indistinguishable from a route already available
// through an inside node, per the two asymmetric predicates recorded
// verbatim from the policy it mirrors (an open question about why they
// differ — see the design notes).
func removeConnectionsToOutStar(t *T) {
	t.G.RemoveEdgesWhere(func(x, y uint32) bool {
		xv, yv := t.mustState(x), t.mustState(y)
		if !xv.Node.IsTopoNode() || !yv.Node.IsTopoNode() {
			return false
		}
		switch {
		case t.IsRepeatedOut(xv):
			return hasInsideAmong(t, t.G.In(y))
		case t.IsRepeatedOut(yv):
			startInY := t.G.HasEdge(t.Start, y)
			startInX := t.G.HasEdge(t.Start, x)
			return hasInsideAmong(t, t.G.Out(x)) && (startInY || !startInX)
		default:
			return false
		}
	})
}

func hasInsideAmong(t *T, ids []uint32) bool {
	for _, id := range ids {
		v := t.mustState(id)
		if v.Node.IsTopoNode() && v.Node.IsInside() {
			return true
		}
	}
	return false
}

// removeDominated computes forward and backward dominator trees once and
// runs the three shadow-dominance reductions against that fixed view: a
// vertex dominated by a shadowing ancestor is removed outright, a reverse
// edge made redundant by an existing forward edge through a dominator is
// removed, and an edge into a vertex backward-dominated by something
// shadowing its source is removed.
func removeDominated(t *T) {
	fwd := t.Dominators(t.Start, Down)
	bwd := t.Dominators(t.End, Up)

	t.G.RemoveVerticesWhere(func(id uint32, v CgState) bool {
		if !v.Node.IsTopoNode() || t.IsRepeatedOut(v) {
			return false
		}
		shadowedBy := func(anc uint32) bool { return Shadows(v, t.mustState(anc)) }
		return fwd.DominatedByAncestor(id, shadowedBy) || bwd.DominatedByAncestor(id, shadowedBy)
	})

	t.G.RemoveEdgesWhere(func(y, x uint32) bool {
		if !t.G.HasEdge(x, y) {
			return false
		}
		xv, yv := t.mustState(x), t.mustState(y)
		if t.IsRepeatedOut(xv) || t.IsRepeatedOut(yv) {
			return false
		}
		return fwd.Dominates(y, x) || bwd.Dominates(x, y)
	})

	t.G.RemoveEdgesWhere(func(x, y uint32) bool {
		xv := t.mustState(x)
		shadowsX := func(anc uint32) bool {
			av := t.mustState(anc)
			return av.Node.IsTopoNode() && av.Id != xv.Id && av.Node.Loc == xv.Node.Loc
		}
		return bwd.DominatedByAncestor(y, shadowsX)
	})
}

func toSet(ids []uint32) map[uint32]bool {
	out := make(map[uint32]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

func isSubset(a, b map[uint32]bool) bool {
	for id := range a {
		if !b[id] {
			return false
		}
	}
	return true
}
