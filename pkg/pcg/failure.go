package pcg

import (
	"github.com/dd0wney/cluso-pcg/pkg/digraph"
	"github.com/dd0wney/cluso-pcg/pkg/logging"
	"github.com/dd0wney/cluso-pcg/pkg/topology"
)

// Failure is a single simulated failure: a node failure names NodeLoc, a
// link failure names both endpoints and leaves NodeLoc empty.
type Failure struct {
	NodeLoc     string
	LinkA, LinkB string
}

// IsNode reports whether f is a node failure rather than a link failure.
func (f Failure) IsNode() bool { return f.NodeLoc != "" }

func canonicalLink(a, b string) [2]string {
	if a > b {
		return [2]string{b, a}
	}
	return [2]string{a, b}
}

// AllFailures produces every combination of size n drawn from the failures
// of inside nodes and the links with at least one inside endpoint.
func AllFailures(n int, topo *topology.Topology) [][]Failure {
	var candidates []Failure
	for _, node := range topo.Vertices() {
		if node.IsInside() {
			candidates = append(candidates, Failure{NodeLoc: node.Loc})
		}
	}

	seen := make(map[[2]string]bool)
	for _, e := range topo.Edges() {
		a, b := e[0], e[1]
		an, _ := topo.NodeByLoc(a)
		bn, _ := topo.NodeByLoc(b)
		if !an.IsInside() && !bn.IsInside() {
			continue
		}
		key := canonicalLink(a, b)
		if seen[key] {
			continue
		}
		seen[key] = true
		candidates = append(candidates, Failure{LinkA: a, LinkB: b})
	}

	return combinations(candidates, n)
}

func combinations(items []Failure, n int) [][]Failure {
	if n == 0 {
		return [][]Failure{{}}
	}
	if n > len(items) {
		return nil
	}
	var out [][]Failure
	var rec func(start int, chosen []Failure)
	rec = func(start int, chosen []Failure) {
		if len(chosen) == n {
			out = append(out, append([]Failure{}, chosen...))
			return
		}
		for i := start; i < len(items); i++ {
			rec(i+1, append(chosen, items[i]))
		}
	}
	rec(0, nil)
	return out
}

// FailedGraph clones t and removes every vertex whose Loc is a failed node
// and every edge whose endpoint locations (in either direction) match a
// failed link.
func FailedGraph(t *T, failures []Failure, logger logging.Logger) *T {
	log := logging.Scope(logger, "pcg.failure")

	failedNodes := make(map[string]bool)
	failedLinks := make(map[[2]string]bool)
	for _, f := range failures {
		if f.IsNode() {
			failedNodes[f.NodeLoc] = true
		} else {
			failedLinks[canonicalLink(f.LinkA, f.LinkB)] = true
		}
	}

	out := t.CopyGraph()
	out.G.RemoveVerticesWhere(func(id uint32, v CgState) bool {
		return v.Node.IsTopoNode() && failedNodes[v.Node.Loc]
	})
	out.G.RemoveEdgesWhere(func(from, to uint32) bool {
		fv, _ := out.G.Value(from)
		tv, _ := out.G.Value(to)
		if !fv.Node.IsTopoNode() || !tv.Node.IsTopoNode() {
			return false
		}
		return failedLinks[canonicalLink(fv.Node.Loc, tv.Node.Loc)]
	})

	log.Info("failed graph materialized",
		logging.FailureCount(len(failures)),
		logging.Count(out.G.NumVertices()),
	)
	return out
}

// Disconnect repeatedly removes the edges of a shortest src->dst path until
// none remains, returning the number of iterations — an approximation of
// the minimum src-dst edge cut.
func Disconnect(t *T, src, dst uint32) int {
	work := t.CopyGraph()
	count := 0
	for {
		path, ok := work.G.ShortestPath(src, dst)
		if !ok {
			return count
		}
		for _, e := range digraph.PathEdges(path) {
			work.G.RemoveEdge(e[0], e[1])
		}
		count++
	}
}

// DisconnectResult is the outcome of DisconnectLocs: the derived metric and
// the witness pair's locations.
type DisconnectResult struct {
	K       int
	SrcLoc  string
	DstLoc  string
}

// DisconnectLocs finds, over every (src, dst) pair with dst at dstLoc, the
// minimum Disconnect count, and reports it minus one alongside the witness
// locations. The second return is false when srcs is empty or no state is
// located at dstLoc.
func DisconnectLocs(t *T, srcs []uint32, dstLoc string, logger logging.Logger) (DisconnectResult, bool) {
	log := logging.Scope(logger, "pcg.failure")

	if len(srcs) == 0 {
		return DisconnectResult{}, false
	}
	var dsts []uint32
	for _, id := range t.G.Vertices() {
		v := t.mustState(id)
		if v.Node.Loc == dstLoc {
			dsts = append(dsts, id)
		}
	}
	if len(dsts) == 0 {
		return DisconnectResult{}, false
	}

	best := -1
	var witness DisconnectResult
	for _, s := range srcs {
		sv := t.mustState(s)
		for _, d := range dsts {
			dv := t.mustState(d)
			c := Disconnect(t, s, d)
			if best == -1 || c < best {
				best = c
				witness = DisconnectResult{K: c - 1, SrcLoc: sv.Node.Loc, DstLoc: dv.Node.Loc}
			}
		}
	}

	log.Info("disconnect computed",
		logging.CutSize(witness.K),
		logging.String("src_location", witness.SrcLoc),
		logging.String("dst_location", witness.DstLoc),
	)
	return witness, true
}
