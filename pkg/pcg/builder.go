package pcg

import (
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-pcg/pkg/automaton"
	"github.com/dd0wney/cluso-pcg/pkg/bitset"
	"github.com/dd0wney/cluso-pcg/pkg/digraph"
	"github.com/dd0wney/cluso-pcg/pkg/logging"
	"github.com/dd0wney/cluso-pcg/pkg/pcgerrors"
	"github.com/dd0wney/cluso-pcg/pkg/reindex"
	"github.com/dd0wney/cluso-pcg/pkg/topology"
)

// MaxPreferences is the largest number of DFAs BuildFromAutomata accepts,
// fixed by BitSet31's one-word representation.
const MaxPreferences = bitset.MaxLevel

// tempVertex is a PCG state before final reindexing: it still carries the
// raw per-automaton composite state tuple instead of a dense .State int.
type tempVertex struct {
	composite []int
	node      topology.Node
	accept    bitset.BitSet31
}

// BuildFromAutomata performs the product construction described in the PCG
// builder's contract: given a well-formed topology and up to 31 DFAs
// indexed by preference level, build the PCG of the location words on
// which every DFA has a transition, pruning successors that leave all DFAs
// in garbage states, and annotate each state with the preference levels
// whose DFA accepts there.
func BuildFromAutomata(topo *topology.Topology, autos []*automaton.DFA, logger logging.Logger) (*T, error) {
	log := logging.Scope(logger, "pcg.builder")

	if len(autos) > MaxPreferences {
		return nil, pcgerrors.ErrTooManyPreferences
	}
	if !topo.IsWellFormed() {
		return nil, pcgerrors.ErrMalformedTopology
	}

	tables := make([]automaton.Table, len(autos))
	garbage := make([]map[int]bool, len(autos))
	for i, a := range autos {
		tables[i] = a.Flatten()
		garbage[i] = a.GarbageStates(tables[i])
	}

	temp := digraph.New[tempVertex]()
	seen := make(map[string]uint32)
	var nextTemp uint32

	q0s := make([]int, len(autos))
	for i, a := range autos {
		q0s[i] = a.Q0
	}
	startNode := topology.Node{Typ: topology.KindStart}
	startKey := compositeKey(startNode.Loc, q0s)
	startTempID := nextTemp
	nextTemp++
	temp.AddVertex(startTempID, tempVertex{composite: q0s, node: startNode, accept: bitset.Empty()})
	seen[startKey] = startTempID

	worklist := []uint32{startTempID}
	for len(worklist) > 0 {
		curID := worklist[0]
		worklist = worklist[1:]
		cur, _ := temp.Value(curID)

		adj := successorLocations(topo, cur.node)

		for _, c := range adj {
			next, ok := stepAll(tables, cur.composite, c.Loc)
			if !ok {
				continue
			}
			if allGarbage(garbage, next) {
				continue
			}
			accept := bitset.Empty()
			if c.CanOriginateTraffic() {
				for i, a := range autos {
					if a.IsAccepting(next[i]) {
						accept = accept.Union(bitset.Singleton(i + 1))
					}
				}
			}

			key := compositeKey(c.Loc, next)
			succID, exists := seen[key]
			if !exists {
				succID = nextTemp
				nextTemp++
				temp.AddVertex(succID, tempVertex{composite: next, node: c, accept: accept})
				seen[key] = succID
				worklist = append(worklist, succID)
			}
			temp.AddEdge(curID, succID)
		}
	}

	endTempID := nextTemp
	nextTemp++
	temp.AddVertex(endTempID, tempVertex{node: topology.Node{Typ: topology.KindEnd}, accept: bitset.Empty()})
	for _, id := range temp.Vertices() {
		if id == endTempID {
			continue
		}
		v, _ := temp.Value(id)
		if !v.accept.IsEmpty() {
			temp.AddEdge(id, endTempID)
		}
	}

	cg := reindexTemp(temp, startTempID, endTempID, topo)

	log.Info("built product construction graph",
		logging.Int("preferences", len(autos)),
		logging.Count(cg.G.NumVertices()),
		logging.Int("edges", cg.G.NumEdges()),
	)
	return cg, nil
}

func successorLocations(topo *topology.Topology, node topology.Node) []topology.Node {
	var adj []topology.Node
	switch node.Typ {
	case topology.KindStart:
		adj = topo.OriginatingLocations()
	default:
		adj = topo.Neighbors(node.Loc)
	}
	if node.Typ == topology.KindUnknown {
		adj = append(adj, node)
	}
	return adj
}

func stepAll(tables []automaton.Table, states []int, loc string) ([]int, bool) {
	next := make([]int, len(tables))
	for i, t := range tables {
		n, ok := t.Step(states[i], loc)
		if !ok {
			return nil, false
		}
		next[i] = n
	}
	return next, true
}

func allGarbage(garbage []map[int]bool, states []int) bool {
	for i, s := range states {
		if !garbage[i][s] {
			return false
		}
	}
	return true
}

func compositeKey(loc string, states []int) string {
	var sb strings.Builder
	sb.WriteString(loc)
	sb.WriteByte('|')
	for i, s := range states {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(s))
	}
	return sb.String()
}

// reindexTemp walks the temporary graph and assigns final ids (Start=0,
// End=1, others from 2), reindexing composite-state tuples into dense
// integers via a Reindexer keyed structurally by the tuple.
func reindexTemp(temp *digraph.Graph[tempVertex], startTempID, endTempID uint32, topo *topology.Topology) *T {
	finalID := make(map[uint32]uint32)
	finalID[startTempID] = StartID
	finalID[endTempID] = EndID

	next := uint32(2)
	for _, id := range temp.Vertices() {
		if id == startTempID || id == endTempID {
			continue
		}
		finalID[id] = next
		next++
	}

	stateReindex := reindex.New[string]()

	g := digraph.New[CgState]()
	for _, id := range temp.Vertices() {
		v, _ := temp.Value(id)
		var state int
		if id != startTempID && id != endTempID {
			state = stateReindex.IDFor(compositeKey("", v.composite))
		}
		g.AddVertex(finalID[id], CgState{Id: finalID[id], State: state, Accept: v.accept, Node: v.node})
	}
	for _, id := range temp.Vertices() {
		for _, to := range temp.Out(id) {
			g.AddEdge(finalID[id], finalID[to])
		}
	}

	return &T{Start: StartID, End: EndID, G: g, Topo: topo}
}
