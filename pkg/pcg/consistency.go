package pcg

import (
	"sort"

	"github.com/dd0wney/cluso-pcg/pkg/digraph"
	"github.com/dd0wney/cluso-pcg/pkg/logging"
	"github.com/dd0wney/cluso-pcg/pkg/pcgerrors"
)

// Ordering maps a location to its states, ordered most- to least-preferred.
type Ordering map[string][]CgState

type pairKey struct{ x, y uint32 }

// FindOrderingConservative computes, for every location with more than one
// state, a total order consistent with protect ("is at least as preferred
// as"), or reports the first inconsistency or hard-preference violation it
// finds. It only reads t; the simulation cache it builds is local to this
// call, per the core's no-process-wide-state rule.
func FindOrderingConservative(t *T, logger logging.Logger) (Ordering, error) {
	log := logging.Scope(logger, "pcg.consistency")

	fwd := t.Dominators(t.Start, Down)
	cache := make(map[pairKey]bool)

	mustPrefer := t.mustPreferPairs()

	byLoc := t.StatesAtLocation()
	result := make(Ordering)

	for loc, states := range byLoc {
		if len(states) < 2 {
			result[loc] = states
			continue
		}

		protects := make(map[pairKey]bool)
		for _, x := range states {
			for _, y := range states {
				if x.Id == y.Id {
					continue
				}
				key := pairKey{x.Id, y.Id}
				if protects[key] {
					continue
				}
				if protectMemo(t, fwd, cache, x, y) {
					protects[key] = true
				}
			}
		}

		for i, x := range states {
			for j, y := range states {
				if i >= j {
					continue
				}
				if !protects[pairKey{x.Id, y.Id}] && !protects[pairKey{y.Id, x.Id}] {
					return nil, &pcgerrors.InconsistentError{
						X: pcgerrors.StateRef{ID: x.Id, Loc: x.Node.Loc},
						Y: pcgerrors.StateRef{ID: y.Id, Loc: y.Node.Loc},
					}
				}
			}
		}

		for _, p := range mustPrefer {
			if p.d.Node.Loc != loc {
				continue
			}
			strict := protects[pairKey{p.d.Id, p.dPrime.Id}] && !protects[pairKey{p.dPrime.Id, p.d.Id}]
			if !strict {
				return nil, &pcgerrors.SimplePathError{
					X: pcgerrors.StateRef{ID: p.d.Id, Loc: p.d.Node.Loc},
					Y: pcgerrors.StateRef{ID: p.dPrime.Id, Loc: p.dPrime.Node.Loc},
				}
			}
		}

		result[loc] = topoSortLocation(states, protects)
	}

	log.Info("ordering computed", logging.Count(len(result)))
	return result, nil
}

// topoSortLocation drops symmetric (equivalence) edges and performs Kahn's
// algorithm over the remaining strict-preference edges, breaking ties on
// Id for determinism.
func topoSortLocation(states []CgState, protects map[pairKey]bool) []CgState {
	byID := make(map[uint32]CgState, len(states))
	for _, s := range states {
		byID[s.Id] = s
	}

	g := digraph.New[CgState]()
	for _, s := range states {
		g.AddVertex(s.Id, s)
	}
	for _, x := range states {
		for _, y := range states {
			if x.Id == y.Id {
				continue
			}
			if protects[pairKey{x.Id, y.Id}] && !protects[pairKey{y.Id, x.Id}] {
				g.AddEdge(x.Id, y.Id)
			}
		}
	}

	indeg := make(map[uint32]int, len(states))
	for _, id := range g.Vertices() {
		indeg[id] = g.InDegree(id)
	}

	var ready []uint32
	for id, d := range indeg {
		if d == 0 {
			ready = append(ready, id)
		}
	}
	sort.Slice(ready, func(i, j int) bool { return ready[i] < ready[j] })

	var order []CgState
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		order = append(order, byID[id])

		var freed []uint32
		for _, next := range g.Out(id) {
			indeg[next]--
			if indeg[next] == 0 {
				freed = append(freed, next)
			}
		}
		sort.Slice(freed, func(i, j int) bool { return freed[i] < freed[j] })
		ready = append(ready, freed...)
		sort.Slice(ready, func(i, j int) bool { return ready[i] < ready[j] })
	}

	if len(order) < len(states) {
		seen := make(map[uint32]bool, len(order))
		for _, s := range order {
			seen[s.Id] = true
		}
		var rest []CgState
		for _, s := range states {
			if !seen[s.Id] {
				rest = append(rest, s)
			}
		}
		sort.Slice(rest, func(i, j int) bool { return rest[i].Id < rest[j].Id })
		order = append(order, rest...)
	}
	return order
}

type mustPreferPair struct{ d, dPrime CgState }

// mustPreferPairs computes the hard-preference safety set: shadow pairs
// (d, d') sharing a weakly-connected component in the subgraph induced by
// real inside nodes, with d' reachable downward from d.
func (t *T) mustPreferPairs() []mustPreferPair {
	inside := digraph.New[CgState]()
	for _, id := range t.G.Vertices() {
		v := t.mustState(id)
		if v.Node.IsTopoNode() && v.Node.IsInside() {
			inside.AddVertex(id, v)
		}
	}
	for _, id := range inside.Vertices() {
		for _, to := range t.G.Out(id) {
			if inside.HasVertex(to) {
				inside.AddEdge(id, to)
			}
		}
	}
	components := inside.WeaklyConnectedComponents()

	byLoc := make(map[string][]CgState)
	for _, id := range inside.Vertices() {
		v := t.mustState(id)
		byLoc[v.Node.Loc] = append(byLoc[v.Node.Loc], v)
	}

	var pairs []mustPreferPair
	for _, states := range byLoc {
		if len(states) < 2 {
			continue
		}
		for _, d := range states {
			reachable := t.DFS(d.Id, Down)
			for _, dPrime := range states {
				if !Shadows(d, dPrime) {
					continue
				}
				if components[d.Id] != components[dPrime.Id] {
					continue
				}
				if reachable[dPrime.Id] {
					pairs = append(pairs, mustPreferPair{d: d, dPrime: dPrime})
				}
			}
		}
	}
	return pairs
}

// protectMemo looks up (x,y) in cache, otherwise builds the protect
// relation from scratch. Positive results cache every pair discovered
// during the BFS; negative results are deliberately not cached, matching
// the bisimulation's stated open modeling question about dominator-context
// sensitivity.
func protectMemo(t *T, fwd *DominatorTree, cache map[pairKey]bool, x, y CgState) bool {
	key := pairKey{x.Id, y.Id}
	if cache[key] {
		return true
	}
	ok, related := buildProtectRelation(t, fwd, x, y)
	if ok {
		for _, p := range related {
			cache[pairKey{p[0].Id, p[1].Id}] = true
		}
	}
	return ok
}

// buildProtectRelation runs the bisimulation BFS described by the protect
// contract, returning every related pair on success.
func buildProtectRelation(t *T, fwd *DominatorTree, x, y CgState) (bool, [][2]CgState) {
	inR := map[pairKey]bool{{x.Id, y.Id}: true}
	var related [][2]CgState
	queue := [][2]CgState{{x, y}}

	for len(queue) > 0 {
		pair := queue[0]
		queue = queue[1:]
		a, b := pair[0], pair[1]
		related = append(related, pair)

		minA, okA := a.Accept.Minimum()
		minB, okB := b.Accept.Minimum()
		if okA != okB {
			return false, nil
		}
		if okA && minA > minB {
			return false, nil
		}

		for _, bNextID := range t.G.Out(b.Id) {
			bNext := t.mustState(bNextID)
			matched := false
			for _, aNextID := range t.G.Out(a.Id) {
				aNext := t.mustState(aNextID)
				if aNext.Node.Loc != bNext.Node.Loc {
					continue
				}
				matched = true
				key := pairKey{aNext.Id, bNext.Id}
				if !inR[key] {
					inR[key] = true
					queue = append(queue, [2]CgState{aNext, bNext})
				}
				break
			}
			if matched {
				continue
			}

			dom, found := fwd.FindAncestor(a.Id, func(anc uint32) bool {
				return t.mustState(anc).Node.Loc == bNext.Node.Loc
			})
			if !found {
				return false, nil
			}
			domState := t.mustState(dom)
			key := pairKey{domState.Id, bNext.Id}
			if !inR[key] {
				inR[key] = true
				queue = append(queue, [2]CgState{domState, bNext})
			}
		}
	}
	return true, related
}
