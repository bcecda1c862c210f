package pcg

import (
	"github.com/dd0wney/cluso-pcg/pkg/logging"
	"github.com/dd0wney/cluso-pcg/pkg/regexast"
)

// revEdge is one edge of the reversed graph built for state elimination:
// from -> to, labeled with the location read when taking the
// corresponding forward edge in t.
type revEdge struct {
	to    uint32
	label string
}

// ConstructRegex computes a regex over locations describing the paths
// reaching state s, via the classical state-elimination algorithm run on
// the reverse of t's graph augmented with an artificial ε-edge from End to
// s. Real nodes other than s are eliminated one at a time, each folding
// its self-loop and pass-through pairs into the pairs that remain.
func ConstructRegex(t *T, s uint32, logger logging.Logger) regexast.Regex {
	log := logging.Scope(logger, "pcg.regex")

	rev := make(map[uint32][]revEdge)
	for _, u := range t.G.Vertices() {
		for _, v := range t.G.Out(u) {
			vv := t.mustState(v)
			rev[v] = append(rev[v], revEdge{to: u, label: vv.Node.Loc})
		}
	}
	rev[t.End] = append(rev[t.End], revEdge{to: s, label: ""})

	type pairKeyR struct{ q1, q2 uint32 }
	r := make(map[pairKeyR]regexast.Regex)
	get := func(key pairKeyR) regexast.Regex {
		if v, ok := r[key]; ok {
			return v
		}
		return regexast.Zero{}
	}

	for v, edges := range rev {
		for _, e := range edges {
			key := pairKeyR{v, e.to}
			r[key] = regexast.Union(get(key), regexast.Literal(e.label))
		}
	}

	for _, q := range t.G.Vertices() {
		v := t.mustState(q)
		if !v.Node.IsTopoNode() || q == s {
			continue
		}
		self := regexast.Repeat(get(pairKeyR{q, q}))

		var froms, tos []uint32
		for key := range r {
			if key.q2 == q && key.q1 != q {
				froms = append(froms, key.q1)
			}
			if key.q1 == q && key.q2 != q {
				tos = append(tos, key.q2)
			}
		}

		for _, q1 := range froms {
			for _, q2 := range tos {
				through := regexast.ConcatAll(get(pairKeyR{q1, q}), self, get(pairKeyR{q, q2}))
				key := pairKeyR{q1, q2}
				r[key] = regexast.Union(get(key), through)
			}
		}

		for key := range r {
			if key.q1 == q || key.q2 == q {
				delete(r, key)
			}
		}
	}

	result := get(pairKeyR{t.End, s})
	log.Info("regex extracted", logging.State(s))
	return result
}
