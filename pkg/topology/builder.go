package topology

import "github.com/dd0wney/cluso-pcg/pkg/digraph"

// Builder constructs a Topology with a fluent API, mirroring this
// codebase's storage-layer node/edge builders but entirely in memory.
type Builder struct {
	t    *Topology
	errs []error
}

// NewBuilder starts a fresh topology build.
func NewBuilder() *Builder {
	return &Builder{
		t: &Topology{
			g:    digraph.New[Node](),
			idOf: make(map[string]uint32),
		},
	}
}

// AddNode registers a location with the given kind. Calling AddNode twice
// for the same location overwrites its kind.
func (b *Builder) AddNode(loc string, typ Kind) *Builder {
	id, ok := b.t.idOf[loc]
	if !ok {
		id = b.t.nextID
		b.t.nextID++
		b.t.idOf[loc] = id
	}
	b.t.g.AddVertex(id, Node{Loc: loc, Typ: typ})
	return b
}

// AddEdge adds a bidirectional link between two already-registered
// locations (real network links carry traffic both ways).
func (b *Builder) AddEdge(a, b2 string) *Builder {
	aid, ok1 := b.t.idOf[a]
	bid, ok2 := b.t.idOf[b2]
	if !ok1 || !ok2 {
		b.errs = append(b.errs, unknownLocationError{a, b2})
		return b
	}
	b.t.g.AddEdge(aid, bid)
	b.t.g.AddEdge(bid, aid)
	return b
}

// AddDirectedEdge adds a one-way link, for modeling asymmetric routing.
func (b *Builder) AddDirectedEdge(from, to string) *Builder {
	fid, ok1 := b.t.idOf[from]
	tid, ok2 := b.t.idOf[to]
	if !ok1 || !ok2 {
		b.errs = append(b.errs, unknownLocationError{from, to})
		return b
	}
	b.t.g.AddEdge(fid, tid)
	return b
}

// Build returns the constructed Topology, or the first error encountered
// while wiring edges.
func (b *Builder) Build() (*Topology, error) {
	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}
	return b.t, nil
}

type unknownLocationError struct{ a, b string }

func (e unknownLocationError) Error() string {
	return "topology: edge references unregistered location (" + e.a + ", " + e.b + ")"
}
