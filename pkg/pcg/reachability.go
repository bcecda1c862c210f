package pcg

import "github.com/dd0wney/cluso-pcg/pkg/bitset"

// Direction selects which adjacency DFS/postOrder follow.
type Direction int

const (
	// Down follows outgoing edges.
	Down Direction = iota
	// Up follows incoming edges.
	Up
)

func (t *T) neighbors(id uint32, dir Direction) []uint32 {
	if dir == Down {
		return t.G.Out(id)
	}
	return t.G.In(id)
}

// DFS returns every state reachable from src by following outgoing edges
// (Down) or incoming edges (Up), marking each node at most once.
func (t *T) DFS(src uint32, dir Direction) map[uint32]bool {
	visited := make(map[uint32]bool)
	var visit func(id uint32)
	visit = func(id uint32) {
		if visited[id] {
			return
		}
		visited[id] = true
		for _, n := range t.neighbors(id, dir) {
			visit(n)
		}
	}
	visit(src)
	return visited
}

// PostOrder returns the states reachable from src, ordered so that every
// node appears after all of its children in the traversal direction dir.
// Dominators relies on this ordering.
func (t *T) PostOrder(src uint32, dir Direction) []uint32 {
	visited := make(map[uint32]bool)
	var order []uint32
	var visit func(id uint32)
	visit = func(id uint32) {
		if visited[id] {
			return
		}
		visited[id] = true
		for _, n := range t.neighbors(id, dir) {
			visit(n)
		}
		order = append(order, id)
	}
	visit(src)
	return order
}

// SrcAccepting returns the union of Accept bitsets over every state
// reachable from src in direction dir.
func (t *T) SrcAccepting(src uint32, dir Direction) bitset.BitSet31 {
	acc := bitset.Empty()
	for id := range t.DFS(src, dir) {
		v, _ := t.G.Value(id)
		acc = acc.Union(v.Accept)
	}
	return acc
}
