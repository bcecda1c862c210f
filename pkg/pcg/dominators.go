package pcg

// DominatorTree maps every state reachable from root to its immediate
// dominator, with root mapped to itself as the sentinel that halts
// ancestor-chain walks.
type DominatorTree struct {
	root  uint32
	idom  map[uint32]uint32
	order map[uint32]int // postorder number, used by intersect during construction
}

// Dominators computes the immediate dominator of every state reachable
// from root in direction dir, using the iterative Cooper/Harvey/Kennedy
// algorithm (reverse-postorder fixpoint over finger-intersected
// predecessors) rather than the classical Lengauer-Tarjan link-eval
// forest: PCGs built from small automata arrays stay small enough that the
// simpler O(N^2)-worst-case iteration is faster in practice and far easier
// to get right.
func (t *T) Dominators(root uint32, dir Direction) *DominatorTree {
	postorder := t.PostOrder(root, dir)
	postNum := make(map[uint32]int, len(postorder))
	for i, id := range postorder {
		postNum[id] = i
	}

	rpo := reversed(postorder)

	idom := map[uint32]uint32{root: root}
	predOf := t.G.In
	if dir == Up {
		predOf = t.G.Out
	}

	changed := true
	for changed {
		changed = false
		for _, b := range rpo {
			if b == root {
				continue
			}
			var newIdom uint32
			found := false
			for _, p := range predOf(b) {
				if _, ok := idom[p]; !ok {
					continue
				}
				if !found {
					newIdom = p
					found = true
					continue
				}
				newIdom = intersect(newIdom, p, idom, postNum)
			}
			if !found {
				continue
			}
			if cur, ok := idom[b]; !ok || cur != newIdom {
				idom[b] = newIdom
				changed = true
			}
		}
	}

	return &DominatorTree{root: root, idom: idom, order: postNum}
}

func intersect(a, b uint32, idom map[uint32]uint32, postNum map[uint32]int) uint32 {
	for a != b {
		for postNum[a] < postNum[b] {
			a = idom[a]
		}
		for postNum[b] < postNum[a] {
			b = idom[b]
		}
	}
	return a
}

func reversed(xs []uint32) []uint32 {
	out := make([]uint32, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}

// ImmediateDominator returns v's immediate dominator and whether v is
// reachable from the tree's root at all.
func (d *DominatorTree) ImmediateDominator(v uint32) (uint32, bool) {
	p, ok := d.idom[v]
	return p, ok
}

// Dominates reports whether x dominates y (x == y counts as dominating).
// Both must be reachable from the tree's root.
func (d *DominatorTree) Dominates(x, y uint32) bool {
	if _, ok := d.idom[y]; !ok {
		return false
	}
	cur := y
	for {
		if cur == x {
			return true
		}
		if cur == d.root {
			return false
		}
		cur = d.idom[cur]
	}
}

// DominatedByAncestor climbs v's immediate-dominator chain, starting at v's
// parent and stopping at root, reporting whether any ancestor satisfies
// pred.
func (d *DominatorTree) DominatedByAncestor(v uint32, pred func(uint32) bool) bool {
	_, ok := d.FindAncestor(v, pred)
	return ok
}

// FindAncestor climbs v's immediate-dominator chain, starting at v's parent
// and stopping at root, and returns the first ancestor satisfying pred.
func (d *DominatorTree) FindAncestor(v uint32, pred func(uint32) bool) (uint32, bool) {
	if _, ok := d.idom[v]; !ok {
		return 0, false
	}
	cur := v
	for cur != d.root {
		cur = d.idom[cur]
		if pred(cur) {
			return cur, true
		}
	}
	return 0, false
}
