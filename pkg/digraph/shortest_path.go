package digraph

// ShortestPath finds a shortest directed path from src to dst using
// unweighted BFS, the same frontier-expansion shape as this codebase's
// algorithms.ShortestPath (minus the bidirectional optimization, which
// does not pay for itself on PCGs sized for a single router policy set).
// Returns (path, true) with path[0]==src and path[len-1]==dst, or
// (nil, false) if dst is unreachable.
func (g *Graph[V]) ShortestPath(src, dst uint32) ([]uint32, bool) {
	if src == dst {
		return []uint32{src}, true
	}
	if !g.HasVertex(src) || !g.HasVertex(dst) {
		return nil, false
	}

	parent := map[uint32]uint32{src: src}
	queue := []uint32{src}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.out[cur] {
			if _, seen := parent[n]; seen {
				continue
			}
			parent[n] = cur
			if n == dst {
				return reconstructPath(parent, src, dst), true
			}
			queue = append(queue, n)
		}
	}
	return nil, false
}

func reconstructPath(parent map[uint32]uint32, src, dst uint32) []uint32 {
	path := []uint32{dst}
	cur := dst
	for cur != src {
		cur = parent[cur]
		path = append(path, cur)
	}
	// reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathEdges converts a vertex path into the ordered edges that traverse it.
func PathEdges(path []uint32) [][2]uint32 {
	if len(path) < 2 {
		return nil
	}
	edges := make([][2]uint32, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		edges = append(edges, [2]uint32{path[i], path[i+1]})
	}
	return edges
}
