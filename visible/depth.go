package visible

import "github.com/arborly/axiomgraph/idx"

// computeMaxDepth performs a Kahn topological sort over g (a DAG by
// construction) and stamps each node's longest distance from any root onto
// its MaxDepth field.
func computeMaxDepth(g *Graph) {
	indeg := make(map[idx.RawNodeIndex]int, len(g.nodes))
	for _, n := range g.nodes {
		indeg[n.Raw] = 0
	}
	for _, n := range g.nodes {
		for _, w := range g.OutNeighbors(n.Raw) {
			indeg[w]++
		}
	}

	var queue []idx.RawNodeIndex
	for _, n := range g.nodes {
		if indeg[n.Raw] == 0 {
			queue = append(queue, n.Raw)
		}
	}

	depth := make(map[idx.RawNodeIndex]uint32, len(g.nodes))
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range g.OutNeighbors(v) {
			if cand := depth[v] + 1; cand > depth[w] {
				depth[w] = cand
			}
			indeg[w]--
			if indeg[w] == 0 {
				queue = append(queue, w)
			}
		}
	}

	for i := range g.nodes {
		g.nodes[i].MaxDepth = depth[g.nodes[i].Raw]
	}
}

// MinMatchingLoopLength is the shortest longest-path length (in nodes) that
// qualifies an endpoint as a candidate matching loop.
const MinMatchingLoopLength = 3

// FindEndNodesOfLongestPaths returns every node v whose longest path from
// any root has length >= minLength nodes and no successor of v lies on a
// strictly longer path — the per-quantifier endpoint set matching-loop
// search unions across quantifiers. Callers pass MinMatchingLoopLength
// unless a configured override says otherwise.
func FindEndNodesOfLongestPaths(g *Graph, minLength int) []idx.RawNodeIndex {
	var out []idx.RawNodeIndex
	for _, n := range g.nodes {
		if int(n.MaxDepth)+1 < minLength {
			continue
		}
		isEnd := true
		for _, w := range g.OutNeighbors(n.Raw) {
			wDepth, _ := g.MaxDepthOf(w)
			if wDepth > n.MaxDepth {
				isEnd = false
				break
			}
		}
		if isEnd {
			out = append(out, n.Raw)
		}
	}
	return out
}
