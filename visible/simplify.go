package visible

import "github.com/arborly/axiomgraph/idx"

// ToVisibleSimplified collapses every node with exactly one in-edge and
// exactly one out-edge into the chain it sits on, producing a smaller graph
// with the same reachability between its remaining endpoints.
// Collapsed nodes are recorded in the surviving edge's Through chain so
// blame lookups can still recover them.
func ToVisibleSimplified(g *Graph) *Graph {
	collapsible := make(map[idx.RawNodeIndex]bool, len(g.nodes))
	for _, n := range g.nodes {
		collapsible[n.Raw] = len(g.in[n.Raw]) == 1 && len(g.out[n.Raw]) == 1
	}

	// follow walks forward starting at a known-collapsible node w through
	// the rest of its chain, returning the first surviving node reached and
	// every collapsible node visited along the way.
	follow := func(w idx.RawNodeIndex) (idx.RawNodeIndex, []idx.RawNodeIndex) {
		chain := []idx.RawNodeIndex{w}
		cur := w
		for {
			outs := g.OutNeighbors(cur)
			next := outs[0]
			if !collapsible[next] {
				return next, chain
			}
			chain = append(chain, next)
			cur = next
		}
	}

	out := &Graph{
		index: make(map[idx.RawNodeIndex]int),
		out:   make(map[idx.RawNodeIndex][]int),
		in:    make(map[idx.RawNodeIndex][]int),
	}
	for _, n := range g.nodes {
		if collapsible[n.Raw] {
			continue
		}
		out.index[n.Raw] = len(out.nodes)
		out.nodes = append(out.nodes, n)
	}

	seen := make(map[[2]idx.RawNodeIndex]struct{})
	for _, n := range g.nodes {
		if collapsible[n.Raw] {
			continue
		}
		for _, w := range g.OutNeighbors(n.Raw) {
			end, chain := w, []idx.RawNodeIndex(nil)
			if collapsible[w] {
				end, chain = follow(w)
			}
			key := [2]idx.RawNodeIndex{n.Raw, end}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			ei := len(out.edges)
			out.edges = append(out.edges, VisibleEdge{From: n.Raw, To: end, Kind: VisibleEdgeKind{Through: chain}})
			out.out[n.Raw] = append(out.out[n.Raw], ei)
			out.in[end] = append(out.in[end], ei)
		}
	}

	computeMaxDepth(out)
	return out
}
