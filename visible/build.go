package visible

import (
	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/rawgraph"
)

// contracted is one endpoint reached by walking forward from a hidden node
// through zero or more further hidden nodes.
type contracted struct {
	node    idx.RawNodeIndex
	through []idx.RawNodeIndex
}

// visibleSuccessors returns the nearest visible descendants reachable from
// w without passing through another visible node, memoised per hidden node
// since the raw graph is a DAG and a hidden node may be revisited along many
// paths.
func visibleSuccessors(g *rawgraph.Graph, memo map[idx.RawNodeIndex][]contracted, w idx.RawNodeIndex) []contracted {
	if g.Node(w).Visible {
		return []contracted{{node: w}}
	}
	if cached, ok := memo[w]; ok {
		return cached
	}
	// Guard against revisiting w while it is already being expanded on the
	// current call stack; the raw graph is a DAG so this never triggers in
	// practice, but an empty sentinel keeps the function total.
	memo[w] = nil

	var out []contracted
	for _, child := range g.OutNeighbors(w) {
		for _, c := range visibleSuccessors(g, memo, child) {
			out = append(out, contracted{
				node:    c.node,
				through: append([]idx.RawNodeIndex{w}, c.through...),
			})
		}
	}
	memo[w] = out
	return out
}

// Build projects g under its current visibility mask into a contracted DAG
// over only the visible nodes. MaxDepth on the returned graph is
// computed before Build returns.
func Build(g *rawgraph.Graph) *Graph {
	out := &Graph{
		index: make(map[idx.RawNodeIndex]int),
		out:   make(map[idx.RawNodeIndex][]int),
		in:    make(map[idx.RawNodeIndex][]int),
	}

	memo := make(map[idx.RawNodeIndex][]contracted)

	for i := 0; i < g.NumNodes(); i++ {
		v := idx.RawNodeIndex(i)
		if !g.Node(v).Visible {
			continue
		}
		out.index[v] = len(out.nodes)
		out.nodes = append(out.nodes, VisibleNode{Raw: v})
	}

	seenEdge := make(map[[2]idx.RawNodeIndex]struct{})
	addEdge := func(from, to idx.RawNodeIndex, kind VisibleEdgeKind) {
		key := [2]idx.RawNodeIndex{from, to}
		if _, ok := seenEdge[key]; ok {
			return
		}
		seenEdge[key] = struct{}{}
		ei := len(out.edges)
		out.edges = append(out.edges, VisibleEdge{From: from, To: to, Kind: kind})
		out.out[from] = append(out.out[from], ei)
		out.in[to] = append(out.in[to], ei)
	}

	for i := 0; i < g.NumNodes(); i++ {
		u := idx.RawNodeIndex(i)
		if !g.Node(u).Visible {
			continue
		}
		for _, w := range g.OutNeighbors(u) {
			if g.Node(w).Visible {
				addEdge(u, w, VisibleEdgeKind{})
				continue
			}
			for _, c := range visibleSuccessors(g, memo, w) {
				addEdge(u, c.node, VisibleEdgeKind{Through: c.through})
			}
		}
	}

	computeMaxDepth(out)
	return out
}
