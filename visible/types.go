package visible

import "github.com/arborly/axiomgraph/idx"

// VisibleEdgeKind records why a visible-graph edge exists: a direct raw edge
// between two visible nodes, or a contracted path whose intermediate nodes
// were all hidden. Through is empty for a direct edge.
type VisibleEdgeKind struct {
	Through []idx.RawNodeIndex
}

// IsDirect reports whether this edge mirrors a single raw edge rather than a
// contracted chain.
func (k VisibleEdgeKind) IsDirect() bool { return len(k.Through) == 0 }

// VisibleEdge is a contracted dependency between two visible raw nodes.
type VisibleEdge struct {
	From idx.RawNodeIndex
	To   idx.RawNodeIndex
	Kind VisibleEdgeKind
}

// VisibleNode is one visible-graph vertex: the raw node it projects, plus
// its max-depth within the visible graph once computed.
type VisibleNode struct {
	Raw      idx.RawNodeIndex
	MaxDepth uint32
}

// Graph is the visible-graph snapshot itself: nodes are the pairs
// (raw_idx, max_depth) describes, edges are the contracted paths.
type Graph struct {
	nodes []VisibleNode
	index map[idx.RawNodeIndex]int
	edges []VisibleEdge
	out   map[idx.RawNodeIndex][]int
	in    map[idx.RawNodeIndex][]int
}

// Nodes returns every visible node, each paired with its raw index.
func (g *Graph) Nodes() []VisibleNode { return g.nodes }

// Edges returns every contracted edge.
func (g *Graph) Edges() []VisibleEdge { return g.edges }

// Has reports whether v is present in this visible graph.
func (g *Graph) Has(v idx.RawNodeIndex) bool {
	_, ok := g.index[v]
	return ok
}

// MaxDepthOf returns the max-depth of v within this visible graph.
func (g *Graph) MaxDepthOf(v idx.RawNodeIndex) (uint32, bool) {
	i, ok := g.index[v]
	if !ok {
		return 0, false
	}
	return g.nodes[i].MaxDepth, true
}

// OutNeighbors returns the distinct visible successors of v.
func (g *Graph) OutNeighbors(v idx.RawNodeIndex) []idx.RawNodeIndex {
	return g.neighbors(g.out[v], true)
}

// InNeighbors returns the distinct visible predecessors of v.
func (g *Graph) InNeighbors(v idx.RawNodeIndex) []idx.RawNodeIndex {
	return g.neighbors(g.in[v], false)
}

func (g *Graph) neighbors(edgeIdxs []int, outgoing bool) []idx.RawNodeIndex {
	seen := make(map[idx.RawNodeIndex]struct{}, len(edgeIdxs))
	var out []idx.RawNodeIndex
	for _, ei := range edgeIdxs {
		e := g.edges[ei]
		n := e.To
		if !outgoing {
			n = e.From
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// OutDegree returns the number of distinct visible successors of v.
func (g *Graph) OutDegree(v idx.RawNodeIndex) int { return len(g.OutNeighbors(v)) }

// EdgeBetween returns the (possibly contracted) edge kind recorded between
// u and v, if one exists.
func (g *Graph) EdgeBetween(u, v idx.RawNodeIndex) (VisibleEdgeKind, bool) {
	for _, ei := range g.out[u] {
		e := g.edges[ei]
		if e.To == v {
			return e.Kind, true
		}
	}
	return VisibleEdgeKind{}, false
}
