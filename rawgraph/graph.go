package rawgraph

import "github.com/arborly/axiomgraph/idx"

// Graph is the raw dependency graph: one node per parser event, edges
// encoding produced-by/used-by causality. It is a DAG by construction
// since edges only ever point from an earlier event to
// the later event it enables.
type Graph struct {
	nodes []Node
	edges []Edge

	// out[i]/in[i] list the indices into edges touching node i: a dense
	// append-only adjacency list, since raw nodes are never removed.
	out [][]int
	in  [][]int

	instToRaw  map[idx.InstIdx]idx.RawNodeIndex
	enodeToRaw map[idx.ENodeIdx]idx.RawNodeIndex
	eqToRaw    map[idx.EqTransIdx]idx.RawNodeIndex
}

// NewGraph returns an empty raw graph.
func NewGraph() *Graph {
	return &Graph{
		instToRaw:  make(map[idx.InstIdx]idx.RawNodeIndex),
		enodeToRaw: make(map[idx.ENodeIdx]idx.RawNodeIndex),
		eqToRaw:    make(map[idx.EqTransIdx]idx.RawNodeIndex),
	}
}

// NumNodes returns the number of raw nodes.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// Node returns a pointer to the node at i, for read or in-place mutation of
// its analysis fields (Disabled, Visible, depths, Subgraph, PartOfML).
func (g *Graph) Node(i idx.RawNodeIndex) *Node {
	return &g.nodes[i]
}

// Edges returns the full edge list, in insertion order.
func (g *Graph) Edges() []Edge { return g.edges }

// OutEdges returns the edges leaving node i.
func (g *Graph) OutEdges(i idx.RawNodeIndex) []Edge {
	idxs := g.out[i]
	out := make([]Edge, len(idxs))
	for k, e := range idxs {
		out[k] = g.edges[e]
	}
	return out
}

// InEdges returns the edges entering node i.
func (g *Graph) InEdges(i idx.RawNodeIndex) []Edge {
	idxs := g.in[i]
	out := make([]Edge, len(idxs))
	for k, e := range idxs {
		out[k] = g.edges[e]
	}
	return out
}

// OutNeighbors returns the distinct nodes i has an outgoing edge to.
func (g *Graph) OutNeighbors(i idx.RawNodeIndex) []idx.RawNodeIndex {
	seen := make(map[idx.RawNodeIndex]struct{}, len(g.out[i]))
	var out []idx.RawNodeIndex
	for _, e := range g.out[i] {
		to := g.edges[e].To
		if _, ok := seen[to]; ok {
			continue
		}
		seen[to] = struct{}{}
		out = append(out, to)
	}
	return out
}

// InNeighbors returns the distinct nodes with an outgoing edge to i.
func (g *Graph) InNeighbors(i idx.RawNodeIndex) []idx.RawNodeIndex {
	seen := make(map[idx.RawNodeIndex]struct{}, len(g.in[i]))
	var out []idx.RawNodeIndex
	for _, e := range g.in[i] {
		from := g.edges[e].From
		if _, ok := seen[from]; ok {
			continue
		}
		seen[from] = struct{}{}
		out = append(out, from)
	}
	return out
}

// RawOf* map a typed model index back to the raw node created for it.
func (g *Graph) RawOfInst(i idx.InstIdx) (idx.RawNodeIndex, bool) {
	r, ok := g.instToRaw[i]
	return r, ok
}

func (g *Graph) RawOfENode(e idx.ENodeIdx) (idx.RawNodeIndex, bool) {
	r, ok := g.enodeToRaw[e]
	return r, ok
}

func (g *Graph) RawOfEquality(e idx.EqTransIdx) (idx.RawNodeIndex, bool) {
	r, ok := g.eqToRaw[e]
	return r, ok
}

// addNode appends a node with the given kind and returns its index. Visible
// defaults to true, matching a freshly loaded model before any filter runs.
func (g *Graph) addNode(kind NodeKind) idx.RawNodeIndex {
	id := idx.RawNodeIndex(len(g.nodes))
	g.nodes = append(g.nodes, Node{Kind: kind, Visible: true})
	g.out = append(g.out, nil)
	g.in = append(g.in, nil)
	return id
}

// addEdge records a causal dependency from -> to. Both endpoints must
// already exist; self-loops are rejected.
func (g *Graph) addEdge(from, to idx.RawNodeIndex, kind EdgeKind) error {
	if from == to {
		return ErrSelfLoop
	}
	if int(from) < 0 || int(from) >= len(g.nodes) || int(to) < 0 || int(to) >= len(g.nodes) {
		return ErrMissingBlame
	}
	eIdx := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Kind: kind})
	g.out[from] = append(g.out[from], eIdx)
	g.in[to] = append(g.in[to], eIdx)
	return nil
}

// ResetDisabledTo sets disabled(v) := p(v) for every raw node.
func (g *Graph) ResetDisabledTo(p func(idx.RawNodeIndex, *Node) bool) {
	for i := range g.nodes {
		g.nodes[i].Disabled = p(idx.RawNodeIndex(i), &g.nodes[i])
	}
}

// SetVisibilityWhen sets visible(v) := b for every node matching p.
func (g *Graph) SetVisibilityWhen(b bool, p func(idx.RawNodeIndex, *Node) bool) {
	for i := range g.nodes {
		if p(idx.RawNodeIndex(i), &g.nodes[i]) {
			g.nodes[i].Visible = b
		}
	}
}

// SetVisibilityMany sets visible(v) := b for every node in ids.
func (g *Graph) SetVisibilityMany(b bool, ids []idx.RawNodeIndex) {
	for _, i := range ids {
		g.nodes[i].Visible = b
	}
}

// ResetVisibilityTo sets visible(v) := b for every raw node.
func (g *Graph) ResetVisibilityTo(b bool) {
	for i := range g.nodes {
		g.nodes[i].Visible = b
	}
}

// DisabledSet snapshots the current disabled bit of every node, keyed by
// index — used by matchloop to restore state exactly after a search.
func (g *Graph) DisabledSet() map[idx.RawNodeIndex]bool {
	out := make(map[idx.RawNodeIndex]bool, len(g.nodes))
	for i := range g.nodes {
		if g.nodes[i].Disabled {
			out[idx.RawNodeIndex(i)] = true
		}
	}
	return out
}
