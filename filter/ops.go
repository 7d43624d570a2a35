package filter

import (
	"sort"

	"github.com/arborly/axiomgraph/dataflow"
	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/model"
	"github.com/arborly/axiomgraph/rawgraph"
	"github.com/arborly/axiomgraph/subgraph"
)

// Every apply* helper below only ever tightens visibility (sets visible to
// false) except ShowNeighbours/ShowNamedQuantifier, which unhide. The tree
// filters hide either everything outside the tree (keep) or the tree itself
// (!keep). Non-instantiation raw nodes (e-nodes, equalities) are left alone
// by the instantiation-scoped filters and stay visible; the visible-graph
// builder only contracts nodes that are themselves hidden.

func applyMaxNodeIdx(g *rawgraph.Graph, k int) {
	forEachInstantiation(g, func(v idx.RawNodeIndex, n *rawgraph.Node) {
		if int(n.Kind.Inst) > k {
			n.Visible = false
		}
	})
}

func applyIgnoreTheorySolving(g *rawgraph.Graph, m *model.Model) {
	forEachInstantiation(g, func(v idx.RawNodeIndex, n *rawgraph.Node) {
		match, err := m.MatchOf(n.Kind.Inst)
		if err != nil {
			return
		}
		if match.Kind.IsTheorySolving() {
			n.Visible = false
		}
	})
}

func applyIgnoreQuantifier(g *rawgraph.Graph, m *model.Model, q idx.QuantIdx) {
	forEachInstantiation(g, func(v idx.RawNodeIndex, n *rawgraph.Node) {
		qq, hasQuant := instQuant(m, n.Kind.Inst)
		if (!hasQuant && !q.Valid()) || (hasQuant && qq == q) {
			n.Visible = false
		}
	})
}

func applyIgnoreAllButQuantifier(g *rawgraph.Graph, m *model.Model, q idx.QuantIdx) {
	forEachInstantiation(g, func(v idx.RawNodeIndex, n *rawgraph.Node) {
		qq, hasQuant := instQuant(m, n.Kind.Inst)
		if !hasQuant || qq != q {
			n.Visible = false
		}
	})
}

func applyMaxInsts(g *rawgraph.Graph, m *model.Model, keep int) {
	type scored struct {
		v    idx.RawNodeIndex
		cost int
	}
	var all []scored
	forEachInstantiation(g, func(v idx.RawNodeIndex, n *rawgraph.Node) {
		inst, err := m.Instantiation(n.Kind.Inst)
		if err != nil {
			return
		}
		all = append(all, scored{v: v, cost: len(inst.YieldsTerms)})
	})
	sort.Slice(all, func(i, j int) bool {
		if all[i].cost != all[j].cost {
			return all[i].cost > all[j].cost
		}
		return all[i].v < all[j].v
	})
	for i := keep; i < len(all); i++ {
		g.Node(all[i].v).Visible = false
	}
}

func applyMaxBranching(g *rawgraph.Graph, keep int) {
	vg := visibleGraphFor(g)
	type scored struct {
		v        idx.RawNodeIndex
		children int
	}
	var all []scored
	forEachInstantiation(g, func(v idx.RawNodeIndex, n *rawgraph.Node) {
		if !n.Visible {
			return
		}
		all = append(all, scored{v: v, children: vg.OutDegree(v)})
	})
	sort.Slice(all, func(i, j int) bool {
		if all[i].children != all[j].children {
			return all[i].children > all[j].children
		}
		return all[i].v < all[j].v
	})
	for i := keep; i < len(all); i++ {
		g.Node(all[i].v).Visible = false
	}
}

func applyShowNeighbours(g *rawgraph.Graph, v idx.RawNodeIndex, dir dataflow.Direction) {
	neighbours := g.OutNeighbors(v)
	if dir == dataflow.Backward {
		neighbours = g.InNeighbors(v)
	}
	for _, n := range neighbours {
		g.Node(n).Visible = true
	}
}

func applyVisitTree(g *rawgraph.Graph, ix *subgraph.Index, v idx.RawNodeIndex, keep bool, dir dataflow.Direction) error {
	var set map[idx.RawNodeIndex]struct{}
	if dir == dataflow.Forward {
		reach, err := ix.ReachableFrom(v)
		if err != nil {
			return err
		}
		set = toSet(reach)
	} else {
		set, _ = ancestorsOf(ix, v)
	}

	if keep {
		for i := 0; i < g.NumNodes(); i++ {
			node := idx.RawNodeIndex(i)
			if _, ok := set[node]; !ok {
				g.Node(node).Visible = false
			}
		}
		return nil
	}
	for node := range set {
		g.Node(node).Visible = false
	}
	return nil
}

func applyMaxDepth(g *rawgraph.Graph, d int) {
	for i := 0; i < g.NumNodes(); i++ {
		node := idx.RawNodeIndex(i)
		n := g.Node(node)
		if n.MinDepth != nil && int(*n.MinDepth) > d {
			n.Visible = false
		}
	}
}

func applyShowNamedQuantifier(g *rawgraph.Graph, m *model.Model, name string) {
	forEachInstantiation(g, func(v idx.RawNodeIndex, n *rawgraph.Node) {
		qq, hasQuant := instQuant(m, n.Kind.Inst)
		if hasQuant && m.QuantName(qq) == name {
			n.Visible = true
		}
	})
}

func applyShowMatchingLoopSubgraph(g *rawgraph.Graph, numLoops int) {
	for i := 0; i < g.NumNodes(); i++ {
		node := idx.RawNodeIndex(i)
		n := g.Node(node)
		inAny := false
		for l := 0; l < numLoops; l++ {
			if n.InPartOfML(l) {
				inAny = true
				break
			}
		}
		if !inAny {
			n.Visible = false
		}
	}
}

func forEachInstantiation(g *rawgraph.Graph, fn func(idx.RawNodeIndex, *rawgraph.Node)) {
	for i := 0; i < g.NumNodes(); i++ {
		v := idx.RawNodeIndex(i)
		n := g.Node(v)
		if n.IsInstantiation() {
			fn(v, n)
		}
	}
}

func instQuant(m *model.Model, instID idx.InstIdx) (idx.QuantIdx, bool) {
	match, err := m.MatchOf(instID)
	if err != nil {
		return idx.QuantIdx(idx.None), false
	}
	return match.Kind.QuantIdxOf()
}

func toSet(vs []idx.RawNodeIndex) map[idx.RawNodeIndex]struct{} {
	set := make(map[idx.RawNodeIndex]struct{}, len(vs))
	for _, v := range vs {
		set[v] = struct{}{}
	}
	return set
}

func ancestorsOf(ix *subgraph.Index, v idx.RawNodeIndex) (map[idx.RawNodeIndex]struct{}, error) {
	pos, err := ix.PositionOf(v)
	if err != nil {
		return nil, err
	}
	sg, err := ix.ComponentOf(v)
	if err != nil {
		return nil, err
	}
	set := make(map[idx.RawNodeIndex]struct{})
	sg.ReachBwd[pos.LocalIx].Iterate(func(i int) {
		set[sg.Nodes[i]] = struct{}{}
	})
	return set, nil
}
