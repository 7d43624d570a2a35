package matchloop

import (
	"sort"

	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/model"
	"github.com/arborly/axiomgraph/rawgraph"
	"github.com/arborly/axiomgraph/visible"
)

// Result is the outcome of one SearchMatchingLoops run: K abstract graphs,
// ranked by descending endpoint max-depth (tie-break: lower raw index), each
// paired with its endpoint raw node.
type Result struct {
	Endpoint idx.RawNodeIndex
	Graph    *Graph
}

// SearchMatchingLoops collects, per quantifier, the endpoints of longest
// paths of at least minLength nodes, makes exactly those endpoints visible,
// and returns one loop per sink of the resulting matching-loop subgraph. It
// mutates g's disabled and visible bits while it runs, restoring the
// pre-call disabled set before returning (visible bits are left reflecting
// the matching-loop subgraph, as callers downstream are expected to rebuild
// the visible graph again for their own purposes). PartOfML is stamped with
// i on every node the reverse walk from loop i's sink reaches in that
// subgraph; since the subgraph holds only endpoints, the interior
// instantiations of a path are not marked and are not folded into the
// abstract graph. Calling this twice without any mask change in between
// yields identical results.
func SearchMatchingLoops(g *rawgraph.Graph, m *model.Model, minLength int) ([]Result, error) {
	snapshot := g.DisabledSet()

	g.ResetDisabledTo(func(_ idx.RawNodeIndex, n *rawgraph.Node) bool {
		return !n.IsInstantiation()
	})

	quants := referencedQuantifiers(g, m)

	endpoints := make(map[idx.RawNodeIndex]struct{})
	for _, q := range quants {
		g.ResetVisibilityTo(false)
		for i := 0; i < g.NumNodes(); i++ {
			v := idx.RawNodeIndex(i)
			n := g.Node(v)
			if !n.IsInstantiation() {
				continue
			}
			qq, _, err := m.QuantPatternOf(n.Kind.Inst)
			if err != nil {
				continue
			}
			if qq == q {
				n.Visible = true
			}
		}
		vg := visible.Build(g)
		for _, end := range visible.FindEndNodesOfLongestPaths(vg, minLength) {
			endpoints[end] = struct{}{}
		}
	}

	memberSet := make([]idx.RawNodeIndex, 0, len(endpoints))
	for v := range endpoints {
		memberSet = append(memberSet, v)
	}

	g.ResetVisibilityTo(false)
	g.SetVisibilityMany(true, memberSet)
	mlGraph := visible.Build(g)

	var rankedEnds []idx.RawNodeIndex
	for _, n := range mlGraph.Nodes() {
		if mlGraph.OutDegree(n.Raw) == 0 {
			rankedEnds = append(rankedEnds, n.Raw)
		}
	}
	sort.Slice(rankedEnds, func(i, j int) bool {
		di, _ := mlGraph.MaxDepthOf(rankedEnds[i])
		dj, _ := mlGraph.MaxDepthOf(rankedEnds[j])
		if di != dj {
			return di > dj
		}
		return rankedEnds[i] < rankedEnds[j]
	})

	results := make([]Result, len(rankedEnds))
	for i, end := range rankedEnds {
		members := reverseDFS(mlGraph, end)
		for _, v := range members {
			g.Node(v).MarkPartOfML(i)
		}
		graph, err := BuildAbstractGraph(g, m, members)
		if err != nil {
			return nil, err
		}
		results[i] = Result{Endpoint: end, Graph: graph}
	}

	g.ResetDisabledTo(func(v idx.RawNodeIndex, _ *rawgraph.Node) bool {
		_, ok := snapshot[v]
		return ok
	})

	return results, nil
}

func referencedQuantifiers(g *rawgraph.Graph, m *model.Model) []idx.QuantIdx {
	seen := make(map[idx.QuantIdx]struct{})
	var out []idx.QuantIdx
	for i := 0; i < g.NumNodes(); i++ {
		n := g.Node(idx.RawNodeIndex(i))
		if !n.IsInstantiation() {
			continue
		}
		match, err := m.MatchOf(n.Kind.Inst)
		if err != nil {
			continue
		}
		q, ok := match.Kind.QuantIdxOf()
		if !ok {
			continue
		}
		if _, ok := seen[q]; ok {
			continue
		}
		seen[q] = struct{}{}
		out = append(out, q)
	}
	return out
}

// reverseDFS walks every ancestor of start within vg, inclusive.
func reverseDFS(vg *visible.Graph, start idx.RawNodeIndex) []idx.RawNodeIndex {
	visited := make(map[idx.RawNodeIndex]struct{})
	var out []idx.RawNodeIndex
	stack := []idx.RawNodeIndex{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[v]; ok {
			continue
		}
		visited[v] = struct{}{}
		out = append(out, v)
		for _, p := range vg.InNeighbors(v) {
			if _, ok := visited[p]; !ok {
				stack = append(stack, p)
			}
		}
	}
	return out
}

// NthMatchingLoop returns the n-th loop from a prior SearchMatchingLoops
// result, or ok=false if n is out of range.
func NthMatchingLoop(results []Result, n int) (*Graph, bool) {
	if n < 0 || n >= len(results) {
		return nil, false
	}
	return results[n].Graph, true
}
