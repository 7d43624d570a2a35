package filter

import (
	"sort"

	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/matchloop"
	"github.com/arborly/axiomgraph/model"
	"github.com/arborly/axiomgraph/rawgraph"
	"github.com/arborly/axiomgraph/visible"
)

// applySelectNthMatchingLoop hides every raw node outside the n-th ranked
// matching loop and returns the generalised term strings of its abstract
// graph's e-node and equality nodes, in node order.
func applySelectNthMatchingLoop(g *rawgraph.Graph, m *model.Model, loops []matchloop.Result, n int) []string {
	for i := 0; i < g.NumNodes(); i++ {
		node := idx.RawNodeIndex(i)
		nd := g.Node(node)
		if !nd.InPartOfML(n) {
			nd.Visible = false
		}
	}

	graph, ok := matchloop.NthMatchingLoop(loops, n)
	if !ok {
		return nil
	}
	var terms []string
	for _, node := range graph.Nodes {
		switch node.Variant {
		case matchloop.NodeENode:
			terms = append(terms, m.Terms.String(node.Term))
		case matchloop.NodeEquality:
			terms = append(terms, m.Terms.String(node.From)+" = "+m.Terms.String(node.To))
		}
	}
	return terms
}

// LongestPathThrough returns the longest path through v in the current
// visible graph: the longest root-to-v prefix, walking backward from v and
// always preferring the predecessor with the lowest raw index among those
// on an equally long path, followed by the longest v-to-sink suffix, walking
// forward and always preferring the successor whose own longest path to a
// sink is deepest (ties broken the same way). Together they give the
// lexicographically-first longest path passing through v.
func LongestPathThrough(g *rawgraph.Graph, v idx.RawNodeIndex) []idx.RawNodeIndex {
	vg := visibleGraphFor(g)
	if !vg.Has(v) {
		return nil
	}

	var prefix []idx.RawNodeIndex
	cur := v
	for {
		prefix = append([]idx.RawNodeIndex{cur}, prefix...)
		curDepth, _ := vg.MaxDepthOf(cur)
		if curDepth == 0 {
			break
		}
		preds := vg.InNeighbors(cur)
		sort.Slice(preds, func(i, j int) bool { return preds[i] < preds[j] })
		var next idx.RawNodeIndex
		found := false
		for _, p := range preds {
			pd, _ := vg.MaxDepthOf(p)
			if pd == curDepth-1 {
				next = p
				found = true
				break
			}
		}
		if !found {
			break
		}
		cur = next
	}

	sinkDepth := make(map[idx.RawNodeIndex]int)
	var tail []idx.RawNodeIndex
	cur = v
	for {
		succs := vg.OutNeighbors(cur)
		sort.Slice(succs, func(i, j int) bool { return succs[i] < succs[j] })
		var next idx.RawNodeIndex
		found := false
		best := -1
		for _, s := range succs {
			d := depthToSink(vg, s, sinkDepth)
			if d > best {
				best = d
				next = s
				found = true
			}
		}
		if !found {
			break
		}
		tail = append(tail, next)
		cur = next
	}
	return append(prefix, tail...)
}

// depthToSink returns the length, in edges, of the longest path from v to a
// sink of vg, memoized since the same node can be revisited by several
// callers walking distinct candidate suffixes.
func depthToSink(vg *visible.Graph, v idx.RawNodeIndex, memo map[idx.RawNodeIndex]int) int {
	if d, ok := memo[v]; ok {
		return d
	}
	best := 0
	for _, w := range vg.OutNeighbors(v) {
		if d := depthToSink(vg, w, memo) + 1; d > best {
			best = d
		}
	}
	memo[v] = best
	return best
}
