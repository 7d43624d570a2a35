package dataflow

import (
	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/rawgraph"
	"github.com/arborly/axiomgraph/subgraph"
)

// RunMinDepth computes the shortest root distance of every raw node and
// stamps it onto Node.MinDepth (, used by the MaxDepth filter).
func RunMinDepth(g *rawgraph.Graph, ix *subgraph.Index) {
	values := Run[uint32](g, ix, Forward, depthCapability{better: minUint32})
	for node, v := range values {
		d := v
		g.Node(node).MinDepth = &d
	}
}

// RunMaxDepth computes the longest root distance of every raw node and
// stamps it onto Node.MaxDepth (, used to sort matching loops by
// endpoint depth).
func RunMaxDepth(g *rawgraph.Graph, ix *subgraph.Index) {
	values := Run[uint32](g, ix, Forward, depthCapability{better: maxUint32})
	for node, v := range values {
		d := v
		g.Node(node).MaxDepth = &d
	}
}

// RunNextInsts computes, for every raw node, the nearest instantiation
// ancestors (Forward) or descendants (Backward) reachable without passing
// through another instantiation.
func RunNextInsts(g *rawgraph.Graph, ix *subgraph.Index, dir Direction) map[idx.RawNodeIndex]InstSet {
	return Run[InstSet](g, ix, dir, nextInstsCapability{})
}

// RunNextEnabled computes, for every disabled node, the nearest enabled
// bracket reachable without passing through another enabled node.
func RunNextEnabled(g *rawgraph.Graph, ix *subgraph.Index, dir Direction) map[idx.RawNodeIndex]InstSet {
	return Run[InstSet](g, ix, dir, nextEnabledCapability{})
}
