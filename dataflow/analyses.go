package dataflow

import (
	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/rawgraph"
)

// depthCapability implements minDepth (Forward, monoid = min) and maxDepth
// (Forward, monoid = max): both root at 0 on nodes with no predecessor, and
// otherwise fold 1+predecessor.depth over all predecessors. Since every
// Transfer result is >= 1, a running value of 0 unambiguously means "no
// contribution observed yet", letting Combine tell a real first contribution
// apart from the un-visited base case without an extra has-seen flag.
type depthCapability struct {
	better func(a, b uint32) uint32
}

func (depthCapability) Base(_ *rawgraph.Graph, _ idx.RawNodeIndex) uint32 { return 0 }

func (depthCapability) Transfer(_ *rawgraph.Graph, _, _ idx.RawNodeIndex, value uint32) uint32 {
	return value + 1
}

func (d depthCapability) Combine(acc, contribution uint32) uint32 {
	if acc == 0 {
		return contribution
	}
	return d.better(acc, contribution)
}

func (depthCapability) Reset() {}

func minUint32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func maxUint32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

// InstSet is the result type for the NextInsts/NextEnabled analyses.
type InstSet map[idx.RawNodeIndex]struct{}

func unionInto(dst InstSet, src InstSet) InstSet {
	if dst == nil {
		dst = make(InstSet, len(src))
	}
	for k := range src {
		dst[k] = struct{}{}
	}
	return dst
}

// nextInstsCapability finds, for each node, the nearest instantiation
// ancestors/descendants (depending on Direction) with no intervening
// instantiation on the path. A node's own Base is always empty: an
// instantiation only becomes part of a *successor's* set, via Transfer
// inspecting the predecessor's kind.
type nextInstsCapability struct{}

func (nextInstsCapability) Base(_ *rawgraph.Graph, _ idx.RawNodeIndex) InstSet { return nil }

func (nextInstsCapability) Transfer(g *rawgraph.Graph, pred, _ idx.RawNodeIndex, value InstSet) InstSet {
	if g.Node(pred).IsInstantiation() {
		return InstSet{pred: {}}
	}
	return value
}

func (nextInstsCapability) Combine(acc, contribution InstSet) InstSet {
	return unionInto(acc, contribution)
}

func (nextInstsCapability) Reset() {}

// nextEnabledCapability finds, for each disabled node, the closest enabled
// bracket in each direction: any enabled node emits itself, regardless of
// kind, and a disabled node is transparent and propagates its predecessor's
// set through.
type nextEnabledCapability struct{}

func (nextEnabledCapability) Base(_ *rawgraph.Graph, _ idx.RawNodeIndex) InstSet { return nil }

func (nextEnabledCapability) Transfer(g *rawgraph.Graph, pred, _ idx.RawNodeIndex, value InstSet) InstSet {
	if !g.Node(pred).Disabled {
		return InstSet{pred: {}}
	}
	return value
}

func (nextEnabledCapability) Combine(acc, contribution InstSet) InstSet {
	return unionInto(acc, contribution)
}

func (nextEnabledCapability) Reset() {}
