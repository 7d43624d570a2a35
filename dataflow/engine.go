package dataflow

import (
	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/rawgraph"
	"github.com/arborly/axiomgraph/subgraph"
)

// Direction selects which way a propagator walks a subgraph's topological
// order, and therefore which of a node's edges count as "predecessors".
type Direction uint8

const (
	// Forward walks components in topological order; predecessors are
	// in-edges (causes already computed).
	Forward Direction = iota
	// Backward walks components in reverse topological order;
	// predecessors are out-edges (effects already computed).
	Backward
)

// Capability is the contract a dataflow analysis implements. Base supplies a
// node's seed value; Transfer turns a finalised predecessor value into this
// node's contribution; Combine folds contributions together (the monoid
// operator ⊕); Reset is called once per component so stateful analyses can
// clear any per-component cache before the next walk.
type Capability[V any] interface {
	Base(g *rawgraph.Graph, node idx.RawNodeIndex) V
	Transfer(g *rawgraph.Graph, pred idx.RawNodeIndex, node idx.RawNodeIndex, value V) V
	Combine(acc, contribution V) V
	Reset()
}

// Run executes cap over every component of ix, in the direction dir, and
// returns the finalised value for every raw node. Each node is visited
// exactly once; a node's value is complete before any node that depends on
// it observes it (topological safety), matching the guarantee the
// propagator is specified to provide.
func Run[V any](g *rawgraph.Graph, ix *subgraph.Index, dir Direction, c Capability[V]) map[idx.RawNodeIndex]V {
	results := make(map[idx.RawNodeIndex]V, g.NumNodes())

	for _, sg := range ix.Subgraphs() {
		c.Reset()
		order := walkOrder(sg, dir)
		for _, node := range order {
			preds := predecessors(g, node, dir)
			value := c.Base(g, node)
			for _, p := range preds {
				pv, ok := results[p]
				if !ok {
					continue
				}
				value = c.Combine(value, c.Transfer(g, p, node, pv))
			}
			results[node] = value
		}
	}
	return results
}

func walkOrder(sg subgraph.Subgraph, dir Direction) []idx.RawNodeIndex {
	if dir == Forward {
		return sg.Nodes
	}
	out := make([]idx.RawNodeIndex, len(sg.Nodes))
	for i, v := range sg.Nodes {
		out[len(sg.Nodes)-1-i] = v
	}
	return out
}

func predecessors(g *rawgraph.Graph, node idx.RawNodeIndex, dir Direction) []idx.RawNodeIndex {
	if dir == Forward {
		return g.InNeighbors(node)
	}
	return g.OutNeighbors(node)
}
