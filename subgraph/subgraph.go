package subgraph

import (
	"errors"

	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/rawgraph"
)

// ErrUnknownSubgraph indicates a raw node that was never assigned a
// component, which cannot happen after a successful Build.
var ErrUnknownSubgraph = errors.New("subgraph: raw node has no component")

// Subgraph is one weakly-connected component: its nodes in topological
// order, plus forward/backward reachability bitsets indexed by local
// position.
type Subgraph struct {
	Nodes    []idx.RawNodeIndex
	ReachFwd []Bitset
	ReachBwd []Bitset
}

// Index maps every raw node to its component and local position, and holds
// the per-component Subgraph records.
type Index struct {
	components []Subgraph
	posOf      map[idx.RawNodeIndex]rawgraph.SubgraphPos
}

// Build partitions g into weakly-connected components, numbers each
// component's nodes in topological order, computes reach_fwd/reach_bwd, and
// stamps (component, local_ix) onto every node of g.
func Build(g *rawgraph.Graph) *Index {
	comps := weaklyConnectedComponents(g)

	idxOut := &Index{
		posOf: make(map[idx.RawNodeIndex]rawgraph.SubgraphPos, g.NumNodes()),
	}

	for compID, members := range comps {
		order := topoOrder(g, members)
		localOf := make(map[idx.RawNodeIndex]int, len(order))
		for i, v := range order {
			localOf[v] = i
		}

		fwd := make([]Bitset, len(order))
		bwd := make([]Bitset, len(order))
		for i := range order {
			fwd[i] = NewBitset(len(order))
			bwd[i] = NewBitset(len(order))
		}

		// reach_fwd in reverse topological order: reach_fwd[i] = {i} ∪
		// union of reach_fwd[j] for every i -> j within the component.
		for i := len(order) - 1; i >= 0; i-- {
			fwd[i].Set(i)
			for _, u := range g.OutNeighbors(order[i]) {
				j, ok := localOf[u]
				if !ok {
					continue
				}
				fwd[i].Or(fwd[j])
			}
		}
		// reach_bwd symmetrically in forward order.
		for i := 0; i < len(order); i++ {
			bwd[i].Set(i)
			for _, u := range g.InNeighbors(order[i]) {
				j, ok := localOf[u]
				if !ok {
					continue
				}
				bwd[i].Or(bwd[j])
			}
		}

		idxOut.components = append(idxOut.components, Subgraph{
			Nodes:    order,
			ReachFwd: fwd,
			ReachBwd: bwd,
		})

		for i, v := range order {
			pos := rawgraph.SubgraphPos{Component: uint32(compID), LocalIx: uint32(i)}
			idxOut.posOf[v] = pos
			node := g.Node(v)
			node.Subgraph = &pos
		}
	}

	return idxOut
}

// Subgraphs returns the components in discovery order.
func (ix *Index) Subgraphs() []Subgraph { return ix.components }

// PositionOf returns the (component, local index) of a raw node.
func (ix *Index) PositionOf(v idx.RawNodeIndex) (rawgraph.SubgraphPos, error) {
	pos, ok := ix.posOf[v]
	if !ok {
		return rawgraph.SubgraphPos{}, ErrUnknownSubgraph
	}
	return pos, nil
}

// ComponentOf returns the Subgraph owning v.
func (ix *Index) ComponentOf(v idx.RawNodeIndex) (*Subgraph, error) {
	pos, err := ix.PositionOf(v)
	if err != nil {
		return nil, err
	}
	return &ix.components[pos.Component], nil
}
