package rawgraph

import (
	"errors"

	"github.com/arborly/axiomgraph/idx"
)

// Sentinel errors for raw graph construction and queries.
var (
	// ErrMissingBlame indicates a blame reference to an event that has not
	// yet been added to the graph; fatal for Build.
	ErrMissingBlame = errors.New("rawgraph: blame references an unseen node")
	// ErrSelfLoop indicates a causal edge from a node to itself, which can
	// never be valid since the event log is causal.
	ErrSelfLoop = errors.New("rawgraph: self-loop rejected")
	// ErrUnknownNode indicates a RawNodeIndex outside the graph's bounds.
	ErrUnknownNode = errors.New("rawgraph: unknown node index")
)

// EdgeKind distinguishes why one raw node depends on another.
type EdgeKind uint8

const (
	// EdgeTermBlame: an instantiation was blamed on a matched e-node.
	EdgeTermBlame EdgeKind = iota
	// EdgeEqualityBlame: an instantiation was blamed on an equality rewrite.
	EdgeEqualityBlame
	// EdgeYieldsENode: an instantiation's processing produced an e-node.
	EdgeYieldsENode
	// EdgeEqualityComposition: a transitive equality was composed from a
	// constituent equality step.
	EdgeEqualityComposition
	// EdgeYieldsEquality: an instantiation's processing asserted a literal
	// or congruence equality.
	EdgeYieldsEquality
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeTermBlame:
		return "term-blame"
	case EdgeEqualityBlame:
		return "equality-blame"
	case EdgeYieldsENode:
		return "yields-enode"
	case EdgeEqualityComposition:
		return "equality-composition"
	case EdgeYieldsEquality:
		return "yields-equality"
	default:
		return "unknown"
	}
}

// Edge is a directed causal dependency: From produced/enabled To.
type Edge struct {
	From idx.RawNodeIndex
	To   idx.RawNodeIndex
	Kind EdgeKind
}

// NodeKind identifies which parser event a raw node represents, and carries
// enough of the typed index to map back to the model.
type NodeKind struct {
	Tag   idx.NodeKindTag
	Inst  idx.InstIdx
	ENode idx.ENodeIdx
	Eq    idx.EqTransIdx
}

// SubgraphPos is the (component id, local topological index) pair recorded
// by subgraph.Build on every node once the raw graph has been partitioned
// into weakly-connected components.
type SubgraphPos struct {
	Component uint32
	LocalIx   uint32
}

// Node is one raw-graph vertex: its identity (Kind) is immutable after
// construction; Disabled/Visible/depths/Subgraph/PartOfML are mutated freely
// by later passes. Dataflow result sets (inst/enabled parents/children) are
// kept out of Node and stored in parallel arrays owned by the caller (the
// dataflow package) — suggested memory-saving alternative to
// storing a Set<RawNodeIndex> on every node.
type Node struct {
	Kind     NodeKind
	Disabled bool
	Visible  bool
	MinDepth *uint32
	MaxDepth *uint32
	Subgraph *SubgraphPos
	PartOfML map[int]struct{}
}

// IsInstantiation reports whether this node is an Instantiation event.
func (n *Node) IsInstantiation() bool { return n.Kind.Tag == idx.KindInstantiation }

// InPartOfML reports whether this node belongs to the n-th matching loop.
func (n *Node) InPartOfML(n_ int) bool {
	if n.PartOfML == nil {
		return false
	}
	_, ok := n.PartOfML[n_]
	return ok
}

// MarkPartOfML records that this node belongs to the n-th matching loop.
func (n *Node) MarkPartOfML(n_ int) {
	if n.PartOfML == nil {
		n.PartOfML = make(map[int]struct{})
	}
	n.PartOfML[n_] = struct{}{}
}
