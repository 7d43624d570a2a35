package gonumexport

import (
	"gonum.org/v1/gonum/graph/simple"

	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/matchloop"
	"github.com/arborly/axiomgraph/visible"
)

// VisibleGraph converts v into a gonum directed graph, one node per visible
// raw node, keyed by its raw index cast to int64. Contracted edges become
// plain directed edges; the collapsed chain itself (VisibleEdgeKind.Through)
// is not representable in gonum's graph and is dropped.
func VisibleGraph(v *visible.Graph) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for _, n := range v.Nodes() {
		g.AddNode(simple.Node(int64(n.Raw)))
	}
	for _, e := range v.Edges() {
		g.SetEdge(simple.Edge{
			F: simple.Node(int64(e.From)),
			T: simple.Node(int64(e.To)),
		})
	}
	return g
}

// AbstractInstantiationGraph converts a matching loop's abstract graph into
// a gonum directed graph, keyed by node position in mg.Nodes.
func AbstractInstantiationGraph(mg *matchloop.Graph) *simple.DirectedGraph {
	g := simple.NewDirectedGraph()
	for i := range mg.Nodes {
		g.AddNode(simple.Node(int64(i)))
	}
	for _, e := range mg.Edges {
		g.SetEdge(simple.Edge{
			F: simple.Node(int64(e.From)),
			T: simple.Node(int64(e.To)),
		})
	}
	return g
}

// RawNodeIDOf converts a raw node index to the gonum node ID VisibleGraph
// used for it, for callers that need to look a specific node back up in the
// exported graph.
func RawNodeIDOf(v idx.RawNodeIndex) int64 { return int64(v) }
