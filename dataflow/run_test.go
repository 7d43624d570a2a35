package dataflow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborly/axiomgraph/dataflow"
	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/model"
	"github.com/arborly/axiomgraph/rawgraph"
	"github.com/arborly/axiomgraph/subgraph"
)

// buildChain constructs root -enode-> inst1 -> mid -enode-> inst2 -> leaf,
// i.e. two instantiations in series separated by plain e-nodes.
func buildChain(t *testing.T) (*rawgraph.Graph, *subgraph.Index) {
	t.Helper()
	m := model.NewModel()
	root := m.AddENode(m.Terms.Mk("root"), nil)

	q := m.AddQuant("q")
	pattern := m.Terms.Mk("p")
	match1 := m.AddMatch(model.Match{
		Kind:   model.MatchKind{Tag: model.MatchQuantifier, Quant: q, Pattern: pattern},
		Blamed: []model.BlameKind{{Term: root}},
	})
	inst1 := m.AddInstantiation(model.Instantiation{Match: match1})
	mid := m.AddENode(m.Terms.Mk("mid"), &inst1)

	match2 := m.AddMatch(model.Match{
		Kind:   model.MatchKind{Tag: model.MatchQuantifier, Quant: q, Pattern: pattern},
		Blamed: []model.BlameKind{{Term: mid}},
	})
	inst2 := m.AddInstantiation(model.Instantiation{Match: match2})
	m.AddENode(m.Terms.Mk("leaf"), &inst2)

	g, err := rawgraph.Build(m)
	require.NoError(t, err)
	ix := subgraph.Build(g)
	return g, ix
}

func TestMinMaxDepth(t *testing.T) {
	require := require.New(t)
	g, ix := buildChain(t)

	dataflow.RunMinDepth(g, ix)
	dataflow.RunMaxDepth(g, ix)

	// root (local 0) has no predecessor: depth 0.
	root := g.Node(0)
	require.NotNil(root.MinDepth)
	require.Equal(uint32(0), *root.MinDepth)

	// leaf is 4 edges downstream of root in this linear chain.
	leaf := g.Node(4)
	require.NotNil(leaf.MaxDepth)
	require.Equal(*leaf.MinDepth, *leaf.MaxDepth, "a linear chain has only one path, so min and max depth coincide")
}

func TestNextInsts(t *testing.T) {
	require := require.New(t)
	g, ix := buildChain(t)

	fwd := dataflow.RunNextInsts(g, ix, dataflow.Forward)

	// mid (raw index 2, between inst1 and inst2) should see inst1 as its
	// nearest instantiation ancestor.
	set, ok := fwd[idx.RawNodeIndex(2)]
	require.True(ok)
	require.Len(set, 1)
}
