package subgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/model"
	"github.com/arborly/axiomgraph/rawgraph"
	"github.com/arborly/axiomgraph/subgraph"
)

// chainModel builds a -> inst -> b -> inst2 -> c, a linear causal chain.
func chainModel(t *testing.T) *model.Model {
	t.Helper()
	m := model.NewModel()
	a := m.AddENode(m.Terms.Mk("a"), nil)

	q := m.AddQuant("q")
	pattern := m.Terms.Mk("p")
	match1 := m.AddMatch(model.Match{
		Kind:   model.MatchKind{Tag: model.MatchQuantifier, Quant: q, Pattern: pattern},
		Blamed: []model.BlameKind{{Term: a}},
	})
	inst1 := m.AddInstantiation(model.Instantiation{Match: match1})
	b := m.AddENode(m.Terms.Mk("b"), &inst1)

	match2 := m.AddMatch(model.Match{
		Kind:   model.MatchKind{Tag: model.MatchQuantifier, Quant: q, Pattern: pattern},
		Blamed: []model.BlameKind{{Term: b}},
	})
	inst2 := m.AddInstantiation(model.Instantiation{Match: match2})
	m.AddENode(m.Terms.Mk("c"), &inst2)

	return m
}

func TestBuildLinearChain(t *testing.T) {
	require := require.New(t)

	m := chainModel(t)
	g, err := rawgraph.Build(m)
	require.NoError(err)

	ix := subgraph.Build(g)
	require.Len(ix.Subgraphs(), 1, "a single causal chain is one component")

	sg := ix.Subgraphs()[0]
	require.Len(sg.Nodes, 5)

	first, last := sg.Nodes[0], sg.Nodes[len(sg.Nodes)-1]
	inClosure, err := ix.InClosure(first, last)
	require.NoError(err)
	require.True(inClosure, "root must reach the final node in a linear chain")

	reachable, err := ix.ReachableFrom(last)
	require.NoError(err)
	require.Len(reachable, 1, "the last node only reaches itself")
}

func TestDisjointComponents(t *testing.T) {
	require := require.New(t)

	m := model.NewModel()
	m.AddENode(m.Terms.Mk("x"), nil)
	m.AddENode(m.Terms.Mk("y"), nil)

	g, err := rawgraph.Build(m)
	require.NoError(err)

	ix := subgraph.Build(g)
	require.Len(ix.Subgraphs(), 2)

	inClosure, err := ix.InClosure(idx.RawNodeIndex(0), idx.RawNodeIndex(1))
	require.NoError(err)
	require.False(inClosure)
}
