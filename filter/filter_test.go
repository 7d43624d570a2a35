package filter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborly/axiomgraph/filter"
	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/model"
	"github.com/arborly/axiomgraph/rawgraph"
	"github.com/arborly/axiomgraph/subgraph"
)

func buildFourInstModel(t *testing.T) (*model.Model, *rawgraph.Graph, *subgraph.Index) {
	t.Helper()
	m := model.NewModel()
	q := m.AddQuant("q")
	pattern := m.Terms.Mk("p")

	owner := m.AddENode(m.Terms.Mk("seed"), nil)
	for i := 0; i < 4; i++ {
		matchID := m.AddMatch(model.Match{
			Kind:   model.MatchKind{Tag: model.MatchQuantifier, Quant: q, Pattern: pattern},
			Blamed: []model.BlameKind{{Term: owner}},
		})
		instID := m.AddInstantiation(model.Instantiation{Match: matchID})
		owner = m.AddENode(m.Terms.Mk("step"), &instID)
	}

	g, err := rawgraph.Build(m)
	require.NoError(t, err)
	ix := subgraph.Build(g)
	return m, g, ix
}

func TestMaxNodeIdxHidesHigherInstantiations(t *testing.T) {
	require := require.New(t)
	m, g, ix := buildFourInstModel(t)

	eng := filter.NewEngine()
	eng.Push(filter.Filter{Kind: filter.MaxNodeIdx, N: 1})
	_, err := eng.Apply(g, ix, m)
	require.NoError(err)

	var visibleInsts int
	for i := 0; i < g.NumNodes(); i++ {
		n := g.Node(idx.RawNodeIndex(i))
		if n.IsInstantiation() && n.Visible {
			visibleInsts++
		}
	}
	require.Equal(2, visibleInsts, "instantiations 0 and 1 should survive MaxNodeIdx(1)")
}

func TestApplyIsIdempotent(t *testing.T) {
	require := require.New(t)
	m, g, ix := buildFourInstModel(t)

	eng := filter.NewEngine()
	eng.Push(filter.Filter{Kind: filter.IgnoreTheorySolving})
	eng.Push(filter.Filter{Kind: filter.MaxDepth, N: 3})

	_, err := eng.Apply(g, ix, m)
	require.NoError(err)
	snapshot := visibilitySnapshot(g)

	_, err = eng.Apply(g, ix, m)
	require.NoError(err)
	require.Equal(snapshot, visibilitySnapshot(g))
}

func TestPushDeduplicatesByHash(t *testing.T) {
	require := require.New(t)
	eng := filter.NewEngine()
	eng.Push(filter.Filter{Kind: filter.MaxDepth, N: 2})
	eng.Push(filter.Filter{Kind: filter.MaxDepth, N: 2})
	require.Len(eng.Stack(), 1)
}

func TestLongestPathThroughExtendsBothWays(t *testing.T) {
	require := require.New(t)
	_, g, _ := buildFourInstModel(t)

	// buildFourInstModel is a single linear chain of nine raw nodes
	// (seed e-node, then inst/e-node pairs for four instantiations), so the
	// longest path through any interior node spans the whole chain.
	path := filter.LongestPathThrough(g, idx.RawNodeIndex(3))
	want := make([]idx.RawNodeIndex, 9)
	for i := range want {
		want[i] = idx.RawNodeIndex(i)
	}
	require.Equal(want, path)
}

func visibilitySnapshot(g *rawgraph.Graph) map[idx.RawNodeIndex]bool {
	out := make(map[idx.RawNodeIndex]bool, g.NumNodes())
	for i := 0; i < g.NumNodes(); i++ {
		v := idx.RawNodeIndex(i)
		out[v] = g.Node(v).Visible
	}
	return out
}
