package matchloop_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/matchloop"
	"github.com/arborly/axiomgraph/model"
	"github.com/arborly/axiomgraph/rawgraph"
	"github.com/arborly/axiomgraph/visible"
)

// chainOfFour builds four instantiations of the same quantifier/pattern,
// each blamed on the e-node the previous one yielded — a textbook matching
// loop of length three (four instantiations, three intervening edges).
func chainOfFour(t *testing.T) *model.Model {
	t.Helper()
	m := model.NewModel()
	q := m.AddQuant("self-loop")
	pattern := m.Terms.Mk("f", m.Terms.Mk("x"))

	owner := m.AddENode(m.Terms.Mk("seed"), nil)
	for i := 0; i < 4; i++ {
		matchID := m.AddMatch(model.Match{
			Kind:   model.MatchKind{Tag: model.MatchQuantifier, Quant: q, Pattern: pattern},
			Blamed: []model.BlameKind{{Term: owner}},
		})
		instID := m.AddInstantiation(model.Instantiation{Match: matchID})
		owner = m.AddENode(m.Terms.Mk("step"), &instID)
	}
	return m
}

func TestSearchMatchingLoopsFindsLinearChain(t *testing.T) {
	require := require.New(t)

	m := chainOfFour(t)
	g, err := rawgraph.Build(m)
	require.NoError(err)

	results, err := matchloop.SearchMatchingLoops(g, m, visible.MinMatchingLoopLength)
	require.NoError(err)
	require.NotEmpty(results, "a four-instantiation self-loop chain should surface at least one loop")

	graph, ok := matchloop.NthMatchingLoop(results, 0)
	require.True(ok)
	require.NotEmpty(graph.Nodes, "the abstract graph should contain at least one QI node")

	_, ok = matchloop.NthMatchingLoop(results, len(results))
	require.False(ok, "asking for loop K should report out of range")
}

func TestSearchMatchingLoopsRestoresDisabledSet(t *testing.T) {
	require := require.New(t)

	m := chainOfFour(t)
	g, err := rawgraph.Build(m)
	require.NoError(err)

	g.Node(idx.RawNodeIndex(0)).Disabled = true
	before := g.DisabledSet()

	_, err = matchloop.SearchMatchingLoops(g, m, visible.MinMatchingLoopLength)
	require.NoError(err)

	after := g.DisabledSet()
	require.Equal(before, after)
}
