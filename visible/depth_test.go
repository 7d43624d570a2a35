package visible_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/model"
	"github.com/arborly/axiomgraph/rawgraph"
	"github.com/arborly/axiomgraph/visible"
)

// selfLoopOfThree builds the minimal matching-loop shape: three
// instantiations i1, i2, i3 of the same quantifier, each blaming the e-node
// the previous one yielded. Its longest path has exactly three nodes (two
// edges), the shortest chain that should still register as a candidate.
func selfLoopOfThree(t *testing.T) *rawgraph.Graph {
	t.Helper()
	m := model.NewModel()
	q := m.AddQuant("q")
	pattern := m.Terms.Mk("p")

	owner := m.AddENode(m.Terms.Mk("seed"), nil)
	for i := 0; i < 3; i++ {
		matchID := m.AddMatch(model.Match{
			Kind:   model.MatchKind{Tag: model.MatchQuantifier, Quant: q, Pattern: pattern},
			Blamed: []model.BlameKind{{Term: owner}},
		})
		instID := m.AddInstantiation(model.Instantiation{Match: matchID})
		owner = m.AddENode(m.Terms.Mk("step"), &instID)
	}

	g, err := rawgraph.Build(m)
	require.NoError(t, err)
	return g
}

func TestFindEndNodesOfLongestPathsAcceptsThreeInstantiationLoop(t *testing.T) {
	require := require.New(t)
	g := selfLoopOfThree(t)

	// Keep only the three instantiations visible, so the contracted graph is
	// the chain i1 -> i2 -> i3.
	g.SetVisibilityWhen(false, func(_ idx.RawNodeIndex, n *rawgraph.Node) bool {
		return !n.IsInstantiation()
	})

	vg := visible.Build(g)
	ends := visible.FindEndNodesOfLongestPaths(vg, visible.MinMatchingLoopLength)
	require.Len(ends, 1, "a three-instantiation self-loop is exactly the shortest qualifying chain")
}
