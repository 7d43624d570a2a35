package visible_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/model"
	"github.com/arborly/axiomgraph/rawgraph"
	"github.com/arborly/axiomgraph/visible"
)

// buildThreeChain builds three e-nodes root -> mid -> leaf, with mid and leaf
// each produced by its own instantiation, giving five raw nodes in a single
// linear chain.
func buildThreeChain(t *testing.T) *rawgraph.Graph {
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
	return g
}

func TestBuildContractsHiddenChain(t *testing.T) {
	require := require.New(t)
	g := buildThreeChain(t)

	// Hide everything except the root e-node (index 0) and the final
	// e-node (index 4); nodes 1-3 (inst1, mid, inst2) become hidden.
	for i := 0; i < g.NumNodes(); i++ {
		g.Node(idx.RawNodeIndex(i)).Visible = (i == 0 || i == 4)
	}

	vg := visible.Build(g)
	require.Len(vg.Nodes(), 2)

	out := vg.OutNeighbors(idx.RawNodeIndex(0))
	require.Len(out, 1)
	require.Equal(idx.RawNodeIndex(4), out[0])

	kind, ok := vg.EdgeBetween(idx.RawNodeIndex(0), idx.RawNodeIndex(4))
	require.True(ok)
	require.False(kind.IsDirect())
	require.Len(kind.Through, 3, "three hidden nodes sit on the contracted path")
}

func TestBuildAllVisibleKeepsDirectEdges(t *testing.T) {
	require := require.New(t)
	g := buildThreeChain(t)

	vg := visible.Build(g)
	require.Len(vg.Nodes(), g.NumNodes())
	for _, e := range vg.Edges() {
		require.True(e.Kind.IsDirect())
	}
}
