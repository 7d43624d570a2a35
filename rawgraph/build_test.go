package rawgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arborly/axiomgraph/idx"
	"github.com/arborly/axiomgraph/model"
	"github.com/arborly/axiomgraph/rawgraph"
)

type BuildSuite struct {
	suite.Suite
	m *model.Model
}

func (s *BuildSuite) SetupTest() {
	s.m = model.NewModel()
}

// addInst is a small helper mirroring how a parser would append one
// instantiation: a quantifier-driven match blaming a single e-node, yielding
// one fresh e-node.
func (s *BuildSuite) addInst(q idx.QuantIdx, pattern idx.TermIdx, blameOn idx.ENodeIdx, yields string) idx.InstIdx {
	match := model.Match{
		Kind: model.MatchKind{
			Tag:     model.MatchQuantifier,
			Quant:   q,
			Pattern: pattern,
		},
		Blamed: []model.BlameKind{{Term: blameOn}},
	}
	matchID := s.m.AddMatch(match)
	instID := s.m.AddInstantiation(model.Instantiation{Match: matchID})

	term := s.m.Terms.Mk(yields)
	created := instID
	s.m.AddENode(term, &created)
	return instID
}

func (s *BuildSuite) TestLinearChain() {
	require := require.New(s.T())

	q := s.m.AddQuant("forall-x")
	pattern := s.m.Terms.Mk("f", s.m.Terms.Mk("x"))
	root := s.m.AddENode(s.m.Terms.Mk("a"), nil)

	inst := s.addInst(q, pattern, root, "b")

	g, err := rawgraph.Build(s.m)
	require.NoError(err)
	require.Equal(3, g.NumNodes()) // root enode, instantiation, yielded enode

	rootRaw, ok := g.RawOfENode(root)
	require.True(ok)
	instRaw, ok := g.RawOfInst(inst)
	require.True(ok)

	out := g.OutNeighbors(rootRaw)
	require.Contains(out, instRaw)

	outInst := g.OutNeighbors(instRaw)
	require.Len(outInst, 1, "instantiation should yield exactly one e-node")
}

func (s *BuildSuite) TestMissingBlameIsFatal() {
	require := require.New(s.T())

	q := s.m.AddQuant("forall-x")
	pattern := s.m.Terms.Mk("p")
	// Reference an e-node index that was never added.
	phantom := idx.ENodeIdx(99)

	matchID := s.m.AddMatch(model.Match{
		Kind:   model.MatchKind{Tag: model.MatchQuantifier, Quant: q, Pattern: pattern},
		Blamed: []model.BlameKind{{Term: phantom}},
	})
	s.m.AddInstantiation(model.Instantiation{Match: matchID})

	_, err := rawgraph.Build(s.m)
	require.ErrorIs(err, rawgraph.ErrMissingBlame)
}

func (s *BuildSuite) TestTransitiveEqualityComposition() {
	require := require.New(s.T())

	a := s.m.AddENode(s.m.Terms.Mk("a"), nil)
	b := s.m.AddENode(s.m.Terms.Mk("b"), nil)
	c := s.m.AddENode(s.m.Terms.Mk("c"), nil)

	ab := s.m.AddEquality(model.Equality{Kind: model.EqLiteral, From: a, To: b})
	bc := s.m.AddEquality(model.Equality{Kind: model.EqLiteral, From: b, To: c})
	ac := s.m.AddEquality(model.Equality{Kind: model.EqTransitive, From: a, To: c, Chain: []idx.EqTransIdx{ab, bc}})

	g, err := rawgraph.Build(s.m)
	require.NoError(err)

	abRaw, _ := g.RawOfEquality(ab)
	bcRaw, _ := g.RawOfEquality(bc)
	acRaw, _ := g.RawOfEquality(ac)

	require.Contains(g.OutNeighbors(abRaw), acRaw)
	require.Contains(g.OutNeighbors(bcRaw), acRaw)
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}
