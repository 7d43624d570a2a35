package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborly/axiomgraph/fixtures"
	"github.com/arborly/axiomgraph/matchloop"
	"github.com/arborly/axiomgraph/rawgraph"
	"github.com/arborly/axiomgraph/visible"
)

func TestLinearChainProducesMatchingLoop(t *testing.T) {
	require := require.New(t)
	m, err := fixtures.BuildModel(fixtures.LinearChain("q", 5))
	require.NoError(err)
	require.Equal(5, m.NumInstantiations())

	g, err := rawgraph.Build(m)
	require.NoError(err)

	results, err := matchloop.SearchMatchingLoops(g, m, visible.MinMatchingLoopLength)
	require.NoError(err)
	require.NotEmpty(results, "a 5-step chain of the same quantifier should register as a matching loop")
}

func TestSelfLoopAloneIsTooShort(t *testing.T) {
	require := require.New(t)
	m, err := fixtures.BuildModel(fixtures.SelfLoop("q"))
	require.NoError(err)

	g, err := rawgraph.Build(m)
	require.NoError(err)

	results, err := matchloop.SearchMatchingLoops(g, m, visible.MinMatchingLoopLength)
	require.NoError(err)
	require.Empty(results, "a single instantiation is shorter than the minimum reportable loop length")
}

func TestInterleavedLoopsBuildsBothQuantifiers(t *testing.T) {
	require := require.New(t)
	m, err := fixtures.BuildModel(fixtures.InterleavedLoops([]string{"q1", "q2"}, 4))
	require.NoError(err)
	require.Equal(8, m.NumInstantiations())
}
