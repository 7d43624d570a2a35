package gonumexport_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborly/axiomgraph/gonumexport"
	"github.com/arborly/axiomgraph/logparser"
	"github.com/arborly/axiomgraph/rawgraph"
	"github.com/arborly/axiomgraph/visible"
)

const tinyLog = `
mk-app a f
attach-enode e0 a
mk-quant q1 forall-x
mk-app p x
new-match fp1 q1 p e0
instance fp1
mk-app b g
attach-enode e1 b
end-of-instance
`

func TestVisibleGraphExport(t *testing.T) {
	require := require.New(t)
	m, res, err := logparser.Load(strings.NewReader(tinyLog))
	require.NoError(err)
	require.Empty(res.Errors)

	g, err := rawgraph.Build(m)
	require.NoError(err)

	vg := visible.Build(g)
	exported := gonumexport.VisibleGraph(vg)
	require.Equal(len(vg.Nodes()), exported.Nodes().Len())
}
