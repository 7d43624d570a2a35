package logparser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborly/axiomgraph/logparser"
)

const sampleLog = `
mk-quant q1 forall-x
mk-var v1 x
mk-app a1 f v1
attach-enode e1 a1
new-match fp1 q1 a1 e1
instance fp1 0
mk-app a2 g v1
attach-enode e2 a2
end-of-instance
garbled-record foo bar
`

func TestLoadBuildsModel(t *testing.T) {
	require := require.New(t)
	m, res, err := logparser.Load(strings.NewReader(sampleLog))
	require.NoError(err)
	require.Equal(1, m.NumInstantiations())

	require.Len(res.Errors, 1)
	require.ErrorIs(res.Errors[0].Err, logparser.ErrUnknownHeader)

	inst, err := m.Instantiation(0)
	require.NoError(err)
	require.Len(inst.YieldsTerms, 1, "the e-node attached inside the instance block should be attributed to it")
}

func TestLoadSkipsMalformedRecordsWithoutAborting(t *testing.T) {
	require := require.New(t)
	log := "mk-quant only-one-field\nmk-var v1 x\n"
	m, res, err := logparser.Load(strings.NewReader(log))
	require.NoError(err)
	require.Len(res.Errors, 1)
	require.ErrorIs(res.Errors[0].Err, logparser.ErrMalformedRecord)
	require.NotNil(m)
}

func TestNewMatchUnknownQuantifierIsNonFatal(t *testing.T) {
	require := require.New(t)
	log := "mk-app a1 c\nattach-enode e1 a1\nnew-match fp1 ghost-quant a1 e1\n"
	_, res, err := logparser.Load(strings.NewReader(log))
	require.NoError(err)
	require.NotEmpty(res.Errors)
	require.ErrorIs(res.Errors[0].Err, logparser.ErrUnknownReference)
}
