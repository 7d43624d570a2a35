package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborly/axiomgraph/filter"
)

func TestLoadConfigFallsBackWhenMissing(t *testing.T) {
	require := require.New(t)
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(err)
	require.Equal(defaultConfig, cfg)
}

func TestLoadConfigParsesFilters(t *testing.T) {
	require := require.New(t)
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(os.WriteFile(path, []byte(`
min_matching_loop_length: 4
default_node_count: 500
filters:
  - kind: max_depth
    n: 10
  - kind: ignore_theory_solving
`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(err)
	require.Equal(4, cfg.MinMatchingLoopLength)
	require.Equal(500, cfg.DefaultNodeCount)
	require.Len(cfg.Filters, 2)

	f, ok := cfg.Filters[0].toFilter()
	require.True(ok)
	require.Equal(filter.MaxDepth, f.Kind)
	require.Equal(10, f.N)
}

func TestConfigFilterUnknownKindRejected(t *testing.T) {
	require := require.New(t)
	_, ok := ConfigFilter{Kind: "not-a-real-filter"}.toFilter()
	require.False(ok)
}
