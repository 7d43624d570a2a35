package main

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arborly/axiomgraph/filter"
)

// Config is the YAML-driven configuration a run loads before touching any
// log file: the minimum reportable matching-loop length (used by loops), a
// default node count, and an optional filter stack (applied by analyze).
// DefaultNodeCount is parsed and stored, but no command reads it, so it caps
// nothing.
type Config struct {
	MinMatchingLoopLength int            `yaml:"min_matching_loop_length"`
	DefaultNodeCount      int            `yaml:"default_node_count"`
	Filters               []ConfigFilter `yaml:"filters"`
}

// ConfigFilter is the YAML shape of one filter.Filter entry. Kind is the
// catalogue name (e.g. "max_depth", "ignore_theory_solving"); the other
// fields are populated only where the kind needs them.
type ConfigFilter struct {
	Kind  string `yaml:"kind"`
	N     int    `yaml:"n"`
	Quant int    `yaml:"quant"`
	Node  int    `yaml:"node"`
	Keep  bool   `yaml:"keep"`
	Name  string `yaml:"name"`
}

var defaultConfig = Config{
	MinMatchingLoopLength: 3,
	DefaultNodeCount:      1000,
}

// loadConfig reads path if it exists, falling back to defaultConfig
// unchanged when it doesn't: a config file here is a convenience, not a
// hard requirement.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

var filterKindByName = map[string]filter.Kind{
	"max_node_idx":                filter.MaxNodeIdx,
	"ignore_theory_solving":       filter.IgnoreTheorySolving,
	"ignore_quantifier":           filter.IgnoreQuantifier,
	"ignore_all_but_quantifier":   filter.IgnoreAllButQuantifier,
	"max_insts":                   filter.MaxInsts,
	"max_branching":               filter.MaxBranching,
	"show_neighbours":             filter.ShowNeighbours,
	"visit_source_tree":           filter.VisitSourceTree,
	"visit_subtree_with_root":     filter.VisitSubTreeWithRoot,
	"max_depth":                   filter.MaxDepth,
	"show_longest_path":           filter.ShowLongestPath,
	"show_named_quantifier":       filter.ShowNamedQuantifier,
	"select_nth_matching_loop":    filter.SelectNthMatchingLoop,
	"show_matching_loop_subgraph": filter.ShowMatchingLoopSubgraph,
}

func (c ConfigFilter) toFilter() (filter.Filter, bool) {
	kind, ok := filterKindByName[c.Kind]
	if !ok {
		return filter.Filter{}, false
	}
	return filter.Filter{
		Kind:  kind,
		N:     c.N,
		Quant: idxQuant(c.Quant),
		Node:  idxNode(c.Node),
		Keep:  c.Keep,
		Name:  c.Name,
	}, true
}
