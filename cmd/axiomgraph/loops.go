package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arborly/axiomgraph/analysis"
	"github.com/arborly/axiomgraph/matchloop"
)

var loopsCmd = &cobra.Command{
	Use:   "loops <log>",
	Short: "Search a trace log for matching loops and print their generalised terms",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoops,
}

func runLoops(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s := analysis.New(logger.With().Str("file", path).Logger())
	s.SetMinMatchingLoopLength(cfg.MinMatchingLoopLength)
	if err := s.Load(f); err != nil {
		return err
	}

	results, err := s.SearchMatchingLoops()
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("no matching loops found")
		return nil
	}

	m := s.Model()
	for i, r := range results {
		fmt.Printf("loop %d (endpoint raw node %d):\n", i, r.Endpoint)
		for _, node := range r.Graph.Nodes {
			switch node.Variant {
			case matchloop.NodeENode:
				fmt.Printf("  enode: %s\n", m.Terms.String(node.Term))
			case matchloop.NodeEquality:
				fmt.Printf("  equality: %s = %s\n", m.Terms.String(node.From), m.Terms.String(node.To))
			default:
				fmt.Printf("  quantifier instantiation: %s\n", m.QuantName(node.QI.Quant))
			}
		}
	}
	return nil
}
