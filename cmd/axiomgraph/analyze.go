package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/arborly/axiomgraph/analysis"
	"github.com/arborly/axiomgraph/filter"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <log> [log...]",
	Short: "Load one or more trace logs and report their filtered graph size",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	var fs []filter.Filter
	for _, cf := range cfg.Filters {
		f, ok := cf.toFilter()
		if !ok {
			logger.Warn().Str("kind", cf.Kind).Msg("skipping unknown filter kind in config")
			continue
		}
		fs = append(fs, f)
	}

	// Each log file owns its own Session and Model; no state is shared
	// across goroutines, so loading several independent files concurrently
	// is safe even though a single Session is never touched by more than
	// one goroutine at a time.
	var g errgroup.Group
	reports := make([]string, len(args))
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			report, err := analyzeOne(path, fs)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range reports {
		fmt.Println(r)
	}
	return nil
}

func analyzeOne(path string, fs []filter.Filter) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	s := analysis.New(logger.With().Str("file", path).Logger())
	if err := s.Load(f); err != nil {
		return "", err
	}
	if _, err := s.ApplyFilters(fs...); err != nil {
		return "", err
	}
	vg, err := s.VisibleGraph()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %d visible nodes, %d visible edges", path, len(vg.Nodes()), len(vg.Edges())), nil
}
