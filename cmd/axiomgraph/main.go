package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logger     zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "axiomgraph",
	Short: "Build and query matching-loop graphs from solver instantiation traces",
}

func main() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "axiomgraph.yaml", "path to a YAML config file")
	rootCmd.AddCommand(analyzeCmd, loopsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
