// Package cli implements the docrank command-line interface using cobra.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docrank-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docrank-cli/internal/core/ports/driven"
	"github.com/custodia-labs/docrank-cli/internal/core/ports/driving"
	"github.com/custodia-labs/docrank-cli/internal/core/services"
	"github.com/custodia-labs/docrank-cli/internal/logger"
	"github.com/custodia-labs/docrank-cli/internal/parsers"
)

// version is the CLI version, overridable at build time via ldflags.
var version = "0.1.0"

// Services used by the commands. Wired by Execute; tests swap in mocks.
var (
	analysisService driving.AnalysisService
	parserRegistry  driven.ParserRegistry
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "docrank",
	Short: "Rank document fragments by relevance to a persona and task",
	Long: `Docrank scores and ranks sections of free-form documents by how
relevant they are to a stated reader profile (persona) and task
(job-to-be-done), using lexical similarity, weighted keyword match
and content-shape signals.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute wires the default dependencies and runs the root command.
func Execute() error {
	if analysisService == nil {
		store, err := file.NewConfigStore("")
		if err != nil {
			return fmt.Errorf("open config: %w", err)
		}
		cfg, err := store.AnalysisConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		svc, err := services.NewAnalysisService(cfg)
		if err != nil {
			return err
		}
		analysisService = svc
	}
	if parserRegistry == nil {
		parserRegistry = parsers.NewRegistry()
	}

	return rootCmd.Execute()
}
