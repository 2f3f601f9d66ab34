package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schemagraph/schemagraph/internal/logger"
	"github.com/schemagraph/schemagraph/internal/version"
	"github.com/spf13/cobra"
)

// Debug enables verbose logging across every subcommand.
var Debug bool

var RootCmd = &cobra.Command{
	Use:   "schemagraph",
	Short: "Relational schema graph analyzer",
	Long: fmt.Sprintf(`schemagraph builds a typed graph from a database's relational
metadata, extracts its strongly connected sub-models, and scores columns
as fact (measure) or dimension (identifying) candidates.

Version: %s@%s %s %s

Commands:
  analyze    Connect, build the graph, score it, and print ranked columns
  dump       Connect and persist the raw metadata to a bundle file
  score      Score a previously dumped bundle, no live connection required
  submodels  List the strongly connected sub-models of a bundle or database
  describe   Print every node of one kind as a tab-separated table

Use "schemagraph [command] --help" for more information about a command.`,
		version.App(), version.GitCommit, version.Platform(), version.BuildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "Enable debug logging")
	RootCmd.AddCommand(analyzeCmd)
	RootCmd.AddCommand(dumpCmd)
	RootCmd.AddCommand(scoreCmd)
	RootCmd.AddCommand(submodelsCmd)
	RootCmd.AddCommand(describeCmd)
	RootCmd.AddCommand(VersionCmd)
}

func setupLogger() {
	level := slog.LevelInfo
	if Debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger.SetGlobal(slog.New(handler), Debug)
}

// Execute runs the root command, printing any error to stderr and
// exiting non-zero rather than letting cobra print its own usage block.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
