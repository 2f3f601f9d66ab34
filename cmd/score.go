package cmd

import (
	"fmt"
	"os"

	"github.com/schemagraph/schemagraph/graph"
	"github.com/schemagraph/schemagraph/scoring"
	"github.com/spf13/cobra"
)

var (
	scoreBundle  string
	scoreCatalog string
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a previously dumped bundle, no live connection required",
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().StringVar(&scoreBundle, "bundle", "", "Bundle file to load (required)")
	scoreCmd.Flags().StringVar(&scoreCatalog, "catalog", "bundle", "Catalog name recorded on node ids")
	scoreCmd.MarkFlagRequired("bundle")
}

func runScore(cmd *cobra.Command, args []string) error {
	f, err := os.Open(scoreBundle)
	if err != nil {
		return fmt.Errorf("failed to open bundle file: %w", err)
	}
	defer f.Close()

	store := graph.NewStore()
	if err := store.LoadBundle(scoreCatalog, f); err != nil {
		return fmt.Errorf("failed to load bundle: %w", err)
	}

	g, placeholders, err := graph.Build(store, true)
	if err != nil {
		return err
	}
	for _, p := range placeholders {
		fmt.Fprintf(os.Stderr, "warning: synthesized placeholder type %q for %q\n", p.TypeName, p.ID)
	}

	result, err := scoring.AddFactAndDimScores(g)
	if err != nil {
		return err
	}

	printRanked(g, result)
	return nil
}
