package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/schemagraph/schemagraph/cmd/util"
	"github.com/schemagraph/schemagraph/graph"
	"github.com/schemagraph/schemagraph/internal/pgsource"
	"github.com/schemagraph/schemagraph/scoring"
	"github.com/spf13/cobra"
)

var (
	analyzeHost     string
	analyzePort     int
	analyzeDB       string
	analyzeUser     string
	analyzePassword string
	analyzeCatalog  string
)

var analyzeCmd = &cobra.Command{
	Use:     "analyze",
	Short:   "Connect, build the graph, score it, and print ranked columns",
	PreRunE: util.PreRunEWithEnvVarsAndConnection(&analyzeDB, &analyzeUser, &analyzeHost, &analyzePort),
	RunE:    runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeHost, "host", "localhost", "Database server host")
	analyzeCmd.Flags().IntVar(&analyzePort, "port", 5432, "Database server port")
	analyzeCmd.Flags().StringVar(&analyzeDB, "db", "", "Database name (required; or PGDATABASE)")
	analyzeCmd.Flags().StringVar(&analyzeUser, "user", "", "Database user name (required; or PGUSER)")
	analyzeCmd.Flags().StringVar(&analyzePassword, "password", "", "Database password (optional, can also use PGPASSWORD env var)")
	analyzeCmd.Flags().StringVar(&analyzeCatalog, "catalog", "", "Catalog name recorded on node ids (default: the --db value)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	db, err := util.Connect(&util.ConnectionConfig{
		Host:            analyzeHost,
		Port:            analyzePort,
		Database:        analyzeDB,
		User:            analyzeUser,
		Password:        util.GetEnvWithDefault("PGPASSWORD", analyzePassword),
		SSLMode:         "prefer",
		ApplicationName: "schemagraph",
	})
	if err != nil {
		return err
	}
	defer db.Close()

	catalog := analyzeCatalog
	if catalog == "" {
		catalog = analyzeDB
	}

	store := graph.NewStore()
	if err := store.LoadFromSource(context.Background(), pgsource.New(db), catalog); err != nil {
		return fmt.Errorf("failed to load metadata: %w", err)
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

// printRanked prints every non-disqualified column in descending
// fact-score order, one per line.
func printRanked(g *graph.Graph, result *scoring.Result) {
	cols := g.NodesByKind(graph.KindColumn)
	sort.Slice(cols, func(i, j int) bool {
		return result.Fact.Total(cols[i]) > result.Fact.Total(cols[j])
	})
	for _, id := range cols {
		if result.Fact.Disqualified(id) {
			continue
		}
		fmt.Printf("%6d  %s\n", result.Fact.Total(id), id)
	}
}
