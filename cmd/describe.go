package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/schemagraph/schemagraph/cmd/util"
	"github.com/schemagraph/schemagraph/graph"
	"github.com/schemagraph/schemagraph/internal/dataframe"
	"github.com/schemagraph/schemagraph/internal/pgsource"
	"github.com/spf13/cobra"
)

var (
	describeBundle   string
	describeCatalog  string
	describeHost     string
	describePort     int
	describeDB       string
	describeUser     string
	describePassword string
	describeKind     string
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print every node of one kind as a tab-separated table",
	RunE:  runDescribe,
}

func init() {
	describeCmd.Flags().StringVar(&describeBundle, "bundle", "", "Bundle file to load instead of connecting live")
	describeCmd.Flags().StringVar(&describeCatalog, "catalog", "", "Catalog name recorded on node ids")
	describeCmd.Flags().StringVar(&describeHost, "host", "localhost", "Database server host")
	describeCmd.Flags().IntVar(&describePort, "port", 5432, "Database server port")
	describeCmd.Flags().StringVar(&describeDB, "db", "", "Database name")
	describeCmd.Flags().StringVar(&describeUser, "user", "", "Database user name")
	describeCmd.Flags().StringVar(&describePassword, "password", "", "Database password")
	describeCmd.Flags().StringVar(&describeKind, "kind", "table", "Node kind to describe: schema, table, column, pk, fk, index, type")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	store := graph.NewStore()
	catalog := describeCatalog

	if describeBundle != "" {
		f, err := os.Open(describeBundle)
		if err != nil {
			return fmt.Errorf("failed to open bundle file: %w", err)
		}
		defer f.Close()
		if catalog == "" {
			catalog = "bundle"
		}
		if err := store.LoadBundle(catalog, f); err != nil {
			return fmt.Errorf("failed to load bundle: %w", err)
		}
	} else {
		if describeDB == "" || describeUser == "" {
			return fmt.Errorf("either --bundle, or both --db and --user, are required")
		}
		db, err := util.Connect(&util.ConnectionConfig{
			Host:            describeHost,
			Port:            describePort,
			Database:        describeDB,
			User:            describeUser,
			Password:        util.GetEnvWithDefault("PGPASSWORD", describePassword),
			SSLMode:         "prefer",
			ApplicationName: "schemagraph",
		})
		if err != nil {
			return err
		}
		defer db.Close()
		if catalog == "" {
			catalog = describeDB
		}
		if err := store.LoadFromSource(context.Background(), pgsource.New(db), catalog); err != nil {
			return fmt.Errorf("failed to load metadata: %w", err)
		}
	}

	g, _, err := graph.Build(store, true)
	if err != nil {
		return err
	}

	frame := g.Frame(graph.NodeKind(describeKind))
	printFrame(os.Stdout, frame)
	return nil
}

// printFrame renders any dataframe.Frame as a tab-aligned table, one row
// of output per row of input plus a header line of column names.
func printFrame(out *os.File, frame dataframe.Frame) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	cols := frame.Columns()
	for i, c := range cols {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, c)
	}
	fmt.Fprintln(tw)

	for {
		row, ok := frame.Next()
		if !ok {
			return
		}
		for i, c := range cols {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, row[c])
		}
		fmt.Fprintln(tw)
	}
}
