package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/schemagraph/schemagraph/cmd/util"
	"github.com/schemagraph/schemagraph/graph"
	"github.com/schemagraph/schemagraph/internal/pgsource"
	"github.com/spf13/cobra"
)

var (
	submodelsBundle   string
	submodelsCatalog  string
	submodelsHost     string
	submodelsPort     int
	submodelsDB       string
	submodelsUser     string
	submodelsPassword string
)

var submodelsCmd = &cobra.Command{
	Use:   "submodels",
	Short: "List the strongly connected sub-models of a bundle or database",
	RunE:  runSubmodels,
}

func init() {
	submodelsCmd.Flags().StringVar(&submodelsBundle, "bundle", "", "Bundle file to load instead of connecting live")
	submodelsCmd.Flags().StringVar(&submodelsCatalog, "catalog", "", "Catalog name recorded on node ids")
	submodelsCmd.Flags().StringVar(&submodelsHost, "host", "localhost", "Database server host")
	submodelsCmd.Flags().IntVar(&submodelsPort, "port", 5432, "Database server port")
	submodelsCmd.Flags().StringVar(&submodelsDB, "db", "", "Database name")
	submodelsCmd.Flags().StringVar(&submodelsUser, "user", "", "Database user name")
	submodelsCmd.Flags().StringVar(&submodelsPassword, "password", "", "Database password")
}

func runSubmodels(cmd *cobra.Command, args []string) error {
	store := graph.NewStore()
	catalog := submodelsCatalog

	if submodelsBundle != "" {
		f, err := os.Open(submodelsBundle)
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
		if submodelsDB == "" || submodelsUser == "" {
			return fmt.Errorf("either --bundle, or both --db and --user, are required")
		}
		db, err := util.Connect(&util.ConnectionConfig{
			Host:            submodelsHost,
			Port:            submodelsPort,
			Database:        submodelsDB,
			User:            submodelsUser,
			Password:        util.GetEnvWithDefault("PGPASSWORD", submodelsPassword),
			SSLMode:         "prefer",
			ApplicationName: "schemagraph",
		})
		if err != nil {
			return err
		}
		defer db.Close()
		if catalog == "" {
			catalog = submodelsDB
		}
		if err := store.LoadFromSource(context.Background(), pgsource.New(db), catalog); err != nil {
			return fmt.Errorf("failed to load metadata: %w", err)
		}
	}

	g, _, err := graph.Build(store, true)
	if err != nil {
		return err
	}

	submodels := graph.ExtractSubmodels(g)
	if len(submodels) == 0 {
		fmt.Println("no strongly connected sub-models found")
		return nil
	}
	for i, sm := range submodels {
		fmt.Printf("submodel %d: %d tables\n", i+1, len(sm.Tables))
		for _, t := range sm.Tables {
			fmt.Printf("  %s\n", t)
		}
	}
	return nil
}
