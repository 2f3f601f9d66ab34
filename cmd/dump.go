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
	dumpHost     string
	dumpPort     int
	dumpDB       string
	dumpUser     string
	dumpPassword string
	dumpCatalog  string
	dumpOut      string
)

var dumpCmd = &cobra.Command{
	Use:     "dump",
	Short:   "Connect and persist the raw metadata to a bundle file",
	PreRunE: util.PreRunEWithEnvVarsAndConnection(&dumpDB, &dumpUser, &dumpHost, &dumpPort),
	RunE:    runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&dumpHost, "host", "localhost", "Database server host")
	dumpCmd.Flags().IntVar(&dumpPort, "port", 5432, "Database server port")
	dumpCmd.Flags().StringVar(&dumpDB, "db", "", "Database name (required; or PGDATABASE)")
	dumpCmd.Flags().StringVar(&dumpUser, "user", "", "Database user name (required; or PGUSER)")
	dumpCmd.Flags().StringVar(&dumpPassword, "password", "", "Database password (optional, can also use PGPASSWORD env var)")
	dumpCmd.Flags().StringVar(&dumpCatalog, "catalog", "", "Catalog name recorded on node ids (default: the --db value)")
	dumpCmd.Flags().StringVar(&dumpOut, "out", "bundle.gob", "Output bundle file path")
}

func runDump(cmd *cobra.Command, args []string) error {
	db, err := util.Connect(&util.ConnectionConfig{
		Host:            dumpHost,
		Port:            dumpPort,
		Database:        dumpDB,
		User:            dumpUser,
		Password:        util.GetEnvWithDefault("PGPASSWORD", dumpPassword),
		SSLMode:         "prefer",
		ApplicationName: "schemagraph",
	})
	if err != nil {
		return err
	}
	defer db.Close()

	catalog := dumpCatalog
	if catalog == "" {
		catalog = dumpDB
	}

	store := graph.NewStore()
	if err := store.LoadFromSource(context.Background(), pgsource.New(db), catalog); err != nil {
		return fmt.Errorf("failed to load metadata: %w", err)
	}

	f, err := os.Create(dumpOut)
	if err != nil {
		return fmt.Errorf("failed to create bundle file: %w", err)
	}
	defer f.Close()

	if err := store.DumpBundle(f); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}

	fmt.Printf("wrote %s\n", dumpOut)
	return nil
}
