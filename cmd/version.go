package cmd

import (
	"fmt"

	"github.com/schemagraph/schemagraph/internal/version"
	"github.com/spf13/cobra"
)

// VersionCmd prints the binary's release version and build identifiers.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  "Display the version number of schemagraph",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("schemagraph v%s@%s %s %s\n",
			version.App(), version.GitCommit, version.Platform(), version.BuildDate)
	},
}
