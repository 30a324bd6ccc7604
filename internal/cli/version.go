package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"Plenum/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ductcli",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ductcli v%s\n", version.Version)
		fmt.Printf("commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
