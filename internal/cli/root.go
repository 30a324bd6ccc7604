// Package cli defines the ductcli command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"Plenum/internal/calc/fittings"
)

var (
	// tableFile points at a YAML coefficient table override; empty uses
	// the built-in SMACNA/ASHRAE table.
	tableFile string

	rootCmd = &cobra.Command{
		Use:   "ductcli",
		Short: "Duct sizing and fitting pressure loss tool",
		Long: `ductcli - duct sizing and fitting pressure loss calculations

A CLI companion to the Plenum duct design service. It sizes round and
rectangular ducts by the equal friction method and evaluates fitting
pressure losses from K factor tables.

Available calculations:
  - Duct sizing from airflow and target friction rate
  - Single fitting pressure loss
  - Whole fitting system loss from a YAML run file
  - Friction chart rendering to PNG

Velocity and aspect ratio checks follow SMACNA duct construction limits.`,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&tableFile, "table", "", "YAML coefficient table override")
}

// loadTable resolves the coefficient table for the fitting commands.
func loadTable() (*fittings.Table, error) {
	if tableFile == "" {
		return fittings.DefaultTable(), nil
	}
	return fittings.LoadTable(tableFile)
}
