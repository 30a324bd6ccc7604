package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"Plenum/internal/standards"
)

var fittingsShape string

var fittingsCmd = &cobra.Command{
	Use:   "fittings",
	Short: "List the available fitting types",
	Long: `List the fitting types in the coefficient table with their default
configurations.

Examples:
  ductcli fittings
  ductcli fittings --shape rectangular
  ductcli fittings --table shop_table.yaml`,
	Run: runFittings,
}

func init() {
	rootCmd.AddCommand(fittingsCmd)

	fittingsCmd.Flags().StringVar(&fittingsShape, "shape", "", "Filter by duct shape: round or rectangular")
}

func runFittings(cmd *cobra.Command, args []string) {
	table, err := loadTable()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	shape := standards.DuctType(fittingsShape)
	if fittingsShape != "" && !standards.ValidDuctType(shape) {
		fmt.Printf("Error: unknown duct shape %q\n", fittingsShape)
		return
	}

	meta := table.Meta()
	fmt.Println()
	fmt.Printf("FITTING TYPES (%s, table version %s)\n", meta.Standard, meta.Version)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Key\tShape\tLabel\tParameter\tDefault")
	for _, info := range table.Available(shape) {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", info.Key, info.Shape, info.Label, info.ParamName, info.Default)
	}
	w.Flush()
	fmt.Println()
}
