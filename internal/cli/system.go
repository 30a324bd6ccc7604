package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"Plenum/internal/calc/fittings"
)

var (
	systemFilePath string
	systemAirflow  float64
)

// systemFile is the YAML shape of a duct run description.
type systemFile struct {
	Airflow  float64           `yaml:"airflow"`
	Fittings []fittings.Config `yaml:"fittings"`
}

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Total pressure loss of a fitting run from a YAML file",
	Long: `Calculate the total fitting pressure loss of a duct run described
in a YAML file.

File format:
  airflow: 1000
  fittings:
    - type: 90deg_round_smooth
      diameter_in: 14
      parameter: "1.5"
    - type: tee_round_branch
      diameter_in: 12

Examples:
  ductcli system --file run.yaml
  ductcli system --file run.yaml --airflow 1200`,
	Run: runSystem,
}

func init() {
	rootCmd.AddCommand(systemCmd)

	systemCmd.Flags().StringVar(&systemFilePath, "file", "", "YAML duct run file [required]")
	systemCmd.Flags().Float64Var(&systemAirflow, "airflow", 0, "Override the file's airflow (CFM)")

	systemCmd.MarkFlagRequired("file")
}

func runSystem(cmd *cobra.Command, args []string) {
	raw, err := os.ReadFile(systemFilePath)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	var run systemFile
	if err := yaml.Unmarshal(raw, &run); err != nil {
		fmt.Printf("Error: invalid run file: %v\n", err)
		return
	}
	airflow := run.Airflow
	if systemAirflow > 0 {
		airflow = systemAirflow
	}

	table, err := loadTable()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	calc := fittings.NewCalculator(table)

	sys, err := calc.SystemLoss(run.Fittings, airflow)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Printf("SYSTEM PRESSURE LOSS at %.0f CFM\n", airflow)
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Fitting\tConfiguration\tK\tLoss (in wg)")
	for _, fr := range sys.Fittings {
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.4f\n", fr.FittingType, fr.Configuration, fr.KFactor, fr.PressureLoss)
	}
	w.Flush()
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Printf("  Total: %.4f in wg\n", sys.TotalPressureLoss)

	for _, fr := range sys.Fittings {
		for _, warn := range fr.Warnings {
			fmt.Printf("  ⚠ %s: %s\n", fr.FittingType, warn)
		}
	}
	fmt.Println()
}
