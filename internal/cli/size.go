package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"Plenum/internal/calc/sizing"
	"Plenum/internal/standards"
)

var (
	sizeAirflow   float64
	sizeFriction  float64
	sizeDuctType  string
	sizeClass     string
	sizeMaterial  string
	sizeMaxHeight float64
	sizeMaxWidth  float64
	sizeStandard  string
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Size a duct for an airflow at a target friction rate",
	Long: `Size a round or rectangular duct by the equal friction method.

The size comes from the standard catalog (round) or a whole-inch search
(rectangular), then velocity and aspect ratio are checked against the
selected standard's limits.

Examples:
  # Round supply duct for 1000 CFM at 0.08 in wg / 100 ft
  ductcli size --airflow 1000 --friction 0.08

  # Rectangular duct under a 10 inch ceiling constraint
  ductcli size --airflow 2000 --friction 0.1 --type rectangular --max-height 10`,
	Run: runSize,
}

func init() {
	rootCmd.AddCommand(sizeCmd)

	sizeCmd.Flags().Float64Var(&sizeAirflow, "airflow", 0, "Airflow (CFM) [required]")
	sizeCmd.Flags().Float64Var(&sizeFriction, "friction", 0.08, "Target friction rate (in wg / 100 ft)")
	sizeCmd.Flags().StringVar(&sizeDuctType, "type", "round", "Duct shape: round or rectangular")
	sizeCmd.Flags().StringVar(&sizeClass, "class", "supply", "Duct class: supply, return or exhaust")
	sizeCmd.Flags().StringVar(&sizeMaterial, "material", "", "Duct material key (default galvanized_steel)")
	sizeCmd.Flags().Float64Var(&sizeMaxHeight, "max-height", 0, "Height limit for rectangular ducts (in)")
	sizeCmd.Flags().Float64Var(&sizeMaxWidth, "max-width", 0, "Width limit for rectangular ducts (in)")
	sizeCmd.Flags().StringVar(&sizeStandard, "standard", "smacna", "Limit standard: smacna or ashrae")

	sizeCmd.MarkFlagRequired("airflow")
}

func parseStandard(s string) (standards.Standard, error) {
	switch strings.ToLower(s) {
	case "smacna":
		return standards.SMACNA, nil
	case "ashrae":
		return standards.ASHRAE, nil
	default:
		return "", fmt.Errorf("unknown standard %q (want smacna or ashrae)", s)
	}
}

func runSize(cmd *cobra.Command, args []string) {
	std, err := parseStandard(sizeStandard)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	in := sizing.Input{
		AirflowCFM:   sizeAirflow,
		FrictionRate: sizeFriction,
		DuctType:     standards.DuctType(strings.ToLower(sizeDuctType)),
		DuctClass:    standards.DuctClass(strings.ToLower(sizeClass)),
		Material:     sizeMaterial,
		MaxHeightIn:  sizeMaxHeight,
		MaxWidthIn:   sizeMaxWidth,
	}
	res, err := sizing.Size(in)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("DUCT SIZING (equal friction)")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Airflow:\t%.0f CFM\n", sizeAirflow)
	fmt.Fprintf(w, "  Target friction:\t%.3f in wg/100 ft\n", sizeFriction)
	fmt.Fprintf(w, "  Selected size:\t%s\n", res.SizeLabel())
	if res.DuctType == standards.Rectangular {
		fmt.Fprintf(w, "  Equivalent diameter:\t%.2f in\n", res.EquivalentDiameterIn)
		fmt.Fprintf(w, "  Aspect ratio:\t%.2f:1\n", res.AspectRatio)
	}
	fmt.Fprintf(w, "  Velocity:\t%.0f fpm\n", res.VelocityFPM)
	fmt.Fprintf(w, "  Actual friction:\t%.3f in wg/100 ft\n", res.PressureLossPer100Ft)
	fmt.Fprintf(w, "  Material:\t%s\n", res.Material)
	w.Flush()

	fmt.Println()
	fmt.Printf("%s CHECKS:\n", std)
	fmt.Println("───────────────────────────────────────────────────────────────")
	for _, c := range sizing.Evaluate(std, in.DuctClass, res) {
		mark := "✓"
		if !c.Passed {
			mark = "✗"
		}
		fmt.Printf("  %s %s\n", mark, c.Message)
	}
	for _, warn := range res.Warnings {
		fmt.Printf("  ⚠ %s\n", warn)
	}
	fmt.Println()
}
