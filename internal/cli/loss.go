package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"Plenum/internal/calc/fittings"
	"Plenum/internal/standards"
)

var (
	lossAirflow   float64
	lossType      string
	lossShape     string
	lossDiameter  float64
	lossWidth     float64
	lossHeight    float64
	lossSubtype   string
	lossParameter string
)

var lossCmd = &cobra.Command{
	Use:   "loss",
	Short: "Pressure loss of a single fitting",
	Long: `Calculate the pressure loss of one duct fitting from its K factor
and the velocity pressure in the connected duct.

Unknown fittings and untabulated configurations do not fail, they fall
back to documented defaults and report what was substituted.

Examples:
  # Smooth 90 degree elbow on a 14 inch round duct at 1000 CFM
  ductcli loss --airflow 1000 --fitting 90deg_round_smooth --diameter 14

  # Mitered rectangular elbow with turning vanes
  ductcli loss --airflow 2000 --fitting 90deg_rect_mitered --width 24 --height 8 --subtype single_vanes`,
	Run: runLoss,
}

func init() {
	rootCmd.AddCommand(lossCmd)

	lossCmd.Flags().Float64Var(&lossAirflow, "airflow", 0, "Airflow (CFM) [required]")
	lossCmd.Flags().StringVar(&lossType, "fitting", "", "Fitting type key [required]")
	lossCmd.Flags().StringVar(&lossShape, "shape", "", "Duct shape: round or rectangular (default round)")
	lossCmd.Flags().Float64Var(&lossDiameter, "diameter", 0, "Round duct diameter (in)")
	lossCmd.Flags().Float64Var(&lossWidth, "width", 0, "Rectangular duct width (in)")
	lossCmd.Flags().Float64Var(&lossHeight, "height", 0, "Rectangular duct height (in)")
	lossCmd.Flags().StringVar(&lossSubtype, "subtype", "", "Fitting subtype (default per fitting)")
	lossCmd.Flags().StringVar(&lossParameter, "param", "", "Fitting parameter value (default per fitting)")

	lossCmd.MarkFlagRequired("airflow")
	lossCmd.MarkFlagRequired("fitting")
}

func runLoss(cmd *cobra.Command, args []string) {
	table, err := loadTable()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	calc := fittings.NewCalculator(table)

	cfg := fittings.Config{
		Type:       lossType,
		Shape:      standards.DuctType(lossShape),
		DiameterIn: lossDiameter,
		WidthIn:    lossWidth,
		HeightIn:   lossHeight,
		Subtype:    lossSubtype,
		Parameter:  lossParameter,
	}
	res, err := calc.FittingLoss(cfg, lossAirflow)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("FITTING PRESSURE LOSS")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Fitting:\t%s\n", res.FittingType)
	fmt.Fprintf(w, "  Configuration:\t%s\n", res.Configuration)
	fmt.Fprintf(w, "  K factor:\t%.2f\n", res.KFactor)
	fmt.Fprintf(w, "  Velocity:\t%.0f fpm\n", res.VelocityFPM)
	fmt.Fprintf(w, "  Velocity pressure:\t%.4f in wg\n", res.VelocityPressure)
	fmt.Fprintf(w, "  Pressure loss:\t%.4f in wg\n", res.PressureLoss)
	w.Flush()

	for _, warn := range res.Warnings {
		fmt.Printf("  ⚠ %s\n", warn)
	}
	for _, rec := range res.Recommendations {
		fmt.Printf("  → %s\n", rec)
	}
	fmt.Println()
}
