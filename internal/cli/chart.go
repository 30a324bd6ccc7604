package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"Plenum/internal/diagram"
	"Plenum/internal/standards"
)

var (
	chartAirflow  float64
	chartFriction float64
	chartMaterial string
	chartDiameter float64
	chartOut      string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Render a friction loss chart to an image file",
	Long: `Render a friction rate vs. diameter chart for an airflow, with the
design target line and the selected size marked.

The output format follows the file extension (.png, .svg or .pdf).

Examples:
  ductcli chart --airflow 1000 --friction 0.08 --out friction.png
  ductcli chart --airflow 2000 --friction 0.1 --material flex_stretched --out run2.svg`,
	Run: runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)

	chartCmd.Flags().Float64Var(&chartAirflow, "airflow", 0, "Airflow (CFM) [required]")
	chartCmd.Flags().Float64Var(&chartFriction, "friction", 0.08, "Target friction rate (in wg / 100 ft)")
	chartCmd.Flags().StringVar(&chartMaterial, "material", "", "Duct material key (default galvanized_steel)")
	chartCmd.Flags().Float64Var(&chartDiameter, "diameter", 0, "Mark this diameter instead of the catalog pick (in)")
	chartCmd.Flags().StringVar(&chartOut, "out", "friction_chart.png", "Output file")

	chartCmd.MarkFlagRequired("airflow")
}

func runChart(cmd *cobra.Command, args []string) {
	rough := 1.0
	if chartMaterial != "" {
		f, ok := standards.RoughnessFactor(chartMaterial)
		if !ok {
			fmt.Printf("Error: unknown duct material %q\n", chartMaterial)
			return
		}
		rough = f
	}

	data := diagram.FrictionChartData{
		AirflowCFM:         chartAirflow,
		TargetRate:         chartFriction,
		Roughness:          rough,
		SelectedDiameterIn: chartDiameter,
	}
	if err := diagram.Save(data, chartOut); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Chart written to %s\n", chartOut)
}
