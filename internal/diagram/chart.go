// Package diagram renders friction loss charts for duct runs.
package diagram

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"Plenum/internal/calc/airflow"
	"Plenum/internal/standards"
)

// FrictionChartData holds data for drawing a friction rate curve for one
// duct run: the curve itself, the design target line, and a marker on the
// selected size.
type FrictionChartData struct {
	AirflowCFM float64
	TargetRate float64 // in wg per 100 ft

	// Roughness is the material factor relative to galvanized steel.
	// Zero means galvanized.
	Roughness float64

	// SelectedDiameterIn marks the chosen size. Zero picks the nearest
	// standard round size for the target rate.
	SelectedDiameterIn float64
}

// BuildFrictionChart plots friction rate against duct diameter at a fixed
// airflow.
func BuildFrictionChart(data FrictionChartData) (*plot.Plot, error) {
	if data.AirflowCFM <= 0 {
		return nil, airflow.Validationf("Airflow must be a positive number")
	}
	if data.TargetRate <= 0 {
		return nil, airflow.Validationf("Friction rate must be a positive number")
	}
	rough := data.Roughness
	if rough <= 0 {
		rough = 1.0
	}

	ideal, err := airflow.DiameterForFriction(data.AirflowCFM, data.TargetRate, rough)
	if err != nil {
		return nil, err
	}
	selected := data.SelectedDiameterIn
	if selected <= 0 {
		selected, _ = standards.NearestStandardRound(ideal)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Friction Loss at %.0f CFM", data.AirflowCFM)
	p.X.Label.Text = "Diameter (in)"
	p.Y.Label.Text = "Friction (in wg/100 ft)"

	lo := ideal * 0.6
	if lo < 4 {
		lo = 4
	}
	hi := ideal * 1.6
	if hi < selected+2 {
		hi = selected + 2
	}

	const samples = 120
	step := (hi - lo) / samples
	curve := make(plotter.XYs, 0, samples+1)
	for d := lo; d <= hi+step/2; d += step {
		curve = append(curve, plotter.XY{X: d, Y: airflow.FrictionRate(data.AirflowCFM, d, rough)})
	}
	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 90, B: 181, A: 255}
	p.Add(line)

	target, err := plotter.NewLine(plotter.XYs{
		{X: lo, Y: data.TargetRate},
		{X: hi, Y: data.TargetRate},
	})
	if err != nil {
		return nil, err
	}
	target.LineStyle.Width = vg.Points(1.5)
	target.LineStyle.Color = color.RGBA{R: 220, G: 30, B: 30, A: 255}
	target.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(target)

	selectedRate := airflow.FrictionRate(data.AirflowCFM, selected, rough)
	mark, err := plotter.NewScatter(plotter.XYs{{X: selected, Y: selectedRate}})
	if err != nil {
		return nil, err
	}
	mark.GlyphStyle.Color = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	mark.GlyphStyle.Radius = vg.Points(5)
	mark.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(mark)

	lbl, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: selected, Y: selectedRate * 1.08}},
		Labels: []string{fmt.Sprintf("%.0f in", selected)},
	})
	if err != nil {
		return nil, err
	}
	p.Add(lbl)

	return p, nil
}

// WritePNG renders the chart as a PNG image.
func WritePNG(data FrictionChartData, w io.Writer) error {
	p, err := BuildFrictionChart(data)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(8*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save writes the chart to a file. The format follows the extension;
// anything unrecognized gets a .png suffix.
func Save(data FrictionChartData, filename string) error {
	p, err := BuildFrictionChart(data)
	if err != nil {
		return err
	}

	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(8*vg.Inch, 6*vg.Inch, filename)
	default:
		return p.Save(8*vg.Inch, 6*vg.Inch, filename+".png")
	}
}
