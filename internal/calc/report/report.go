// Package report renders duct sizing and fitting results into a PDF
// calculation report.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"

	"Plenum/internal/calc/airflow"
	"Plenum/internal/calc/fittings"
	"Plenum/internal/calc/sizing"
	"Plenum/internal/standards"
)

// DuctRun is one labeled sizing request included in the report.
type DuctRun struct {
	Name  string       `json:"name"`
	Input sizing.Input `json:"input"`
}

// Input is the full report request: project metadata, the duct runs, and
// an optional fitting path evaluated at one airflow.
type Input struct {
	Project  string            `json:"project"`
	Author   string            `json:"author"`
	Title    string            `json:"title"`
	Notes    string            `json:"notes"`
	Runs     []DuctRun         `json:"runs"`
	Airflow  float64           `json:"airflow,omitempty"`
	Fittings []fittings.Config `json:"fittings,omitempty"`
}

// Generate renders the report to w. At least one duct run or one fitting
// is required; a hard validation failure on any entry aborts the report.
func Generate(in Input, calc *fittings.Calculator, w io.Writer) error {
	if len(in.Runs) == 0 && len(in.Fittings) == 0 {
		return airflow.Validationf("At least one duct run or fitting is required")
	}
	if in.Title == "" {
		in.Title = "Duct Calculation Report"
	}
	if calc == nil {
		calc = fittings.NewCalculator(nil)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	meta := calc.Table().Meta()
	pdf.Cell(0, 6, fmt.Sprintf("Coefficients: %s %s", meta.Standard, meta.Version))
	pdf.Ln(10)

	if len(in.Runs) > 0 {
		if err := writeRuns(pdf, in.Runs); err != nil {
			return err
		}
	}
	if len(in.Fittings) > 0 {
		if err := writeFittings(pdf, calc, in.Airflow, in.Fittings); err != nil {
			return err
		}
	}
	if in.Notes != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Notes")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, in.Notes, "", "L", false)
	}
	return pdf.Output(w)
}

func writeRuns(pdf *gofpdf.Fpdf, runs []DuctRun) error {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Duct Sizing")
	pdf.Ln(8)

	widths := []float64{34, 30, 26, 26, 30, 20, 24}
	headers := []string{"Run", "Size", "Airflow", "Velocity", "Friction", "SMACNA", "Material"}
	pdf.SetFont("Helvetica", "B", 9)
	for i, hd := range headers {
		pdf.CellFormat(widths[i], 6, hd, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for idx, run := range runs {
		res, err := sizing.Size(run.Input)
		if err != nil {
			return fmt.Errorf("run %q: %w", run.Name, err)
		}
		verdict := "PASS"
		for _, c := range sizing.Evaluate(standards.SMACNA, run.Input.DuctClass, res) {
			if !c.Passed {
				verdict = "FAIL"
				break
			}
		}
		name := run.Name
		if name == "" {
			name = fmt.Sprintf("Run %d", idx+1)
		}
		cells := []string{
			name,
			res.SizeLabel(),
			fmt.Sprintf("%.0f CFM", run.Input.AirflowCFM),
			fmt.Sprintf("%.0f fpm", res.VelocityFPM),
			fmt.Sprintf("%.3f in/100ft", res.PressureLossPer100Ft),
			verdict,
			res.Material,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		for _, warn := range res.Warnings {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.CellFormat(190, 5, "  "+warn, "", 0, "L", false, 0, "")
			pdf.Ln(-1)
			pdf.SetFont("Helvetica", "", 9)
		}
	}
	pdf.Ln(6)
	return nil
}

func writeFittings(pdf *gofpdf.Fpdf, calc *fittings.Calculator, airflowCFM float64, cfgs []fittings.Config) error {
	sys, err := calc.SystemLoss(cfgs, airflowCFM)
	if err != nil {
		return err
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Fitting Losses at %.0f CFM", airflowCFM))
	pdf.Ln(8)

	widths := []float64{48, 40, 18, 28, 28, 28}
	headers := []string{"Fitting", "Configuration", "K", "Velocity", "VP", "Loss"}
	pdf.SetFont("Helvetica", "B", 9)
	for i, hd := range headers {
		pdf.CellFormat(widths[i], 6, hd, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, fr := range sys.Fittings {
		cells := []string{
			fr.FittingType,
			fr.Configuration,
			fmt.Sprintf("%.2f", fr.KFactor),
			fmt.Sprintf("%.0f fpm", fr.VelocityFPM),
			fmt.Sprintf("%.4f in wg", fr.VelocityPressure),
			fmt.Sprintf("%.4f in wg", fr.PressureLoss),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		for _, warn := range fr.Warnings {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.CellFormat(190, 5, "  "+warn, "", 0, "L", false, 0, "")
			pdf.Ln(-1)
			pdf.SetFont("Helvetica", "", 9)
		}
	}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(190, 7, fmt.Sprintf("Total fitting loss: %.4f in wg", sys.TotalPressureLoss),
		"T", 0, "R", false, 0, "")
	pdf.Ln(10)
	return nil
}
