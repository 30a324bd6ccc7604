// Package schedule renders solved duct runs into a construction-schedule
// workbook.
package schedule

import (
	"fmt"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"

	"Plenum/internal/calc/airflow"
	"Plenum/internal/calc/sizing"
	"Plenum/internal/standards"
)

// Run pairs a schedule label with its sizing request.
type Run struct {
	Name  string       `json:"name" yaml:"name"`
	Input sizing.Input `json:"input" yaml:"input"`
}

type ExportRequest struct {
	Project string `json:"project"`
	Runs    []Run  `json:"runs"`
}

const sheetName = "Duct Schedule"

var columns = []string{
	"Run", "Duct Type", "Size", "Airflow (CFM)", "Velocity (fpm)",
	"Friction (in wg/100ft)", "Material", "SMACNA", "Notes",
}

// Build solves every run and renders the workbook. A hard validation
// failure on any run aborts the export so a half schedule never ships.
func Build(req ExportRequest) (*excelize.File, error) {
	if len(req.Runs) == 0 {
		return nil, airflow.Validationf("At least one duct run is required")
	}

	f := excelize.NewFile()
	f.SetSheetName(f.GetSheetName(0), sheetName)
	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			f.Close()
			return nil, err
		}
	}

	for idx, run := range req.Runs {
		res, err := sizing.Size(run.Input)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("run %q: %w", run.Name, err)
		}
		checks := sizing.Evaluate(standards.SMACNA, run.Input.DuctClass, res)
		verdict := "PASS"
		for _, c := range checks {
			if !c.Passed {
				verdict = "FAIL"
				break
			}
		}
		name := run.Name
		if name == "" {
			name = fmt.Sprintf("Run %d", idx+1)
		}
		values := []interface{}{
			name,
			string(res.DuctType),
			res.SizeLabel(),
			run.Input.AirflowCFM,
			math.Round(res.VelocityFPM),
			math.Round(res.PressureLossPer100Ft*1000) / 1000,
			res.Material,
			verdict,
			strings.Join(res.Warnings, "; "),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, idx+2)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				f.Close()
				return nil, err
			}
		}
	}
	return f, nil
}
