package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"Plenum/internal/calc/sizing"
	"Plenum/internal/standards"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

// RunRow is one imported duct run with its solution and checks.
type RunRow struct {
	Name   string                  `json:"name"`
	Result sizing.Result           `json:"result"`
	Checks []standards.CheckResult `json:"checks"`
}

type ImportResult struct {
	Count   int      `json:"count"`
	Skipped int      `json:"skipped"`
	Results []RunRow `json:"results"`
}

// Schedule handles POST /api/user/tools/import/schedule: an uploaded
// workbook of duct runs, one per row past the header. Unparseable rows
// are skipped and counted, not fatal.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	out := ImportResult{Results: []RunRow{}}
	for i := 1; i < len(rows); i++ {
		name, input, err := parseDuctRow(rows[i])
		if err != nil {
			out.Skipped++
			continue
		}
		res, err := sizing.Size(input)
		if err != nil {
			out.Skipped++
			continue
		}
		if name == "" {
			name = fmt.Sprintf("Run %d", i)
		}
		out.Results = append(out.Results, RunRow{
			Name:   name,
			Result: res,
			Checks: sizing.Evaluate(standards.SMACNA, input.DuctClass, res),
		})
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func parseDuctRow(row []string) (string, sizing.Input, error) {
	// expected: name, airflow_cfm, duct_type, friction_rate,
	// material(optional), max_height_in(optional), duct_class(optional)
	if len(row) < 4 {
		return "", sizing.Input{}, fmt.Errorf("bad row")
	}
	name := row[0]
	airflow, err := toFloat(row[1])
	if err != nil {
		return "", sizing.Input{}, err
	}
	ductType := standards.DuctType(row[2])
	if ductType == "" {
		ductType = standards.Round
	}
	friction, err := toFloat(row[3])
	if err != nil {
		return "", sizing.Input{}, err
	}
	material := ""
	if len(row) > 4 {
		material = row[4]
	}
	maxHeight := 0.0
	if len(row) > 5 && row[5] != "" {
		maxHeight, err = toFloat(row[5])
		if err != nil {
			return "", sizing.Input{}, err
		}
	}
	class := standards.DuctClass("")
	if len(row) > 6 {
		class = standards.DuctClass(row[6])
	}
	return name, sizing.Input{
		AirflowCFM:   airflow,
		FrictionRate: friction,
		DuctType:     ductType,
		DuctClass:    class,
		Material:     material,
		MaxHeightIn:  maxHeight,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
