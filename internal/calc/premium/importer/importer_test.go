package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xuri/excelize/v2"

	"Plenum/internal/standards"
)

func TestParseDuctRow(t *testing.T) {
	name, in, err := parseDuctRow([]string{"AHU-1", "1000", "round", "0.08", "galvanized_steel", "", "supply"})
	if err != nil {
		t.Fatalf("parseDuctRow returned error: %v", err)
	}
	if name != "AHU-1" {
		t.Errorf("name = %q", name)
	}
	if in.AirflowCFM != 1000 || in.FrictionRate != 0.08 {
		t.Errorf("parsed input = %+v", in)
	}
	if in.DuctType != standards.Round || in.DuctClass != standards.ClassSupply {
		t.Errorf("parsed enums = %q %q", in.DuctType, in.DuctClass)
	}

	// Duct type defaults to round when the cell is blank.
	_, in, err = parseDuctRow([]string{"VAV-3", "400", "", "0.1"})
	if err != nil {
		t.Fatalf("parseDuctRow returned error: %v", err)
	}
	if in.DuctType != standards.Round {
		t.Errorf("blank duct type = %q, want round", in.DuctType)
	}

	// A present max height cell must parse; a blank one means no limit.
	_, in, err = parseDuctRow([]string{"FCU-2", "800", "rectangular", "0.08", "", "10"})
	if err != nil {
		t.Fatalf("parseDuctRow returned error: %v", err)
	}
	if in.MaxHeightIn != 10 {
		t.Errorf("max height = %v, want 10", in.MaxHeightIn)
	}

	if _, _, err := parseDuctRow([]string{"short", "1000"}); err == nil {
		t.Error("short rows should fail to parse")
	}
	if _, _, err := parseDuctRow([]string{"bad", "lots", "round", "0.08"}); err == nil {
		t.Error("non-numeric airflow should fail to parse")
	}
	if _, _, err := parseDuctRow([]string{"bad", "1000", "rectangular", "0.08", "", "N/A"}); err == nil {
		t.Error("non-numeric max height should fail to parse")
	}
}

func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestScheduleImport(t *testing.T) {
	wb := buildWorkbook(t, [][]interface{}{
		{"Name", "Airflow (CFM)", "Duct Type", "Friction", "Material", "Max Height", "Class"},
		{"AHU-1", 1000, "round", 0.08},
		{"AHU-2", 2000, "rectangular", 0.1, "", 10},
		{"broken", "n/a", "round", 0.08},
		{"tight", 900, "rectangular", 0.08, "", "N/A"},
	})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "runs.xlsx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(wb); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/import/schedule", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Schedule(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	var out ImportResult
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if out.Count != 2 {
		t.Errorf("count = %d, want 2", out.Count)
	}
	if out.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", out.Skipped)
	}
	if len(out.Results) != 2 || out.Results[0].Name != "AHU-1" {
		t.Fatalf("results = %+v", out.Results)
	}
	if out.Results[0].Result.DiameterIn != 14 {
		t.Errorf("AHU-1 diameter = %v, want 14", out.Results[0].Result.DiameterIn)
	}
	if len(out.Results[0].Checks) == 0 {
		t.Error("imported runs should carry standards checks")
	}
}

func TestScheduleImportRequiresFile(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/import/schedule", nil)
	rec := httptest.NewRecorder()
	(&Handler{}).Schedule(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
