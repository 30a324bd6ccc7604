package batch

import (
	"Plenum/internal/calc/airflow"
	"Plenum/internal/calc/sizing"
	"Plenum/internal/standards"
)

type SizeBatchInput struct {
	Items []sizing.Input `json:"items"`
}

// RunResult pairs a solved size with its standards checks so the batch
// table can show a verdict per row.
type RunResult struct {
	Result sizing.Result           `json:"result"`
	Checks []standards.CheckResult `json:"checks"`
}

type SizeBatchResult struct {
	Results []RunResult `json:"results"`
}

// SizeAll solves every item in order. The first hard validation failure
// aborts the batch; per-item degradations stay warnings on the results.
func SizeAll(in SizeBatchInput) (SizeBatchResult, error) {
	if len(in.Items) == 0 {
		return SizeBatchResult{}, airflow.Validationf("At least one duct run is required")
	}
	out := SizeBatchResult{Results: make([]RunResult, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := sizing.Size(item)
		if err != nil {
			return SizeBatchResult{}, err
		}
		out.Results = append(out.Results, RunResult{
			Result: res,
			Checks: sizing.Evaluate(standards.SMACNA, item.DuctClass, res),
		})
	}
	return out, nil
}
