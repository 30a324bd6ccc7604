package recommend

import (
	"testing"

	"Plenum/internal/calc/airflow"
	"Plenum/internal/standards"
)

func TestRectEquivalents(t *testing.T) {
	res, err := RectEquivalents(RectInput{DiameterIn: 14})
	if err != nil {
		t.Fatalf("RectEquivalents returned error: %v", err)
	}
	if len(res.Options) < 3 {
		t.Fatalf("got %d options, want at least 3", len(res.Options))
	}

	// The squarest close match for a 14 in round is 13 x 13.
	first := res.Options[0]
	if first.WidthIn != 13 || first.HeightIn != 13 {
		t.Errorf("first option = %v x %v, want 13 x 13", first.WidthIn, first.HeightIn)
	}

	for i, opt := range res.Options {
		if opt.DeviationPct > 5.0 {
			t.Errorf("option %d deviates %.2f%%, beyond the 5%% cut", i, opt.DeviationPct)
		}
		if opt.AspectRatio > standards.MaxAspectRatio {
			t.Errorf("option %d aspect %v exceeds the ceiling", i, opt.AspectRatio)
		}
		if i > 0 && opt.HeightIn >= res.Options[i-1].HeightIn {
			t.Errorf("options should descend by height, got %v then %v",
				res.Options[i-1].HeightIn, opt.HeightIn)
		}
	}
}

func TestRectEquivalentsHeightLimited(t *testing.T) {
	res, err := RectEquivalents(RectInput{DiameterIn: 14, MaxHeightIn: 10})
	if err != nil {
		t.Fatalf("RectEquivalents returned error: %v", err)
	}
	for _, opt := range res.Options {
		if opt.HeightIn > 10 {
			t.Errorf("option %v x %v breaks the height limit", opt.WidthIn, opt.HeightIn)
		}
	}
}

func TestRectEquivalentsLimit(t *testing.T) {
	res, err := RectEquivalents(RectInput{DiameterIn: 20, Limit: 2})
	if err != nil {
		t.Fatalf("RectEquivalents returned error: %v", err)
	}
	if len(res.Options) > 2 {
		t.Errorf("got %d options, want at most 2", len(res.Options))
	}
}

func TestRectEquivalentsValidation(t *testing.T) {
	if _, err := RectEquivalents(RectInput{DiameterIn: 0}); !airflow.IsValidation(err) {
		t.Errorf("zero diameter: got %v, want validation error", err)
	}
}

func TestRectEquivalentsNoMatch(t *testing.T) {
	// A tiny height limit leaves nothing close enough to a large round.
	res, err := RectEquivalents(RectInput{DiameterIn: 40, MaxHeightIn: 4})
	if err != nil {
		t.Fatalf("RectEquivalents returned error: %v", err)
	}
	if len(res.Options) != 0 {
		t.Errorf("expected no options, got %v", res.Options)
	}
	if res.Notes == "" {
		t.Error("empty result should explain itself in the notes")
	}
}
