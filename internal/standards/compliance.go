package standards

import "fmt"

// CheckResult is the outcome of one standards check: the metric, its
// value, the governing limit and a pass/fail verdict with a message ready
// to render. Checks never fail with an error; an out-of-band value is a
// result with Passed false.
type CheckResult struct {
	Standard Standard `json:"standard"`
	Metric   string   `json:"metric"`
	Passed   bool     `json:"passed"`
	Value    float64  `json:"value"`
	Limit    float64  `json:"limit"`
	Message  string   `json:"message"`
}

// CheckVelocity evaluates a duct velocity in fpm against the standard's
// band for the duct class and shape.
func CheckVelocity(std Standard, class DuctClass, dt DuctType, velocityFPM float64) CheckResult {
	lim := VelocityLimitFor(std, class, dt)
	res := CheckResult{
		Standard: std,
		Metric:   "velocity",
		Value:    velocityFPM,
	}
	switch {
	case velocityFPM > lim.MaxFPM:
		res.Limit = lim.MaxFPM
		res.Message = fmt.Sprintf("Velocity %.0f fpm exceeds the %s %s maximum of %.0f fpm",
			velocityFPM, std, class, lim.MaxFPM)
	case velocityFPM < lim.MinFPM:
		res.Limit = lim.MinFPM
		res.Message = fmt.Sprintf("Velocity %.0f fpm is below the %s %s minimum of %.0f fpm",
			velocityFPM, std, class, lim.MinFPM)
	default:
		res.Passed = true
		res.Limit = lim.MaxFPM
		res.Message = fmt.Sprintf("Velocity %.0f fpm is within the %s %s range of %.0f to %.0f fpm",
			velocityFPM, std, class, lim.MinFPM, lim.MaxFPM)
	}
	return res
}

// CheckAspectRatio evaluates a rectangular aspect ratio against the
// SMACNA fabrication ceiling. The sizing solver keeps its own search
// inside the limit, so a failure here means hand-entered dimensions.
func CheckAspectRatio(std Standard, ratio float64) CheckResult {
	res := CheckResult{
		Standard: std,
		Metric:   "aspect_ratio",
		Value:    ratio,
		Limit:    MaxAspectRatio,
	}
	if ratio > MaxAspectRatio {
		res.Message = fmt.Sprintf("Aspect ratio %.2f:1 exceeds the %s maximum of %.0f:1",
			ratio, std, MaxAspectRatio)
		return res
	}
	res.Passed = true
	res.Message = fmt.Sprintf("Aspect ratio %.2f:1 is within the %s maximum of %.0f:1",
		ratio, std, MaxAspectRatio)
	return res
}

// Evaluate runs the full check set for a sized duct: velocity always,
// aspect ratio for rectangular shapes.
func Evaluate(std Standard, class DuctClass, dt DuctType, velocityFPM, aspectRatio float64) []CheckResult {
	checks := []CheckResult{CheckVelocity(std, class, dt, velocityFPM)}
	if dt == Rectangular && aspectRatio > 0 {
		checks = append(checks, CheckAspectRatio(std, aspectRatio))
	}
	return checks
}
