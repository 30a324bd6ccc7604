package standards

import "math"

// StandardRoundSizes are the manufactured round diameters in inches the
// sizing solver snaps to, following the galvanized spiral duct catalog
// ranges tabulated by SMACNA.
var StandardRoundSizes = []float64{
	4, 5, 6, 7, 8, 9, 10, 12, 14, 16, 18, 20, 22,
	24, 26, 28, 30, 32, 34, 36, 40, 42, 48, 54, 60,
}

// Rectangular ducts are fabricated to whole-inch sides.
const (
	MinRectSideIn = 4
	MaxRectSideIn = 120
	RectStepIn    = 1
)

// NearestStandardRound returns the catalog diameter closest to d. Ties
// resolve to the smaller size. ok is false when d is above the largest
// catalog entry, in which case the largest entry is returned.
func NearestStandardRound(d float64) (size float64, ok bool) {
	last := StandardRoundSizes[len(StandardRoundSizes)-1]
	if d > last {
		return last, false
	}
	best := StandardRoundSizes[0]
	for _, s := range StandardRoundSizes[1:] {
		if math.Abs(s-d) < math.Abs(best-d) {
			best = s
		}
	}
	return best, true
}
