package usecase

import "math"

// roundTo rounds half away from zero at the given number of decimal places.
// Derived metrics are rounded once at emission so repeated runs over the same
// input produce byte-identical snapshots.
func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

// safeDiv is the shared division policy for derived metrics: a zero
// denominator yields 0, never a fault.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
