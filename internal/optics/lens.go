// Package optics solves the thin-lens and magnification equations and
// classifies the resulting image.
package optics

import "math"

// LensType distinguishes converging from diverging lenses.
type LensType string

const (
	Converging LensType = "converging"
	Diverging  LensType = "diverging"
)

// String returns the lower-case lens name used in narrative text.
func (l LensType) String() string {
	return string(l)
}

// Tolerance is the absolute tolerance used for distance comparisons.
// Drawn distances carry at most two decimals, so anything this small
// is representation error.
const Tolerance = 1e-9

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}

// Solution holds the derived image quantities. When Valid is false the
// object sits at the focal point, no image forms, and the other fields
// are meaningless.
type Solution struct {
	ImageDistance float64
	Magnification float64
	ImageHeight   float64
	Valid         bool
}

// Solve applies 1/f = 1/do + 1/di and m = -di/do = hi/ho. The sign of
// focalLength encodes the lens type (negative for diverging) and is used
// as given.
func Solve(focalLength, objectDistance, objectHeight float64) Solution {
	if nearlyEqual(objectDistance, focalLength) {
		return Solution{}
	}
	denom := 1/focalLength - 1/objectDistance
	if denom == 0 {
		return Solution{}
	}
	di := 1 / denom
	if math.IsInf(di, 0) || math.IsNaN(di) {
		return Solution{}
	}
	m := -di / objectDistance
	return Solution{
		ImageDistance: di,
		Magnification: m,
		ImageHeight:   objectHeight * m,
		Valid:         true,
	}
}
