package problemgen

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/abhisek/lenslab/internal/optics"
)

// noImageText replaces any numeric rendering of an undefined quantity.
const noImageText = "no image formed"

// Formatted holds the three renderings of every quantity.
type Formatted struct {
	// Narrative is the sentence used when the quantity is known. Keyed by
	// all six quantities plus LensTypeKey.
	Narrative map[Quantity]string

	// Symbolic is the "<symbol> = <value> <unit>" form shown as given
	// information. Keyed like Narrative.
	Symbolic map[Quantity]string

	// Answers is the "<Name> (<symbol>): <value> <unit>" form revealed for
	// unknowns. Keyed by the six quantities only.
	Answers map[Quantity]string
}

// FormatQuantities renders every quantity of a solved scenario. names
// maps each quantity to its answer label. Values are shown with exactly
// two decimals; quantities left undefined by an invalid solution are
// never rendered as numbers.
func FormatQuantities(sc Scenario, sol optics.Solution, names map[Quantity]string) Formatted {
	out := Formatted{
		Narrative: make(map[Quantity]string, 7),
		Symbolic:  make(map[Quantity]string, 7),
		Answers:   make(map[Quantity]string, 6),
	}

	out.Narrative[LensTypeKey] = fmt.Sprintf("The lens is a %s lens.", sc.Lens)
	out.Symbolic[LensTypeKey] = fmt.Sprintf("Lens type: %s", sc.Lens)

	out.Narrative[FocalLength] = fmt.Sprintf("The focal length of the lens is %s cm.", toFixed(math.Abs(sc.FocalLength), 2))
	out.Narrative[ObjectDistance] = fmt.Sprintf("A %s is placed %s cm in front of the lens.", sc.Object, toFixed(sc.ObjectDistance, 2))
	out.Narrative[ObjectHeight] = fmt.Sprintf("The %s is %s cm tall.", sc.Object, toFixed(sc.ObjectHeight, 2))

	if sol.Valid {
		side := "on the opposite side of the lens from the object"
		if sol.ImageDistance < 0 {
			side = "on the same side of the lens as the object"
		}
		out.Narrative[ImageDistance] = fmt.Sprintf("An image is formed %s cm %s.", toFixed(math.Abs(sol.ImageDistance), 2), side)

		inverted := ""
		if sol.ImageHeight < 0 {
			inverted = " and inverted"
		}
		out.Narrative[ImageHeight] = fmt.Sprintf("The image is %s cm tall%s.", toFixed(math.Abs(sol.ImageHeight), 2), inverted)

		inverted = ""
		if sol.Magnification < 0 {
			inverted = " (inverted)"
		}
		out.Narrative[Magnification] = fmt.Sprintf("The magnification of the lens is %s%s.", toFixed(math.Abs(sol.Magnification), 2), inverted)
	} else {
		out.Narrative[ImageDistance] = "No image is formed because the object is at the focal point."
		out.Narrative[ImageHeight] = "The image height is undefined because no image is formed."
		out.Narrative[Magnification] = "The magnification is undefined because no image is formed."
	}

	values := map[Quantity]float64{
		FocalLength:    sc.FocalLength,
		ObjectDistance: sc.ObjectDistance,
		ObjectHeight:   sc.ObjectHeight,
		ImageDistance:  sol.ImageDistance,
		ImageHeight:    sol.ImageHeight,
		Magnification:  sol.Magnification,
	}
	for _, q := range AllQuantities() {
		var value string
		if sol.Valid || !isDerived(q) {
			value = withUnit(toFixed(values[q], 2), q.Unit())
			out.Symbolic[q] = fmt.Sprintf("%s = %s", q, value)
		} else {
			value = noImageText
			out.Symbolic[q] = fmt.Sprintf("%s = undefined (%s)", q, noImageText)
		}
		out.Answers[q] = fmt.Sprintf("%s (%s): %s", names[q], q, value)
	}

	return out
}

// isDerived reports whether q is computed by the solver rather than drawn.
func isDerived(q Quantity) bool {
	return q == ImageDistance || q == ImageHeight || q == Magnification
}

func withUnit(value, unit string) string {
	if unit == "" {
		return value
	}
	return value + " " + unit
}

// toFixed renders x with the given number of decimals. Rounding is exact
// on the binary value of x, and a true tie rounds away from zero. A value
// that rounds to zero is printed without a sign.
func toFixed(x float64, digits int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return noImageText
	}

	r := new(big.Rat).SetFloat64(x)
	neg := r.Sign() < 0
	r.Abs(r)

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))
	r.Add(r, big.NewRat(1, 2))
	n := new(big.Int).Quo(r.Num(), r.Denom())

	s := n.String()
	if len(s) <= digits {
		s = strings.Repeat("0", digits-len(s)+1) + s
	}
	out := s[:len(s)-digits]
	if digits > 0 {
		out += "." + s[len(s)-digits:]
	}
	if neg && n.Sign() != 0 {
		out = "-" + out
	}
	return out
}
