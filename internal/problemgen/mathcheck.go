package problemgen

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/lenslab/internal/optics"
)

// thinLensTolerance bounds |1/f - (1/do + 1/di)|.
const thinLensTolerance = 1e-6

// MathCheckValidator independently re-checks the physics of a record:
// the thin-lens and magnification equations, the SALT classification,
// and that no undefined value leaked into any text.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(rec *Record) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
	}

	sc, sol, salt := rec.scenario, rec.solution, rec.salt

	if (sc.FocalLength < 0) != (sc.Lens == optics.Diverging) {
		return fail("focal length %v does not match %s lens", sc.FocalLength, sc.Lens)
	}
	if sc.ObjectDistance <= 0 {
		return fail("object distance %v is not positive", sc.ObjectDistance)
	}
	if sc.ObjectHeight < 1 || sc.ObjectHeight > 10 || sc.ObjectHeight != math.Trunc(sc.ObjectHeight) {
		return fail("object height %v is not a whole number in [1, 10]", sc.ObjectHeight)
	}

	if sc.Lens == optics.Diverging && (salt.Type != optics.Virtual || salt.Location != optics.LocationSameSide) {
		return fail("diverging lens classified as %s / %s", salt.Type, salt.Location)
	}
	if (salt.Type == optics.NoImage) == sol.Valid {
		return fail("image type %s disagrees with solver validity %t", salt.Type, sol.Valid)
	}

	if sol.Valid {
		lhs := 1 / sc.FocalLength
		rhs := 1/sc.ObjectDistance + 1/sol.ImageDistance
		if math.Abs(lhs-rhs) > thinLensTolerance {
			return fail("thin-lens equation off by %g", math.Abs(lhs-rhs))
		}
		if math.Abs(sol.Magnification+sol.ImageDistance/sc.ObjectDistance) > thinLensTolerance {
			return fail("magnification %v != -di/do", sol.Magnification)
		}
		if (salt.Attitude == optics.Inverted) != (sol.Magnification < 0) {
			return fail("attitude %s disagrees with magnification %v", salt.Attitude, sol.Magnification)
		}
		if want := sizeOf(sol.ImageHeight, sc.ObjectHeight); salt.Size != want {
			return fail("size %s, want %s", salt.Size, want)
		}
	} else if salt.Location != optics.LocationNoImage {
		return fail("no-image record located %q", salt.Location)
	}

	for _, text := range rec.allText() {
		if strings.Contains(text, "NaN") || strings.Contains(text, "Inf") {
			return fail("undefined value rendered in %q", text)
		}
	}
	return nil
}

func sizeOf(hi, ho float64) optics.Size {
	a, b := math.Abs(hi), math.Abs(ho)
	switch {
	case math.Abs(a-b) <= optics.Tolerance:
		return optics.SameSize
	case a > b:
		return optics.Larger
	default:
		return optics.Smaller
	}
}

// allText returns every string a presentation layer may display.
func (r *Record) allText() []string {
	out := []string{r.problem}
	out = append(out, Equations[:]...)
	for _, m := range []map[Quantity]string{r.problemInfo, r.detailedInfo, r.answers} {
		for _, s := range m {
			out = append(out, s)
		}
	}
	return out
}
