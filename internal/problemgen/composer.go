package problemgen

import (
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/lenslab/internal/catalog"
	"github.com/abhisek/lenslab/internal/optics"
	"github.com/abhisek/lenslab/internal/rng"
)

// Challenging-mode ranges: |f| in [5, 50), do in [10, 100).
const (
	focalSpan    = 45
	focalMin     = 5
	distanceSpan = 90
	distanceMin  = 10
)

// Composer draws the scenario of a problem: lens, object, narrative
// template, difficulty and numeric inputs.
type Composer struct {
	Catalog *catalog.Catalog

	// MaxResample bounds how many times the distances are redrawn when
	// the object lands on the focal point of a converging lens. Zero keeps
	// the first draw.
	MaxResample int
}

// Compose consumes draws from src in a fixed order: lens, object,
// template, difficulty, distances, object height.
func (c Composer) Compose(src rng.Source) Scenario {
	lens := optics.Converging
	if src.Float64() < 0.5 {
		lens = optics.Diverging
	}

	object := c.Catalog.Objects[rng.Pick(src, len(c.Catalog.Objects))]
	template := c.Catalog.Scenarios[rng.Pick(src, len(c.Catalog.Scenarios))]

	difficulty := Challenging
	if src.Float64() < 0.5 {
		difficulty = Easy
	}

	f, do := c.drawDistances(src, lens, difficulty)
	for i := 0; i < c.MaxResample && isDegenerate(lens, f, do); i++ {
		f, do = c.drawDistances(src, lens, difficulty)
	}

	return Scenario{
		Lens:           lens,
		Object:         object,
		Text:           strings.Replace(template, catalog.LensTypePlaceholder, lens.String(), 1),
		Difficulty:     difficulty,
		FocalLength:    f,
		ObjectDistance: do,
		ObjectHeight:   math.Round(src.Float64()*9 + 1),
	}
}

// drawDistances returns a signed focal length and a positive object
// distance under the given difficulty.
func (c Composer) drawDistances(src rng.Source, lens optics.LensType, difficulty Difficulty) (float64, float64) {
	var f, do float64
	if difficulty == Easy {
		dens := c.Catalog.Denominators
		f = float64(dens[rng.Pick(src, len(dens))])
		do = float64(dens[rng.Pick(src, len(dens))])
	} else {
		f = round2(src.Float64()*focalSpan + focalMin)
		do = round2(src.Float64()*distanceSpan + distanceMin)
	}
	if lens == optics.Diverging {
		f = -f
	}
	return f, do
}

func isDegenerate(lens optics.LensType, f, do float64) bool {
	return lens == optics.Converging && math.Abs(do-f) <= optics.Tolerance
}

// round2 rounds x to two decimals the same way the displayed text does.
func round2(x float64) float64 {
	v, _ := strconv.ParseFloat(toFixed(x, 2), 64)
	return v
}
