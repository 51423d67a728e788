package problemgen

import (
	"slices"

	"github.com/abhisek/lenslab/internal/optics"
)

// Quantity identifies one of the six lens quantities by its symbol.
type Quantity string

const (
	FocalLength    Quantity = "f"
	ObjectDistance Quantity = "do"
	ObjectHeight   Quantity = "ho"
	ImageDistance  Quantity = "di"
	ImageHeight    Quantity = "hi"
	Magnification  Quantity = "m"
)

// LensTypeKey keys the lens type in info maps. The lens type is always
// given and is never part of a partition.
const LensTypeKey Quantity = "lensType"

// AllQuantities returns the six quantities in canonical order.
func AllQuantities() []Quantity {
	return []Quantity{FocalLength, ObjectDistance, ObjectHeight, ImageDistance, ImageHeight, Magnification}
}

// IsQuantity reports whether q is one of the six lens quantities.
func (q Quantity) IsQuantity() bool {
	return slices.Contains(AllQuantities(), q)
}

// Unit returns the measurement unit, empty for magnification.
func (q Quantity) Unit() string {
	if q == Magnification {
		return ""
	}
	return "cm"
}

// Difficulty selects how numeric inputs are drawn.
type Difficulty string

const (
	// Easy draws whole-number distances from the catalog's denominators,
	// so 1/f and 1/do are simple fractions.
	Easy Difficulty = "easy"

	// Challenging draws continuous distances rounded to two decimals.
	Challenging Difficulty = "challenging"
)

// Partition splits the six quantities into three knowns and three
// unknowns. It is immutable; accessors return copies.
type Partition struct {
	index    int
	knowns   []Quantity
	unknowns []Quantity
}

// Index returns the partition's position in the catalog.
func (p Partition) Index() int { return p.index }

// Knowns returns the known quantities in catalog order.
func (p Partition) Knowns() []Quantity { return slices.Clone(p.knowns) }

// Unknowns returns the unknown quantities in catalog order.
func (p Partition) Unknowns() []Quantity { return slices.Clone(p.unknowns) }

// IsKnown reports whether q is disclosed in the problem statement.
func (p Partition) IsKnown(q Quantity) bool { return slices.Contains(p.knowns, q) }

// IsUnknown reports whether q must be solved for.
func (p Partition) IsUnknown(q Quantity) bool { return slices.Contains(p.unknowns, q) }

// Scenario is the drawn setting and numeric inputs of a problem.
type Scenario struct {
	Lens       optics.LensType
	Object     string
	Text       string
	Difficulty Difficulty

	// FocalLength is negative for a diverging lens.
	FocalLength    float64
	ObjectDistance float64
	ObjectHeight   float64
}

// Equations are the two relations every problem is solved with.
var Equations = [2]string{
	"1. Thin Lens equation: 1/f = 1/di + 1/do",
	"2. Magnification equation: m = hi/ho = -di/do",
}
