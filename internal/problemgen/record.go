package problemgen

import (
	"slices"

	"github.com/abhisek/lenslab/internal/optics"
)

// Record is a generated problem. It is built once by Engine.Generate and
// never changes afterward; accessors return copies of its collections.
type Record struct {
	seed      int64
	scenario  Scenario
	solution  optics.Solution
	partition Partition
	salt      optics.SALT

	problem      string
	givenInfo    []Quantity
	problemInfo  map[Quantity]string
	detailedInfo map[Quantity]string
	answers      map[Quantity]string
}

// Seed returns the seed the record was generated from.
func (r *Record) Seed() int64 { return r.seed }

// Scenario returns the drawn setting and inputs.
func (r *Record) Scenario() Scenario { return r.scenario }

// Solution returns the solved image quantities.
func (r *Record) Solution() optics.Solution { return r.solution }

// Partition returns the known/unknown split.
func (r *Record) Partition() Partition { return r.partition }

// SALT returns the image classification.
func (r *Record) SALT() optics.SALT { return r.salt }

// Problem returns the full problem statement.
func (r *Record) Problem() string { return r.problem }

// IsEasyProblem reports whether the inputs were drawn in easy mode.
func (r *Record) IsEasyProblem() bool { return r.scenario.Difficulty == Easy }

// Equations returns the two equations used to solve the problem.
func (r *Record) Equations() []string { return slices.Clone(Equations[:]) }

// GivenInfo returns the disclosed keys: LensTypeKey first, then the known
// quantities in partition order.
func (r *Record) GivenInfo() []Quantity { return slices.Clone(r.givenInfo) }

// ProblemInfo returns the narrative sentence for a key.
func (r *Record) ProblemInfo(key Quantity) string { return r.problemInfo[key] }

// DetailedInfo returns the symbolic form for a key.
func (r *Record) DetailedInfo(key Quantity) string { return r.detailedInfo[key] }

// Answer returns the formatted answer for an unknown quantity. ok is
// false for known quantities.
func (r *Record) Answer(q Quantity) (answer string, ok bool) {
	answer, ok = r.answers[q]
	return answer, ok
}

// Value returns the numeric value of q. ok is false when q is undefined
// because no image forms.
func (r *Record) Value(q Quantity) (float64, bool) {
	switch q {
	case FocalLength:
		return r.scenario.FocalLength, true
	case ObjectDistance:
		return r.scenario.ObjectDistance, true
	case ObjectHeight:
		return r.scenario.ObjectHeight, true
	case ImageDistance:
		return r.solution.ImageDistance, r.solution.Valid
	case ImageHeight:
		return r.solution.ImageHeight, r.solution.Valid
	case Magnification:
		return r.solution.Magnification, r.solution.Valid
	default:
		return 0, false
	}
}
