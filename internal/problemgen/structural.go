package problemgen

import (
	"fmt"
	"strings"
)

// StructuralValidator checks that a record's partition, keys and text
// fields are complete and consistent with each other.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(rec *Record) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
	}

	knowns, unknowns := rec.partition.knowns, rec.partition.unknowns
	if len(knowns) != 3 || len(unknowns) != 3 {
		return fail("want 3 knowns and 3 unknowns, got %d and %d", len(knowns), len(unknowns))
	}
	for _, q := range append(append([]Quantity{}, knowns...), unknowns...) {
		if !q.IsQuantity() {
			return fail("partition contains %q", q)
		}
	}
	for _, q := range AllQuantities() {
		known, unknown := rec.partition.IsKnown(q), rec.partition.IsUnknown(q)
		switch {
		case known && unknown:
			return fail("quantity %q is both known and unknown", q)
		case !known && !unknown:
			return fail("quantity %q is neither known nor unknown", q)
		}
	}

	if len(rec.givenInfo) != len(knowns)+1 || rec.givenInfo[0] != LensTypeKey {
		return fail("given info must be the lens type followed by the knowns")
	}
	for i, q := range knowns {
		if rec.givenInfo[i+1] != q {
			return fail("given info[%d] = %q, want %q", i+1, rec.givenInfo[i+1], q)
		}
	}
	for _, key := range rec.givenInfo {
		if rec.problemInfo[key] == "" || rec.detailedInfo[key] == "" {
			return fail("missing info text for %q", key)
		}
	}

	if len(rec.answers) != len(unknowns) {
		return fail("want %d answers, got %d", len(unknowns), len(rec.answers))
	}
	for _, q := range unknowns {
		if rec.answers[q] == "" {
			return fail("missing answer for %q", q)
		}
	}

	if rec.problem == "" {
		return fail("problem text is empty")
	}
	if !strings.HasPrefix(rec.problem, rec.scenario.Text) {
		return fail("problem text does not open with the scenario")
	}
	if !strings.HasSuffix(rec.problem, " for this lens system.") {
		return fail("problem text does not close with the question")
	}
	for _, q := range knowns {
		if !strings.Contains(rec.problem, rec.problemInfo[q]) {
			return fail("problem text omits known %q", q)
		}
	}
	return nil
}
