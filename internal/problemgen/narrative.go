package problemgen

import (
	"fmt"
	"strings"
)

// Narrative is the input to AssembleNarrative.
type Narrative struct {
	Scenario  string
	Object    string
	Knowns    []Quantity
	Unknowns  []Quantity
	Sentences map[Quantity]string
	FullWords map[Quantity]string
}

// AssembleNarrative builds the problem statement. Known quantities are
// emitted in a fixed order rather than catalog order: focal length, then
// object distance (which introduces the object), then object height
// (preceded by an introduction if the object has not appeared), then any
// remaining knowns. The statement closes by asking for the unknowns.
func AssembleNarrative(n Narrative) string {
	known := make(map[Quantity]bool, len(n.Knowns))
	for _, q := range n.Knowns {
		known[q] = true
	}

	intro := fmt.Sprintf("A %s is placed in front of the lens.", n.Object)
	parts := []string{n.Scenario}
	emitted := make(map[Quantity]bool, len(n.Knowns))
	introduced := false

	emit := func(q Quantity) {
		if !known[q] || emitted[q] || q == LensTypeKey {
			return
		}
		parts = append(parts, n.Sentences[q])
		emitted[q] = true
		if q == ObjectDistance {
			introduced = true
		}
	}

	emit(FocalLength)
	emit(ObjectDistance)
	if !introduced && known[ObjectHeight] {
		parts = append(parts, intro)
		introduced = true
	}
	emit(ObjectHeight)
	for _, q := range AllQuantities() {
		emit(q)
	}
	if !introduced {
		parts = append(parts, intro)
	}

	names := make([]string, 0, len(n.Unknowns))
	for _, q := range n.Unknowns {
		names = append(names, n.FullWords[q])
	}
	parts = append(parts, fmt.Sprintf("Determine the %s for this lens system.", JoinNames(names)))

	return strings.Join(parts, " ")
}

// JoinNames joins items as English prose: "a", "a and b", "a, b, and c".
func JoinNames(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
