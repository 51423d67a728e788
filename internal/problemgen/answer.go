package problemgen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Answer tolerance: a response is correct within either bound.
const (
	absTolerance = 0.01
	relTolerance = 0.01
)

// noImageAnswers are accepted for quantities left undefined because no
// image forms.
var noImageAnswers = map[string]bool{
	"none":            true,
	"no image":        true,
	"no image formed": true,
	"undefined":       true,
	"infinity":        true,
}

// CheckAnswer compares the learner's input for quantity q against the
// record. Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed and a trailing "cm" unit is ignored
// - Decimals and fractions are accepted (e.g. "6.67" or "20/3")
// - The sign matters: a virtual image distance must be negative
// - Values within 0.01 or 1% of the exact value are accepted
// - Undefined quantities accept "none", "no image", "undefined" and similar
func CheckAnswer(learnerAnswer string, rec *Record, q Quantity) bool {
	learnerAnswer = strings.ToLower(strings.TrimSpace(learnerAnswer))
	learnerAnswer = strings.TrimSpace(strings.TrimSuffix(learnerAnswer, "cm"))
	if learnerAnswer == "" {
		return false
	}

	want, ok := rec.Value(q)
	if !ok {
		return noImageAnswers[learnerAnswer]
	}

	got, err := parseNumber(learnerAnswer)
	if err != nil {
		return false
	}
	diff := math.Abs(got - want)
	return diff <= absTolerance || diff <= relTolerance*math.Abs(want)
}

// parseNumber parses a decimal or an "a/b" fraction.
func parseNumber(s string) (float64, error) {
	if strings.Contains(s, "/") {
		num, den, err := parseFraction(s)
		if err != nil {
			return 0, err
		}
		if den == 0 {
			return 0, fmt.Errorf("zero denominator")
		}
		return num / den, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid decimal: %w", err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number")
	}
	return f, nil
}

// parseFraction parses "a/b" into numerator and denominator.
func parseFraction(s string) (float64, float64, error) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid fraction format: %q", s)
	}
	num, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid denominator: %w", err)
	}
	return num, den, nil
}
