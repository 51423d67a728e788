package problemgen

import "fmt"

// Validator checks a generated record for internal consistency.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error
	// messages and logging), e.g. "structural", "math-check", "schema".
	Name() string

	// Validate returns nil if the record passes.
	Validate(rec *Record) *ValidationError
}

// ValidationError describes why a record failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
