package problemgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// quantityEnum lists the quantity symbols allowed in a partition.
var quantityEnum = []any{"f", "do", "ho", "di", "hi", "m"}

// RecordSchema is the JSON schema of an exported record.
var RecordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"seed":    map[string]any{"type": "integer"},
		"problem": map[string]any{"type": "string", "minLength": 1},
		"givenInfo": map[string]any{
			"type":     "array",
			"minItems": 4,
			"maxItems": 4,
			"prefixItems": []any{
				map[string]any{"const": "lensType"},
			},
			"items": map[string]any{"enum": quantityEnum},
		},
		"problemInfoMap":  infoMapSchema(),
		"detailedInfoMap": infoMapSchema(),
		"equations": map[string]any{
			"type":     "array",
			"minItems": 2,
			"maxItems": 2,
			"items":    map[string]any{"type": "string"},
		},
		"problemType": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"knowns":   partitionSideSchema(),
				"unknowns": partitionSideSchema(),
			},
			"required":             []any{"knowns", "unknowns"},
			"additionalProperties": false,
		},
		"answers": map[string]any{
			"type":                 "object",
			"minProperties":        3,
			"maxProperties":        3,
			"propertyNames":        map[string]any{"enum": quantityEnum},
			"additionalProperties": map[string]any{"type": "string", "minLength": 1},
		},
		"salt": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"size":     map[string]any{"enum": []any{"Larger", "Smaller", "Same size"}},
				"attitude": map[string]any{"enum": []any{"Upright", "Inverted"}},
				"location": map[string]any{"enum": []any{"Between f and 2f", "At 2f", "Beyond 2f", "No image formed", "Same side as object"}},
				"type":     map[string]any{"enum": []any{"Real", "Virtual", "No image"}},
			},
			"required":             []any{"size", "attitude", "location", "type"},
			"additionalProperties": false,
		},
		"isEasyProblem": map[string]any{"type": "boolean"},
	},
	"required":             []any{"seed", "problem", "givenInfo", "problemInfoMap", "detailedInfoMap", "equations", "problemType", "answers", "salt", "isEasyProblem"},
	"additionalProperties": false,
}

func infoMapSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"required":             []any{"lensType", "f", "do", "ho", "di", "hi", "m"},
		"additionalProperties": map[string]any{"type": "string", "minLength": 1},
	}
}

func partitionSideSchema() map[string]any {
	return map[string]any{
		"type":        "array",
		"minItems":    3,
		"maxItems":    3,
		"uniqueItems": true,
		"items":       map[string]any{"enum": quantityEnum},
	}
}

var compiledRecordSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The compiler expects a decoded JSON value, so round-trip the
	// definition to normalize Go types.
	defBytes, err := json.Marshal(RecordSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://lens-problem.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// SchemaValidator checks the exported JSON form of a record against
// RecordSchema.
type SchemaValidator struct{}

func (v *SchemaValidator) Name() string { return "schema" }

func (v *SchemaValidator) Validate(rec *Record) *ValidationError {
	raw, err := json.Marshal(rec.Export())
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("marshal record: %v", err)}
	}
	if err := ValidateJSON(raw); err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	return nil
}

// ValidateJSON validates raw exported-record JSON against RecordSchema.
func ValidateJSON(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	compiled, err := compiledRecordSchema()
	if err != nil {
		return fmt.Errorf("compile record schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
