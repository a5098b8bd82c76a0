// Package schema validates v1 checklist documents against a permissive
// JSON Schema before conversion. Validation is opt-in: the legacy corpus
// contains plenty of loosely shaped documents that still convert fine.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// checklistSchema captures only what the converter relies on: a top-level
// "items" array of objects, with the known item keys type-checked when
// present. Unknown keys are allowed — v1 files carry tool-specific extras.
const checklistSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["items"],
  "properties": {
    "items": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "guid": {"type": "string"},
          "text": {"type": "string"},
          "description": {"type": "string"},
          "waf": {"type": "string"},
          "severity": {"type": "string"},
          "category": {"type": "string"},
          "subcategory": {"type": "string"},
          "id": {"type": "string"},
          "graph": {"type": "string"},
          "link": {"type": "string"},
          "training": {"type": "string"},
          "source": {"type": "string"},
          "sourceType": {"type": "string"},
          "sourceFile": {"type": "string"},
          "service": {"type": "string"},
          "recommendationResourceType": {"type": "string"}
        },
        "additionalProperties": true
      }
    }
  }
}`

// Validator checks raw v1 documents against the checklist schema.
type Validator struct {
	schema *jsonschema.Schema
}

// New compiles the embedded checklist schema.
func New() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("checklist.schema.json", strings.NewReader(checklistSchema)); err != nil {
		return nil, fmt.Errorf("schema: add resource: %w", err)
	}
	compiled, err := compiler.Compile("checklist.schema.json")
	if err != nil {
		return nil, fmt.Errorf("schema: compile: %w", err)
	}
	return &Validator{schema: compiled}, nil
}

// Validate checks a raw JSON document. A non-nil error means the document
// must not be converted (an input error, not a fatal one).
func (v *Validator) Validate(raw []byte) error {
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("schema: decode: %w", err)
	}
	if err := v.schema.Validate(payload); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}
