// Package schema validates roadmap documents against the JSON Schema used
// for imports and AI-generated output.
package schema

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const roadmapSchemaJSON = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["id", "title", "steps"],
  "properties": {
    "id": { "type": "string", "minLength": 1 },
    "title": { "type": "string", "minLength": 1 },
    "description": { "type": "string" },
    "tags": { "type": "array", "items": { "type": "string" } },
    "difficulty": { "type": "string" },
    "steps": {
      "type": "array",
      "items": { "$ref": "#/definitions/step" }
    }
  },
  "definitions": {
    "step": {
      "type": "object",
      "required": ["id", "title", "type"],
      "properties": {
        "id": { "type": "string", "minLength": 1 },
        "title": { "type": "string", "minLength": 1 },
        "type": { "type": "string" },
        "status": { "type": "string" },
        "description": { "type": "string" },
        "estimated_duration": { "type": "string" },
        "url": { "type": "string" },
        "points": { "type": "integer", "minimum": 0 },
        "children": {
          "type": "array",
          "items": { "$ref": "#/definitions/step" }
        }
      }
    }
  }
}`

var roadmapSchemaLoader = gojsonschema.NewStringLoader(roadmapSchemaJSON)

// ValidateRoadmapJSON checks a JSON roadmap document against the schema. It
// returns a single error listing every violation.
func ValidateRoadmapJSON(doc string) error {
	documentLoader := gojsonschema.NewStringLoader(doc)
	result, err := gojsonschema.Validate(roadmapSchemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("roadmap document is invalid:\n  %s", strings.Join(problems, "\n  "))
}
