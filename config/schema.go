package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// sectionSchema describes the gauge section. It is advisory: findings
// are surfaced as warnings, never as load failures. Hard range checks
// (nodes >= 1) re-fire as construction errors in the core model.
const sectionSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "specs_dir": {"type": "string"},
    "tags": {"type": "string"},
    "in_parallel": {"type": "boolean"},
    "nodes": {"type": "integer", "minimum": 1},
    "env": {"type": "string"},
    "additional_flags": {"type": "string"},
    "project_dir": {"type": "string"},
    "gauge_root": {"type": "string"},
    "environment_variables": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    }
  }
}`

var (
	compiledSchema *gojsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

func getSchema() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		loader := gojsonschema.NewStringLoader(sectionSchema)
		compiledSchema, compileErr = gojsonschema.NewSchema(loader)
	})
	return compiledSchema, compileErr
}

// CheckSection validates a gauge section mapping against the schema and
// returns human-readable warnings for unknown keys and wrong-typed
// values. Keys are accepted in kebab form; they are normalised to snake
// before checking.
func CheckSection(section map[string]any) []string {
	schema, err := getSchema()
	if err != nil {
		return []string{fmt.Sprintf("config schema unavailable: %v", err)}
	}

	normalised := make(map[string]any, len(section))
	for k, v := range section {
		normalised[strings.ReplaceAll(k, "-", "_")] = v
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(normalised))
	if err != nil {
		return []string{fmt.Sprintf("checking config section: %v", err)}
	}
	if result.Valid() {
		return nil
	}

	warnings := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		warnings = append(warnings, fmt.Sprintf("config section: %s", e.String()))
	}
	return warnings
}
