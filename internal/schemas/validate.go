// Package schemas provides JSON Schema validation for the files mdicon reads:
// the build cache record and the project config file.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Embedded schema names.
const (
	IconNames = "icon_names.schema.json"
	Config    = "config.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Summary returns the first field error on one line.
func (ve *ValidationError) Summary() string {
	if len(ve.Errors) == 0 {
		return "validation failed"
	}
	first := ve.Errors[0]
	if len(ve.Errors) == 1 {
		return fmt.Sprintf("%s: %s", first.Field, first.Message)
	}
	return fmt.Sprintf("%s: %s (and %d more)", first.Field, first.Message, len(ve.Errors)-1)
}

// Validate checks data against the embedded schema called name.
func Validate(name string, data []byte) error {
	schema, err := files.ReadFile(name)
	if err != nil {
		return &SchemaLoadError{Path: name, Message: "no such embedded schema", Cause: err}
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schema), gojsonschema.NewBytesLoader(data))
	if err != nil {
		// Either the schema or the document is not valid JSON
		return &SchemaLoadError{
			Path:    name,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	// Build structured error
	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
